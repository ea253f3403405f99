package handler

import (
	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/handler/http"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/migration"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, migrator migration.Runner, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, migrator, cfg, logger)}, nil
}
