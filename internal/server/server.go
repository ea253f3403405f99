package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/handler"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
)

type server struct {
	httpServer *httpServer
	onShutdown []func()
	once       sync.Once
	logger     *logger.Logger
}

// NewServer builds the local API server. onShutdown hooks run once, after the
// listener has stopped.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, onShutdown ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, ErrNoLocalAPIHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		onShutdown: onShutdown,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.once.Do(func() {
		s.httpServer.Shutdown()
		for _, hook := range s.onShutdown {
			hook()
		}
	})
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		err := <-errCh
		s.logger.Info().Msg("server Shutdown gracefully")
		return err
	case err := <-errCh:
		s.Shutdown()
		return err
	}
}
