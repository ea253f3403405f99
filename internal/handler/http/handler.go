// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/migration"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/internal/utils"
)

type Handler struct {
	services *service.Services
	migrator migration.Runner

	unlockLimiter *rate.Limiter
	traceIDs      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, migrator migration.Runner, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		migrator:      migrator,
		unlockLimiter: newUnlockLimiter(cfg.UnlockRatePerMinute),
		traceIDs:      utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// newUnlockLimiter allows perMinute unlock attempts per minute with a burst
// of the same size. A non-positive rate disables throttling.
func newUnlockLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}
