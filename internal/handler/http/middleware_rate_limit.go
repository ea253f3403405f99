// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
)

// withRateLimit rejects requests with 429 once limiter runs out of tokens.
func (h *Handler) withRateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.FromRequest(r).Warn().Str("func", "*Handler.withRateLimit").Str("uri", r.RequestURI).Msg("request rejected by rate limiter")
				writeError(w, ErrTooManyUnlockAttempts)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
