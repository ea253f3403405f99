// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/utils"
)

// withActiveAccount resolves the active account and stores its user id in the
// request context. Requests without an active account get 401.
func (h *Handler) withActiveAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		account, err := h.services.AccountService.ActiveAccount(ctx)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withActiveAccount").Msg("no active account")
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, account.UserID)))
	})
}
