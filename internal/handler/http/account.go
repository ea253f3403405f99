// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/internal/utils"
	"github.com/MKhiriev/go-pass-keycore/models"
)

// status reports the active account and whether it is unlocked. Without an
// active account only the migration flag is set.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	response := models.StatusResponse{Migrating: h.migrator.IsRunningMigrations()}

	account, err := h.services.AccountService.ActiveAccount(ctx)
	switch {
	case errors.Is(err, service.ErrNoActiveAccount):
	case err != nil:
		log.Err(err).Str("func", "*Handler.status").Msg("error reading active account")
		writeError(w, err)
		return
	default:
		response.UserID = account.UserID
		response.Email = account.Email
		response.Unlocked = h.services.KeyService.HasUserKey(ctx, account.UserID)
	}

	writeJSON(w, response, http.StatusOK)
}

// loginWithToken makes the subject of the access token the active account.
// The token is read from the body, or from a bearer "Authorization" header
// when the body has none.
func (h *Handler) loginWithToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginTokenRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.loginWithToken").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	token := request.AccessToken
	if token == "" {
		var err error
		if token, err = utils.ParseBearerToken(r.Header.Get("Authorization")); err != nil {
			log.Err(err).Str("func", "*Handler.loginWithToken").Msg("no access token was passed")
			writeError(w, ErrEmptyAccessToken)
			return
		}
	}

	account, err := h.services.AccountService.SetActiveAccountFromToken(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loginWithToken").Msg("error setting active account")
		writeError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.loginWithToken").Str("user_id", account.UserID.String()).Msg("active account set")
	writeJSON(w, models.StatusResponse{
		UserID:    account.UserID,
		Email:     account.Email,
		Unlocked:  h.services.KeyService.HasUserKey(ctx, account.UserID),
		Migrating: h.migrator.IsRunningMigrations(),
	}, http.StatusOK)
}

// logout removes every key of the active account and forgets the account.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.migrator.WaitForMigrations(ctx); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error waiting for migrations")
		writeError(w, err)
		return
	}
	if err = h.services.KeyService.ClearKeys(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error clearing keys")
		writeError(w, err)
		return
	}
	if err = h.services.AccountService.ClearAccount(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error clearing account")
		writeError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.logout").Str("user_id", userID.String()).Msg("logged out")
	w.WriteHeader(http.StatusNoContent)
}

// fingerprint returns the phrase users compare to verify the account's public
// key. The account has to be unlocked.
func (h *Handler) fingerprint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	phrase, err := h.services.KeyService.Fingerprint(ctx, userID, userID.String(), nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fingerprint").Msg("error computing fingerprint")
		writeError(w, err)
		return
	}

	writeJSON(w, models.FingerprintResponse{Phrase: phrase}, http.StatusOK)
}
