package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/models"
)

// unlock unwraps the User Key with the master password and starts the pending
// migrations with the same password in the background.
func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var request models.MasterPasswordRequest
	if err = decodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.unlock").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	userKey, err := h.services.MasterPasswordService.UnlockWithMasterPassword(ctx, userID, request.MasterPassword)
	if err != nil {
		log.Err(err).Str("func", "*Handler.unlock").Msg("error unlocking with master password")
		writeError(w, err)
		return
	}
	// the session holds its own copy
	userKey.Destroy()

	h.runMigrationsInBackground(context.WithoutCancel(ctx), userID, request.MasterPassword)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) runMigrationsInBackground(ctx context.Context, userID uuid.UUID, masterPassword string) {
	go func() {
		if err := h.migrator.RunMigrations(ctx, userID, masterPassword); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*Handler.runMigrationsInBackground").Msg("error running migrations after unlock")
		}
	}()
}

// lock drops every decrypted key of the active account once a running
// migration has finished with them.
func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.migrator.WaitForMigrations(ctx); err != nil {
		log.Err(err).Str("func", "*Handler.lock").Msg("error waiting for migrations")
		writeError(w, err)
		return
	}
	if err = h.services.KeyService.Lock(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.lock").Msg("error locking")
		writeError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.lock").Str("user_id", userID.String()).Msg("locked")
	w.WriteHeader(http.StatusNoContent)
}
