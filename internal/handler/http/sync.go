package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/internal/migration"
	"github.com/MKhiriev/go-pass-keycore/internal/service"
	"github.com/MKhiriev/go-pass-keycore/models"
)

// sync forces a full sync of the active account.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.services.SyncService.FullSync(ctx, userID, true); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error syncing")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// migrate runs the pending migrations. A migration that needs the master
// password fails the request with 400 when none is passed.
func (h *Handler) migrate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var request models.MasterPasswordRequest
	if err = decodeJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.migrate").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	requirement, err := h.migrator.NeedsMigrations(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.migrate").Msg("error checking migrations")
		writeError(w, err)
		return
	}
	if requirement == migration.NeedsMigrationWithMasterPassword && request.MasterPassword == "" {
		writeError(w, service.ErrMasterPasswordRequired)
		return
	}

	if err = h.migrator.RunMigrations(ctx, userID, request.MasterPassword); err != nil {
		log.Err(err).Str("func", "*Handler.migrate").Msg("error running migrations")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
