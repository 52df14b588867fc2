package http

import (
	"errors"
	"net/http"

	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/service"
	"github.com/messagely/messagely/internal/store"
)

// errorStatusMap is the fixed, exhaustive mapping from domain error kinds to
// transport status codes. The service and store layers never format HTTP
// responses; this table is the single place where their error taxonomy meets
// the wire.
//
// Policy notes:
//   - service.ErrForbidden maps to 401, not 403: the system does not expose
//     a distinct "authenticated but not allowed" status outward.
//   - Anything absent from the table is a storage-level or unexpected fault
//     and collapses to 500 with a generic body; raw diagnostics stay in the
//     logs only.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusUnauthorized,

	store.ErrUsernameTaken:     http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrMessageNotFound:   http.StatusNotFound,
	store.ErrRecipientNotFound: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// handleServiceError translates a service/store error into an HTTP response
// using the fixed status table. Classified errors answer with the sentinel's
// own message; unclassified ones answer with a generic 500 body so that no
// internal diagnostic detail leaks across the boundary.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Err(err).Int("status", status).Send()
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			http.Error(w, target.Error(), status)
			return
		}
	}
}
