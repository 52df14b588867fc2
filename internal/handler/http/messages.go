package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/utils"
)

// sendMessageRequest is the inbound payload for POST /messages. The sender is
// never part of the body; it is always the verified token identity.
type sendMessageRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

// messageResponse wraps a single-message payload, matching the shape the
// operation produced: raw identities on send, resolved profiles on detail,
// and a bare receipt on mark-read.
type messageResponse struct {
	Message any `json:"message"`
}

// getMessage answers with the detail view of one message, both participants
// resolved. The acting identity must be a participant; the check runs in the
// service after the fetch.
func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid message id")
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	message, err := h.services.MessageService.Get(ctx, id, identity)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, messageResponse{Message: message}, http.StatusOK)
}

// sendMessage creates a message from the authenticated identity to the
// recipient named in the body.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	message, err := h.services.MessageService.Send(ctx, identity, req.ToUsername, req.Body)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, messageResponse{Message: message}, http.StatusCreated)
}

// markMessageRead stamps read_at on a message. Only the recipient may do so;
// the check runs in the service after the fetch.
func (h *Handler) markMessageRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid message id")
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	receipt, err := h.services.MessageService.MarkRead(ctx, id, identity)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, messageResponse{Message: receipt}, http.StatusOK)
}
