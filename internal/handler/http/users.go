package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/messagely/messagely/internal/utils"
	"github.com/messagely/messagely/models"
)

// usersResponse wraps the directory listing payload.
type usersResponse struct {
	Users []models.UserProfile `json:"users"`
}

// userResponse wraps the single-profile payload.
type userResponse struct {
	User models.User `json:"user"`
}

// messagesToResponse wraps the inbox listing payload.
type messagesToResponse struct {
	Messages []models.MessageWithSender `json:"messages"`
}

// messagesFromResponse wraps the outbox listing payload.
type messagesFromResponse struct {
	Messages []models.MessageWithRecipient `json:"messages"`
}

// listUsers answers with public profiles of all users.
// Guarded by auth only; any authenticated caller may list the directory.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, usersResponse{Users: users}, http.StatusOK)
}

// getUser answers with the full profile of the {username} resource,
// including join_at and last_login_at. Guarded by auth + ownUser.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.services.UserService.Get(r.Context(), username)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, userResponse{User: user}, http.StatusOK)
}

// listMessagesTo answers with all messages addressed to {username}, each with
// the sender resolved into a public profile. Guarded by auth + ownUser.
func (h *Handler) listMessagesTo(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	messages, err := h.services.MessageService.ListTo(r.Context(), username)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, messagesToResponse{Messages: messages}, http.StatusOK)
}

// listMessagesFrom answers with all messages sent by {username}, each with
// the recipient resolved into a public profile. Guarded by auth + ownUser.
func (h *Handler) listMessagesFrom(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	messages, err := h.services.MessageService.ListFrom(r.Context(), username)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, messagesFromResponse{Messages: messages}, http.StatusOK)
}
