package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/utils"
	"github.com/messagely/messagely/models"
)

// registerRequest is the inbound payload for POST /auth/register.
type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// loginRequest is the inbound payload for POST /auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse is the outbound payload of both auth endpoints.
type tokenResponse struct {
	Token string `json:"token"`
}

// register creates a new account, records the first login, and answers with
// a freshly issued bearer token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.services.AuthService.TouchLogin(ctx, registeredUser.Username); err != nil {
		handleServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser.Username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, tokenResponse{Token: token.SignedString}, http.StatusCreated)
}

// login verifies credentials, records the login, and answers with a freshly
// issued bearer token. Unknown user and wrong password are indistinguishable
// in the response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	if err := h.services.AuthService.TouchLogin(ctx, foundUser.Username); err != nil {
		handleServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser.Username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, tokenResponse{Token: token.SignedString}, http.StatusOK)
}
