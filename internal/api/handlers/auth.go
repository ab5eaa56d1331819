package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/urbangis/server/internal/api/respond"
	"github.com/urbangis/server/internal/domain/users"
)

type AuthHandler struct {
	Service *users.Service
}

func NewAuthHandler(service *users.Service) *AuthHandler {
	return &AuthHandler{Service: service}
}

type credentialsResponse struct {
	User  users.User `json:"user"`
	Token string     `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		respond.Error(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}

	var input users.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing fields", err)
		return
	}

	user, token, err := h.Service.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrMissingFields):
			respond.Error(w, r, http.StatusBadRequest, "Missing fields", err)
		case errors.Is(err, users.ErrEmailTaken):
			respond.Error(w, r, http.StatusConflict, "Email already exists", err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, credentialsResponse{User: user, Token: token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		respond.Error(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}

	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusUnauthorized, "Invalid credentials", err)
		return
	}

	user, token, err := h.Service.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			respond.Error(w, r, http.StatusUnauthorized, "Invalid credentials", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}

	respond.JSON(w, http.StatusOK, credentialsResponse{User: user, Token: token})
}
