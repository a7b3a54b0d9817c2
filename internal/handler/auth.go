package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rlwai/shop-api/internal/audit"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
	"github.com/rlwai/shop-api/internal/service"
)

type LoginService interface {
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
}

type AuthHandler struct {
	authService LoginService
}

func NewAuthHandler(authService LoginService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.ValidationError("Invalid JSON"))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeInvalidCredentials) {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginFailure, Login: req.Username})
		}
		writeError(w, r, err, "login failed")
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess, Login: req.Username})
	writeJSON(w, http.StatusOK, result)
}
