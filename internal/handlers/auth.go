package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/carebridge/hcms-server/internal/models"
	"github.com/carebridge/hcms-server/internal/services"
)

// UserAccounts is the slice of the user service the auth endpoints need.
type UserAccounts interface {
	Register(ctx context.Context, req *models.RegisterRequest) (int64, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles registration and login
type AuthHandler struct {
	users  UserAccounts
	logger *zap.SugaredLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users UserAccounts, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Role == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: email, password, role")
		return
	}

	userID, err := h.users.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.logger.Errorw("Failed to register user", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// One message for unknown email and wrong password alike, so the
		// endpoint cannot be used to enumerate accounts.
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Errorw("Failed to log in user", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
