package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/financas-app/financas-backend/internal/middleware"
	"github.com/financas-app/financas-backend/internal/service"
	"github.com/financas-app/financas-backend/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Nome     string  `json:"nome"`
	Username *string `json:"username,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Nome      string  `json:"nome"`
	Username  *string `json:"username,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, err := h.authService.SignUp(req.Email, req.Password, req.Nome, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRequired), errors.Is(err, domain.ErrInvalidEmail):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "email", Message: "A valid email is required"},
			})
		case errors.Is(err, domain.ErrPasswordTooShort):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "password", Message: "Password must be at least 8 characters"},
			})
		case errors.Is(err, domain.ErrNomeRequired), errors.Is(err, domain.ErrNomeTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "nome", Message: "Nome is required"},
			})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return NewConflictError(c, "This email is already registered")
		}
		log.Error().Err(err).Msg("Signup failed")
		return NewInternalError(c, "Failed to sign up")
	}

	if err := h.startSession(c, profile.ID, profile.Email); err != nil {
		log.Error().Err(err).Str("user_id", profile.ID.String()).Msg("Failed to issue session after signup")
		return NewInternalError(c, "Failed to sign up")
	}

	return c.JSON(http.StatusCreated, toProfileResponse(profile))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return NewUnauthorizedError(c, "Invalid email or password")
		}
		log.Error().Err(err).Msg("Login failed")
		return NewInternalError(c, "Failed to log in")
	}

	if err := h.startSession(c, profile.ID, profile.Email); err != nil {
		log.Error().Err(err).Str("user_id", profile.ID.String()).Msg("Failed to issue session")
		return NewInternalError(c, "Failed to log in")
	}

	log.Info().Str("user_id", profile.ID.String()).Msg("User logged in")
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.ClearCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	profile, err := h.authService.GetProfileByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewUnauthorizedError(c, "Session required")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load profile")
		return NewInternalError(c, "Failed to load profile")
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *AuthHandler) startSession(c echo.Context, userID uuid.UUID, email string) error {
	token, err := h.sessions.Issue(userID, email)
	if err != nil {
		return err
	}
	h.sessions.WriteCookie(c, token)
	return nil
}

func toProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID.String(),
		Email:     profile.Email,
		Nome:      profile.Nome,
		Username:  profile.Username,
		CreatedAt: profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt: profile.UpdatedAt.Format(time.RFC3339),
	}
}
