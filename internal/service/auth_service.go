package service

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and credential verification
type AuthService struct {
	profileRepo domain.ProfileRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(profileRepo domain.ProfileRepository) *AuthService {
	return &AuthService{profileRepo: profileRepo}
}

// SignUp registers a new profile. The profile row is created in the same step
// as the account; there is no separate post-signup update.
func (s *AuthService) SignUp(email, password, nome string, username *string) (*domain.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrNomeRequired
	}
	if len(nome) > domain.MaxNomeLength {
		return nil, domain.ErrNomeTooLong
	}
	if username != nil {
		trimmed := strings.TrimSpace(*username)
		if trimmed == "" {
			username = nil
		} else {
			username = &trimmed
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Create(&domain.Profile{
		Email:        email,
		Nome:         nome,
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Error().Err(err).Str("email", email).Msg("Failed to create profile")
		}
		return nil, err
	}

	log.Info().Str("user_id", profile.ID.String()).Msg("Profile created")
	return profile, nil
}

// SignIn verifies credentials and returns the matching profile. Unknown email
// and wrong password both map to ErrInvalidCredentials so the response does
// not reveal which one failed.
func (s *AuthService) SignIn(email, password string) (*domain.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to look up profile")
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return profile, nil
}

// GetProfileByID retrieves a profile by its ID
func (s *AuthService) GetProfileByID(id uuid.UUID) (*domain.Profile, error) {
	return s.profileRepo.GetByID(id)
}
