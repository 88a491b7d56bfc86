package service

import (
	"strings"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/google/uuid"
)

// ProfileService handles profile business logic
type ProfileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo domain.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(id uuid.UUID) (*domain.Profile, error) {
	return s.profileRepo.GetByID(id)
}

// UpdateProfile updates the profile's nome and username
func (s *ProfileService) UpdateProfile(id uuid.UUID, nome string, username *string) (*domain.Profile, error) {
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

	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	profile.Nome = nome
	profile.Username = username
	return s.profileRepo.Update(profile)
}
