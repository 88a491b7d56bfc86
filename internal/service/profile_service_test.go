package service

import (
	"testing"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/financas-app/financas-backend/internal/testutil"
	"github.com/google/uuid"
)

func TestGetProfile_Success(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	created, err := profileRepo.Create(&domain.Profile{
		Email: "ana@example.com",
		Nome:  "Ana",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	profile, err := profileService.GetProfile(created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if profile.Email != "ana@example.com" {
		t.Errorf("Expected email 'ana@example.com', got %s", profile.Email)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	_, err := profileService.GetProfile(uuid.New())
	if err != domain.ErrProfileNotFound {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	created, err := profileRepo.Create(&domain.Profile{
		Email: "ana@example.com",
		Nome:  "Ana",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	username := "ana.souza"
	updated, err := profileService.UpdateProfile(created.ID, "  Ana Souza ", &username)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Nome != "Ana Souza" {
		t.Errorf("Expected nome 'Ana Souza', got %q", updated.Nome)
	}

	if updated.Username == nil || *updated.Username != "ana.souza" {
		t.Errorf("Expected username 'ana.souza', got %v", updated.Username)
	}
}

func TestUpdateProfile_EmptyNome(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	created, err := profileRepo.Create(&domain.Profile{
		Email: "ana@example.com",
		Nome:  "Ana",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = profileService.UpdateProfile(created.ID, "   ", nil)
	if err != domain.ErrNomeRequired {
		t.Errorf("Expected ErrNomeRequired, got %v", err)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	_, err := profileService.UpdateProfile(uuid.New(), "Ana", nil)
	if err != domain.ErrProfileNotFound {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}
