package service

import (
	"testing"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/financas-app/financas-backend/internal/testutil"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestSignUp_Success(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	profile, err := authService.SignUp("Ana@Example.com", "segredo123", "Ana Souza", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if profile.Email != "ana@example.com" {
		t.Errorf("Expected normalized email 'ana@example.com', got %s", profile.Email)
	}

	if profile.Nome != "Ana Souza" {
		t.Errorf("Expected nome 'Ana Souza', got %s", profile.Nome)
	}

	if profile.ID == uuid.Nil {
		t.Error("Expected a generated profile ID")
	}

	if profile.PasswordHash == "segredo123" {
		t.Error("Password must not be stored in clear text")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("segredo123")); err != nil {
		t.Errorf("Stored hash does not match the password: %v", err)
	}
}

func TestSignUp_EmptyEmail(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	_, err := authService.SignUp("   ", "segredo123", "Ana", nil)
	if err != domain.ErrEmailRequired {
		t.Errorf("Expected ErrEmailRequired, got %v", err)
	}
}

func TestSignUp_InvalidEmail(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	_, err := authService.SignUp("not-an-email", "segredo123", "Ana", nil)
	if err != domain.ErrInvalidEmail {
		t.Errorf("Expected ErrInvalidEmail, got %v", err)
	}
}

func TestSignUp_ShortPassword(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	_, err := authService.SignUp("ana@example.com", "curta", "Ana", nil)
	if err != domain.ErrPasswordTooShort {
		t.Errorf("Expected ErrPasswordTooShort, got %v", err)
	}
}

func TestSignUp_EmptyNome(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	_, err := authService.SignUp("ana@example.com", "segredo123", "   ", nil)
	if err != domain.ErrNomeRequired {
		t.Errorf("Expected ErrNomeRequired, got %v", err)
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	_, err := authService.SignUp("ana@example.com", "segredo123", "Ana", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = authService.SignUp("ANA@example.com", "outrasenha", "Outra Ana", nil)
	if err != domain.ErrEmailAlreadyExists {
		t.Errorf("Expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestSignUp_BlankUsernameDropped(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	blank := "   "
	profile, err := authService.SignUp("ana@example.com", "segredo123", "Ana", &blank)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if profile.Username != nil {
		t.Errorf("Expected blank username to be dropped, got %q", *profile.Username)
	}
}

func TestSignIn_Success(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	created, err := authService.SignUp("ana@example.com", "segredo123", "Ana", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	profile, err := authService.SignIn("Ana@Example.com", "segredo123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if profile.ID != created.ID {
		t.Errorf("Expected profile %s, got %s", created.ID, profile.ID)
	}
}

func TestSignIn_UnknownEmail(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	_, err := authService.SignIn("nobody@example.com", "segredo123")
	if err != domain.ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	authService := NewAuthService(profileRepo)

	_, err := authService.SignUp("ana@example.com", "segredo123", "Ana", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = authService.SignIn("ana@example.com", "senhaerrada")
	if err != domain.ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}
