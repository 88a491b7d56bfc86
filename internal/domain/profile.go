package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a registered user of the application. The password hash never
// leaves the repository/service layers.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Nome         string    `json:"nome"`
	Username     *string   `json:"username,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProfileRepository interface {
	Create(profile *Profile) (*Profile, error)
	GetByID(id uuid.UUID) (*Profile, error)
	GetByEmail(email string) (*Profile, error)
	Update(profile *Profile) (*Profile, error)
}
