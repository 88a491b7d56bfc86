package postgres

import (
	"context"
	"errors"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = "id, email, nome, username, password_hash, created_at, updated_at"

// ProfileRepository implements domain.ProfileRepository using PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Create inserts a new profile
func (r *ProfileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	row := r.pool.QueryRow(context.Background(),
		"INSERT INTO profiles (email, nome, username, password_hash) VALUES ($1, $2, $3, $4) RETURNING "+profileColumns,
		profile.Email, profile.Nome, stringPtrToPgText(profile.Username), profile.PasswordHash)
	created, err := scanProfile(row)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a profile by its ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*domain.Profile, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+profileColumns+" FROM profiles WHERE id = $1",
		pgtype.UUID{Bytes: id, Valid: true})
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(email string) (*domain.Profile, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+profileColumns+" FROM profiles WHERE email = $1", email)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update updates a profile's nome and username
func (r *ProfileRepository) Update(profile *domain.Profile) (*domain.Profile, error) {
	row := r.pool.QueryRow(context.Background(),
		"UPDATE profiles SET nome = $2, username = $3, updated_at = now() WHERE id = $1 RETURNING "+profileColumns,
		pgtype.UUID{Bytes: profile.ID, Valid: true}, profile.Nome, stringPtrToPgText(profile.Username))
	updated, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Helper functions

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p        domain.Profile
		id       pgtype.UUID
		username pgtype.Text
	)
	if err := row.Scan(&id, &p.Email, &p.Nome, &username, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ID = uuid.UUID(id.Bytes)
	if username.Valid {
		p.Username = &username.String
	}
	return &p, nil
}

func stringPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// isPgUniqueViolation checks if an error is a PostgreSQL unique constraint violation
func isPgUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// PostgreSQL unique violation error code is 23505
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// isPgForeignKeyViolation checks if an error is a PostgreSQL foreign key violation
func isPgForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	// PostgreSQL foreign key violation error code is 23503
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
