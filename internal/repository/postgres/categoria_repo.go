package postgres

import (
	"context"
	"errors"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoriaColumns = "id, nome, created_at, updated_at"

// CategoriaRepository implements domain.CategoriaRepository using PostgreSQL
type CategoriaRepository struct {
	pool *pgxpool.Pool
}

// NewCategoriaRepository creates a new CategoriaRepository
func NewCategoriaRepository(pool *pgxpool.Pool) *CategoriaRepository {
	return &CategoriaRepository{pool: pool}
}

// Create inserts a new categoria
func (r *CategoriaRepository) Create(categoria *domain.Categoria) (*domain.Categoria, error) {
	row := r.pool.QueryRow(context.Background(),
		"INSERT INTO categorias (nome) VALUES ($1) RETURNING "+categoriaColumns,
		categoria.Nome)
	created, err := scanCategoria(row)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoriaAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a categoria by its ID
func (r *CategoriaRepository) GetByID(id int32) (*domain.Categoria, error) {
	row := r.pool.QueryRow(context.Background(),
		"SELECT "+categoriaColumns+" FROM categorias WHERE id = $1", id)
	categoria, err := scanCategoria(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoriaNotFound
		}
		return nil, err
	}
	return categoria, nil
}

// GetAll retrieves all categorias ordered by nome ascending
func (r *CategoriaRepository) GetAll() ([]*domain.Categoria, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+categoriaColumns+" FROM categorias ORDER BY nome ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*domain.Categoria{}
	for rows.Next() {
		categoria, err := scanCategoria(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, categoria)
	}
	return result, rows.Err()
}

// Update updates a categoria's nome
func (r *CategoriaRepository) Update(id int32, nome string) (*domain.Categoria, error) {
	row := r.pool.QueryRow(context.Background(),
		"UPDATE categorias SET nome = $2, updated_at = now() WHERE id = $1 RETURNING "+categoriaColumns,
		id, nome)
	categoria, err := scanCategoria(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoriaNotFound
		}
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoriaAlreadyExists
		}
		return nil, err
	}
	return categoria, nil
}

// Delete removes a categoria
func (r *CategoriaRepository) Delete(id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		"DELETE FROM categorias WHERE id = $1", id)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return domain.ErrCategoriaInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoriaNotFound
	}
	return nil
}

// CountLancamentos counts the lancamentos referencing a categoria
func (r *CategoriaRepository) CountLancamentos(id int32) (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM lancamentos WHERE categoria_id = $1", id).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func scanCategoria(row pgx.Row) (*domain.Categoria, error) {
	var c domain.Categoria
	if err := row.Scan(&c.ID, &c.Nome, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
