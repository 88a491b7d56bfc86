package postgres

import (
	"context"
	"errors"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const createLancamentoQuery = `
WITH inserted AS (
    INSERT INTO lancamentos (descricao, valor, data, categoria_id, user_id)
    VALUES ($1, $2::numeric, $3, $4, $5)
    RETURNING id, descricao, valor, data, categoria_id, user_id, created_at, updated_at
)
SELECT i.id, i.descricao, i.valor::text, i.data, i.categoria_id, i.user_id, i.created_at, i.updated_at, c.nome
FROM inserted i
JOIN categorias c ON c.id = i.categoria_id`

const updateLancamentoQuery = `
WITH updated AS (
    UPDATE lancamentos
    SET descricao = $3, valor = $4::numeric, data = $5, categoria_id = $6, updated_at = now()
    WHERE id = $2 AND user_id = $1
    RETURNING id, descricao, valor, data, categoria_id, user_id, created_at, updated_at
)
SELECT u.id, u.descricao, u.valor::text, u.data, u.categoria_id, u.user_id, u.created_at, u.updated_at, c.nome
FROM updated u
JOIN categorias c ON c.id = u.categoria_id`

const selectLancamentoQuery = `
SELECT l.id, l.descricao, l.valor::text, l.data, l.categoria_id, l.user_id, l.created_at, l.updated_at, c.nome
FROM lancamentos l
JOIN categorias c ON c.id = l.categoria_id
WHERE l.user_id = $1`

// LancamentoRepository implements domain.LancamentoRepository using PostgreSQL
type LancamentoRepository struct {
	pool *pgxpool.Pool
}

// NewLancamentoRepository creates a new LancamentoRepository
func NewLancamentoRepository(pool *pgxpool.Pool) *LancamentoRepository {
	return &LancamentoRepository{pool: pool}
}

// Create inserts a new lancamento and returns it with the categoria embedded
func (r *LancamentoRepository) Create(lancamento *domain.Lancamento) (*domain.Lancamento, error) {
	row := r.pool.QueryRow(context.Background(), createLancamentoQuery,
		stringPtrToPgText(lancamento.Descricao),
		lancamento.Valor.String(),
		lancamento.Data,
		lancamento.CategoriaID,
		pgtype.UUID{Bytes: lancamento.UserID, Valid: true})
	created, err := scanLancamento(row)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCategoriaNotFound
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a lancamento by ID, scoped to the owning user
func (r *LancamentoRepository) GetByID(userID uuid.UUID, id int32) (*domain.Lancamento, error) {
	row := r.pool.QueryRow(context.Background(), selectLancamentoQuery+" AND l.id = $2",
		pgtype.UUID{Bytes: userID, Valid: true}, id)
	lancamento, err := scanLancamento(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLancamentoNotFound
		}
		return nil, err
	}
	return lancamento, nil
}

// GetAllByUser retrieves the user's lancamentos ordered by data descending
func (r *LancamentoRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Lancamento, error) {
	rows, err := r.pool.Query(context.Background(),
		selectLancamentoQuery+" ORDER BY l.data DESC, l.id DESC",
		pgtype.UUID{Bytes: userID, Valid: true})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*domain.Lancamento{}
	for rows.Next() {
		lancamento, err := scanLancamento(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, lancamento)
	}
	return result, rows.Err()
}

// Update updates a lancamento, scoped to the owning user
func (r *LancamentoRepository) Update(lancamento *domain.Lancamento) (*domain.Lancamento, error) {
	row := r.pool.QueryRow(context.Background(), updateLancamentoQuery,
		pgtype.UUID{Bytes: lancamento.UserID, Valid: true},
		lancamento.ID,
		stringPtrToPgText(lancamento.Descricao),
		lancamento.Valor.String(),
		lancamento.Data,
		lancamento.CategoriaID)
	updated, err := scanLancamento(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLancamentoNotFound
		}
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCategoriaNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a lancamento, scoped to the owning user
func (r *LancamentoRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		"DELETE FROM lancamentos WHERE id = $2 AND user_id = $1",
		pgtype.UUID{Bytes: userID, Valid: true}, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLancamentoNotFound
	}
	return nil
}

func scanLancamento(row pgx.Row) (*domain.Lancamento, error) {
	var (
		l         domain.Lancamento
		descricao pgtype.Text
		valor     string
		userID    pgtype.UUID
		nome      string
	)
	if err := row.Scan(&l.ID, &descricao, &valor, &l.Data, &l.CategoriaID, &userID, &l.CreatedAt, &l.UpdatedAt, &nome); err != nil {
		return nil, err
	}
	if descricao.Valid {
		l.Descricao = &descricao.String
	}
	parsed, err := decimal.NewFromString(valor)
	if err != nil {
		return nil, err
	}
	l.Valor = parsed
	l.UserID = uuid.UUID(userID.Bytes)
	l.Categoria = &domain.Categoria{ID: l.CategoriaID, Nome: nome}
	return &l, nil
}
