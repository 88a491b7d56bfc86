package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lancamento is a single dated monetary record owned by a user and tagged to a
// categoria. Valor is signed: positive for income, negative for expenses.
type Lancamento struct {
	ID          int32           `json:"id"`
	Descricao   *string         `json:"descricao,omitempty"`
	Valor       decimal.Decimal `json:"valor"`
	Data        time.Time       `json:"data"`
	CategoriaID int32           `json:"categoria_id"`
	UserID      uuid.UUID       `json:"user_id"`
	// Categoria is populated on joined reads.
	Categoria *Categoria `json:"categorias,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// LancamentoRepository scopes every read and write to the owning user, except
// Create, which stamps the owner from the value it is given.
type LancamentoRepository interface {
	// Create inserts the lancamento and returns it with Categoria embedded.
	Create(lancamento *Lancamento) (*Lancamento, error)
	GetByID(userID uuid.UUID, id int32) (*Lancamento, error)
	// GetAllByUser returns the user's lancamentos ordered by data descending,
	// with Categoria embedded.
	GetAllByUser(userID uuid.UUID) ([]*Lancamento, error)
	Update(lancamento *Lancamento) (*Lancamento, error)
	Delete(userID uuid.UUID, id int32) error
}
