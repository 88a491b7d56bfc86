package domain

import "time"

// Categoria is a named grouping for lancamentos. Categorias are global rather
// than per-user; nome uniqueness is enforced by the store.
type Categoria struct {
	ID        int32     `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoriaRepository interface {
	Create(categoria *Categoria) (*Categoria, error)
	GetByID(id int32) (*Categoria, error)
	// GetAll returns every categoria ordered by nome ascending.
	GetAll() ([]*Categoria, error)
	Update(id int32, nome string) (*Categoria, error)
	Delete(id int32) error
	// CountLancamentos reports how many lancamentos reference the categoria.
	CountLancamentos(id int32) (int64, error)
}
