package service

import (
	"strings"

	"github.com/financas-app/financas-backend/internal/domain"
)

// CategoriaService handles categoria business logic
type CategoriaService struct {
	categoriaRepo domain.CategoriaRepository
}

// NewCategoriaService creates a new CategoriaService
func NewCategoriaService(categoriaRepo domain.CategoriaRepository) *CategoriaService {
	return &CategoriaService{categoriaRepo: categoriaRepo}
}

// CreateCategoria creates a new categoria
func (s *CategoriaService) CreateCategoria(nome string) (*domain.Categoria, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrNomeRequired
	}
	if len(nome) > domain.MaxCategoriaNomeLength {
		return nil, domain.ErrNomeTooLong
	}

	return s.categoriaRepo.Create(&domain.Categoria{Nome: nome})
}

// GetCategorias retrieves all categorias ordered by nome
func (s *CategoriaService) GetCategorias() ([]*domain.Categoria, error) {
	return s.categoriaRepo.GetAll()
}

// GetCategoriaByID retrieves a categoria by ID
func (s *CategoriaService) GetCategoriaByID(id int32) (*domain.Categoria, error) {
	return s.categoriaRepo.GetByID(id)
}

// UpdateCategoria updates a categoria's nome
func (s *CategoriaService) UpdateCategoria(id int32, nome string) (*domain.Categoria, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrNomeRequired
	}
	if len(nome) > domain.MaxCategoriaNomeLength {
		return nil, domain.ErrNomeTooLong
	}

	return s.categoriaRepo.Update(id, nome)
}

// DeleteCategoria deletes a categoria. Deletion is refused while lancamentos
// still reference it.
func (s *CategoriaService) DeleteCategoria(id int32) error {
	if _, err := s.categoriaRepo.GetByID(id); err != nil {
		return err
	}

	count, err := s.categoriaRepo.CountLancamentos(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoriaInUse
	}

	return s.categoriaRepo.Delete(id)
}
