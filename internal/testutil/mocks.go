package testutil

import (
	"sort"
	"time"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/google/uuid"
)

// MockProfileRepository is a mock implementation of domain.ProfileRepository
type MockProfileRepository struct {
	ByEmail map[string]*domain.Profile
	ByID    map[uuid.UUID]*domain.Profile
}

// NewMockProfileRepository creates a new MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		ByEmail: make(map[string]*domain.Profile),
		ByID:    make(map[uuid.UUID]*domain.Profile),
	}
}

// Create creates a new profile, enforcing email uniqueness
func (m *MockProfileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	if _, ok := m.ByEmail[profile.Email]; ok {
		return nil, domain.ErrEmailAlreadyExists
	}
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	m.ByEmail[profile.Email] = profile
	m.ByID[profile.ID] = profile
	return profile, nil
}

// GetByID retrieves a profile by ID
func (m *MockProfileRepository) GetByID(id uuid.UUID) (*domain.Profile, error) {
	if profile, ok := m.ByID[id]; ok {
		return profile, nil
	}
	return nil, domain.ErrProfileNotFound
}

// GetByEmail retrieves a profile by email
func (m *MockProfileRepository) GetByEmail(email string) (*domain.Profile, error) {
	if profile, ok := m.ByEmail[email]; ok {
		return profile, nil
	}
	return nil, domain.ErrProfileNotFound
}

// Update updates an existing profile
func (m *MockProfileRepository) Update(profile *domain.Profile) (*domain.Profile, error) {
	existing, ok := m.ByID[profile.ID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	existing.Nome = profile.Nome
	existing.Username = profile.Username
	existing.UpdatedAt = time.Now()
	return existing, nil
}

// MockCategoriaRepository is a mock implementation of domain.CategoriaRepository
type MockCategoriaRepository struct {
	Categorias map[int32]*domain.Categoria
	NextID     int32
	// LancamentoCounts backs CountLancamentos, keyed by categoria ID.
	LancamentoCounts map[int32]int64
}

// NewMockCategoriaRepository creates a new MockCategoriaRepository
func NewMockCategoriaRepository() *MockCategoriaRepository {
	return &MockCategoriaRepository{
		Categorias:       make(map[int32]*domain.Categoria),
		NextID:           1,
		LancamentoCounts: make(map[int32]int64),
	}
}

// Create creates a new categoria, enforcing nome uniqueness
func (m *MockCategoriaRepository) Create(categoria *domain.Categoria) (*domain.Categoria, error) {
	for _, existing := range m.Categorias {
		if existing.Nome == categoria.Nome {
			return nil, domain.ErrCategoriaAlreadyExists
		}
	}
	categoria.ID = m.NextID
	m.NextID++
	categoria.CreatedAt = time.Now()
	categoria.UpdatedAt = categoria.CreatedAt
	m.Categorias[categoria.ID] = categoria
	return categoria, nil
}

// GetByID retrieves a categoria by ID
func (m *MockCategoriaRepository) GetByID(id int32) (*domain.Categoria, error) {
	if categoria, ok := m.Categorias[id]; ok {
		return categoria, nil
	}
	return nil, domain.ErrCategoriaNotFound
}

// GetAll returns all categorias ordered by nome ascending
func (m *MockCategoriaRepository) GetAll() ([]*domain.Categoria, error) {
	categorias := make([]*domain.Categoria, 0, len(m.Categorias))
	for _, categoria := range m.Categorias {
		categorias = append(categorias, categoria)
	}
	sort.Slice(categorias, func(i, j int) bool {
		return categorias[i].Nome < categorias[j].Nome
	})
	return categorias, nil
}

// Update updates a categoria's nome
func (m *MockCategoriaRepository) Update(id int32, nome string) (*domain.Categoria, error) {
	categoria, ok := m.Categorias[id]
	if !ok {
		return nil, domain.ErrCategoriaNotFound
	}
	for _, existing := range m.Categorias {
		if existing.ID != id && existing.Nome == nome {
			return nil, domain.ErrCategoriaAlreadyExists
		}
	}
	categoria.Nome = nome
	categoria.UpdatedAt = time.Now()
	return categoria, nil
}

// Delete removes a categoria
func (m *MockCategoriaRepository) Delete(id int32) error {
	if _, ok := m.Categorias[id]; !ok {
		return domain.ErrCategoriaNotFound
	}
	if m.LancamentoCounts[id] > 0 {
		return domain.ErrCategoriaInUse
	}
	delete(m.Categorias, id)
	return nil
}

// CountLancamentos reports how many lancamentos reference the categoria
func (m *MockCategoriaRepository) CountLancamentos(id int32) (int64, error) {
	return m.LancamentoCounts[id], nil
}

// MockLancamentoRepository is a mock implementation of domain.LancamentoRepository
type MockLancamentoRepository struct {
	Lancamentos map[int32]*domain.Lancamento
	NextID      int32
	// Categorias, when set, backs the embedded categoria on joined reads and
	// the foreign key check on writes.
	Categorias *MockCategoriaRepository
}

// NewMockLancamentoRepository creates a new MockLancamentoRepository
func NewMockLancamentoRepository() *MockLancamentoRepository {
	return &MockLancamentoRepository{
		Lancamentos: make(map[int32]*domain.Lancamento),
		NextID:      1,
	}
}

func (m *MockLancamentoRepository) embedCategoria(lancamento *domain.Lancamento) (*domain.Lancamento, error) {
	if m.Categorias == nil {
		return lancamento, nil
	}
	categoria, err := m.Categorias.GetByID(lancamento.CategoriaID)
	if err != nil {
		return nil, domain.ErrCategoriaNotFound
	}
	lancamento.Categoria = categoria
	return lancamento, nil
}

// Create inserts a lancamento and returns it with its categoria embedded
func (m *MockLancamentoRepository) Create(lancamento *domain.Lancamento) (*domain.Lancamento, error) {
	if m.Categorias != nil {
		if _, err := m.Categorias.GetByID(lancamento.CategoriaID); err != nil {
			return nil, domain.ErrCategoriaNotFound
		}
		m.Categorias.LancamentoCounts[lancamento.CategoriaID]++
	}
	lancamento.ID = m.NextID
	m.NextID++
	lancamento.CreatedAt = time.Now()
	lancamento.UpdatedAt = lancamento.CreatedAt
	m.Lancamentos[lancamento.ID] = lancamento
	return m.embedCategoria(lancamento)
}

// GetByID retrieves a lancamento owned by the given user
func (m *MockLancamentoRepository) GetByID(userID uuid.UUID, id int32) (*domain.Lancamento, error) {
	lancamento, ok := m.Lancamentos[id]
	if !ok || lancamento.UserID != userID {
		return nil, domain.ErrLancamentoNotFound
	}
	return m.embedCategoria(lancamento)
}

// GetAllByUser returns the user's lancamentos ordered by data descending
func (m *MockLancamentoRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Lancamento, error) {
	lancamentos := make([]*domain.Lancamento, 0)
	for _, lancamento := range m.Lancamentos {
		if lancamento.UserID != userID {
			continue
		}
		withCategoria, err := m.embedCategoria(lancamento)
		if err != nil {
			return nil, err
		}
		lancamentos = append(lancamentos, withCategoria)
	}
	sort.Slice(lancamentos, func(i, j int) bool {
		if lancamentos[i].Data.Equal(lancamentos[j].Data) {
			return lancamentos[i].ID > lancamentos[j].ID
		}
		return lancamentos[i].Data.After(lancamentos[j].Data)
	})
	return lancamentos, nil
}

// Update updates a lancamento owned by the given user
func (m *MockLancamentoRepository) Update(lancamento *domain.Lancamento) (*domain.Lancamento, error) {
	existing, ok := m.Lancamentos[lancamento.ID]
	if !ok || existing.UserID != lancamento.UserID {
		return nil, domain.ErrLancamentoNotFound
	}
	if m.Categorias != nil {
		if _, err := m.Categorias.GetByID(lancamento.CategoriaID); err != nil {
			return nil, domain.ErrCategoriaNotFound
		}
	}
	existing.Descricao = lancamento.Descricao
	existing.Valor = lancamento.Valor
	existing.Data = lancamento.Data
	existing.CategoriaID = lancamento.CategoriaID
	existing.UpdatedAt = time.Now()
	return m.embedCategoria(existing)
}

// Delete removes a lancamento owned by the given user
func (m *MockLancamentoRepository) Delete(userID uuid.UUID, id int32) error {
	lancamento, ok := m.Lancamentos[id]
	if !ok || lancamento.UserID != userID {
		return domain.ErrLancamentoNotFound
	}
	if m.Categorias != nil {
		m.Categorias.LancamentoCounts[lancamento.CategoriaID]--
	}
	delete(m.Lancamentos, id)
	return nil
}
