package service

import (
	"strings"
	"time"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LancamentoInput carries the client-supplied fields of a lancamento. The
// owning user is never part of the input; it always comes from the session.
type LancamentoInput struct {
	Descricao   *string
	Valor       decimal.Decimal
	Data        time.Time
	CategoriaID int32
}

// LancamentoService handles lancamento business logic
type LancamentoService struct {
	lancamentoRepo domain.LancamentoRepository
}

// NewLancamentoService creates a new LancamentoService
func NewLancamentoService(lancamentoRepo domain.LancamentoRepository) *LancamentoService {
	return &LancamentoService{lancamentoRepo: lancamentoRepo}
}

func validateLancamentoInput(in *LancamentoInput) error {
	if in.Valor.IsZero() {
		return domain.ErrValorZero
	}
	if in.Data.IsZero() {
		return domain.ErrDataRequired
	}
	if in.CategoriaID <= 0 {
		return domain.ErrCategoriaRequired
	}
	if in.Descricao != nil {
		trimmed := strings.TrimSpace(*in.Descricao)
		if trimmed == "" {
			in.Descricao = nil
		} else {
			in.Descricao = &trimmed
		}
	}
	return nil
}

// CreateLancamento validates the input and creates a lancamento owned by
// userID. Validation failures happen before any repository call.
func (s *LancamentoService) CreateLancamento(userID uuid.UUID, in LancamentoInput) (*domain.Lancamento, error) {
	if err := validateLancamentoInput(&in); err != nil {
		return nil, err
	}

	return s.lancamentoRepo.Create(&domain.Lancamento{
		Descricao:   in.Descricao,
		Valor:       in.Valor,
		Data:        truncateToDate(in.Data),
		CategoriaID: in.CategoriaID,
		UserID:      userID,
	})
}

// GetLancamentos retrieves the user's lancamentos with categorias embedded
func (s *LancamentoService) GetLancamentos(userID uuid.UUID) ([]*domain.Lancamento, error) {
	return s.lancamentoRepo.GetAllByUser(userID)
}

// UpdateLancamento validates the input and updates a lancamento the user owns
func (s *LancamentoService) UpdateLancamento(userID uuid.UUID, id int32, in LancamentoInput) (*domain.Lancamento, error) {
	if err := validateLancamentoInput(&in); err != nil {
		return nil, err
	}

	return s.lancamentoRepo.Update(&domain.Lancamento{
		ID:          id,
		Descricao:   in.Descricao,
		Valor:       in.Valor,
		Data:        truncateToDate(in.Data),
		CategoriaID: in.CategoriaID,
		UserID:      userID,
	})
}

// DeleteLancamento deletes a lancamento the user owns
func (s *LancamentoService) DeleteLancamento(userID uuid.UUID, id int32) error {
	return s.lancamentoRepo.Delete(userID, id)
}

// truncateToDate normalizes a timestamp to its calendar date
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
