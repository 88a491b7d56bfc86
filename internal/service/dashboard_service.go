package service

import (
	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService computes the dashboard summary
type DashboardService struct {
	categoriaRepo  domain.CategoriaRepository
	lancamentoRepo domain.LancamentoRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(categoriaRepo domain.CategoriaRepository, lancamentoRepo domain.LancamentoRepository) *DashboardService {
	return &DashboardService{
		categoriaRepo:  categoriaRepo,
		lancamentoRepo: lancamentoRepo,
	}
}

// GetSummary returns the categoria count, the user's lancamento count and the
// saldo total summed over the user's lancamentos. Everything is recomputed
// from the store on every call.
func (s *DashboardService) GetSummary(userID uuid.UUID) (*domain.DashboardSummary, error) {
	categorias, err := s.categoriaRepo.GetAll()
	if err != nil {
		return nil, err
	}

	lancamentos, err := s.lancamentoRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	saldo := decimal.Zero
	for _, l := range lancamentos {
		saldo = saldo.Add(l.Valor)
	}

	return &domain.DashboardSummary{
		TotalCategorias:  len(categorias),
		TotalLancamentos: len(lancamentos),
		SaldoTotal:       saldo,
	}, nil
}
