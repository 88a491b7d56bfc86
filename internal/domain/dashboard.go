package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the numbers shown on the dashboard. It is
// recomputed from the store on every request; nothing here is cached.
type DashboardSummary struct {
	TotalCategorias  int             `json:"totalCategorias"`
	TotalLancamentos int             `json:"totalLancamentos"`
	SaldoTotal       decimal.Decimal `json:"saldoTotal"`
}
