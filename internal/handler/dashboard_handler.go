package handler

import (
	"net/http"

	"github.com/financas-app/financas-backend/internal/middleware"
	"github.com/financas-app/financas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	TotalCategorias  int    `json:"totalCategorias"`
	TotalLancamentos int    `json:"totalLancamentos"`
	SaldoTotal       string `json:"saldoTotal"`
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	summary, err := h.dashboardService.GetSummary(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute dashboard summary")
		return NewInternalError(c, "Failed to compute summary")
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalCategorias:  summary.TotalCategorias,
		TotalLancamentos: summary.TotalLancamentos,
		SaldoTotal:       summary.SaldoTotal.StringFixed(2),
	})
}
