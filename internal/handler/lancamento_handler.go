package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/financas-app/financas-backend/internal/middleware"
	"github.com/financas-app/financas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LancamentoHandler handles lancamento HTTP requests
type LancamentoHandler struct {
	lancamentoService *service.LancamentoService
}

// NewLancamentoHandler creates a new LancamentoHandler
func NewLancamentoHandler(lancamentoService *service.LancamentoService) *LancamentoHandler {
	return &LancamentoHandler{lancamentoService: lancamentoService}
}

// LancamentoRequest represents the create/update lancamento request body.
// Any user_id supplied by the client is ignored; ownership always comes from
// the session.
type LancamentoRequest struct {
	Descricao   *string     `json:"descricao,omitempty"`
	Valor       json.Number `json:"valor"`
	Data        string      `json:"data"`
	CategoriaID int32       `json:"categoria_id"`
}

// CategoriaRef is the categoria embedded in lancamento responses
type CategoriaRef struct {
	ID   int32  `json:"id"`
	Nome string `json:"nome"`
}

// LancamentoResponse represents a lancamento in API responses
type LancamentoResponse struct {
	ID          int32         `json:"id"`
	Descricao   *string       `json:"descricao,omitempty"`
	Valor       string        `json:"valor"`
	Data        string        `json:"data"`
	CategoriaID int32         `json:"categoria_id"`
	UserID      string        `json:"user_id"`
	Categorias  *CategoriaRef `json:"categorias,omitempty"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// CreateLancamento handles POST /api/v1/lancamentos
func (h *LancamentoHandler) CreateLancamento(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	var req LancamentoRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, validationErr := parseLancamentoRequest(&req)
	if validationErr != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{*validationErr})
	}

	lancamento, err := h.lancamentoService.CreateLancamento(userID, *input)
	if err != nil {
		if resp := lancamentoErrorResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create lancamento")
		return NewInternalError(c, "Failed to create lancamento")
	}

	log.Info().Str("user_id", userID.String()).Int32("lancamento_id", lancamento.ID).Msg("Lancamento created")
	return c.JSON(http.StatusCreated, toLancamentoResponse(lancamento))
}

// GetLancamentos handles GET /api/v1/lancamentos
func (h *LancamentoHandler) GetLancamentos(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	lancamentos, err := h.lancamentoService.GetLancamentos(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get lancamentos")
		return NewInternalError(c, "Failed to get lancamentos")
	}

	response := make([]LancamentoResponse, len(lancamentos))
	for i, lancamento := range lancamentos {
		response[i] = toLancamentoResponse(lancamento)
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateLancamento handles PUT /api/v1/lancamentos/:id
func (h *LancamentoHandler) UpdateLancamento(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid lancamento ID", nil)
	}

	var req LancamentoRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, validationErr := parseLancamentoRequest(&req)
	if validationErr != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{*validationErr})
	}

	lancamento, err := h.lancamentoService.UpdateLancamento(userID, int32(id), *input)
	if err != nil {
		if errors.Is(err, domain.ErrLancamentoNotFound) {
			return NewNotFoundError(c, "Lancamento not found")
		}
		if resp := lancamentoErrorResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int("lancamento_id", id).Msg("Failed to update lancamento")
		return NewInternalError(c, "Failed to update lancamento")
	}

	log.Info().Str("user_id", userID.String()).Int32("lancamento_id", lancamento.ID).Msg("Lancamento updated")
	return c.JSON(http.StatusOK, toLancamentoResponse(lancamento))
}

// DeleteLancamento handles DELETE /api/v1/lancamentos/:id
func (h *LancamentoHandler) DeleteLancamento(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid lancamento ID", nil)
	}

	if err := h.lancamentoService.DeleteLancamento(userID, int32(id)); err != nil {
		if errors.Is(err, domain.ErrLancamentoNotFound) {
			return NewNotFoundError(c, "Lancamento not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int("lancamento_id", id).Msg("Failed to delete lancamento")
		return NewInternalError(c, "Failed to delete lancamento")
	}

	log.Info().Str("user_id", userID.String()).Int("lancamento_id", id).Msg("Lancamento deleted")
	return c.NoContent(http.StatusNoContent)
}

// parseLancamentoRequest converts the wire request into a service input,
// returning a field-level validation error for malformed valor or data.
func parseLancamentoRequest(req *LancamentoRequest) (*service.LancamentoInput, *ValidationError) {
	if req.Valor.String() == "" {
		return nil, &ValidationError{Field: "valor", Message: "Valor is required and cannot be zero"}
	}
	valor, err := decimal.NewFromString(req.Valor.String())
	if err != nil {
		return nil, &ValidationError{Field: "valor", Message: "Valor must be a number"}
	}

	if req.Data == "" {
		return nil, &ValidationError{Field: "data", Message: "Data is required"}
	}
	data, err := parseData(req.Data)
	if err != nil {
		return nil, &ValidationError{Field: "data", Message: "Data must be a YYYY-MM-DD date"}
	}

	return &service.LancamentoInput{
		Descricao:   req.Descricao,
		Valor:       valor,
		Data:        data,
		CategoriaID: req.CategoriaID,
	}, nil
}

// parseData accepts a calendar date, normalizing full timestamps to their
// date part.
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func lancamentoErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValorZero):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "valor", Message: "Valor is required and cannot be zero"},
		})
	case errors.Is(err, domain.ErrDataRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "data", Message: "Data is required"},
		})
	case errors.Is(err, domain.ErrCategoriaRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoria_id", Message: "Categoria is required"},
		})
	case errors.Is(err, domain.ErrCategoriaNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoria_id", Message: "Categoria does not exist"},
		})
	}
	return nil
}

func toLancamentoResponse(lancamento *domain.Lancamento) LancamentoResponse {
	resp := LancamentoResponse{
		ID:          lancamento.ID,
		Descricao:   lancamento.Descricao,
		Valor:       lancamento.Valor.String(),
		Data:        lancamento.Data.Format("2006-01-02"),
		CategoriaID: lancamento.CategoriaID,
		UserID:      lancamento.UserID.String(),
		CreatedAt:   lancamento.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   lancamento.UpdatedAt.Format(time.RFC3339),
	}
	if lancamento.Categoria != nil {
		resp.Categorias = &CategoriaRef{ID: lancamento.Categoria.ID, Nome: lancamento.Categoria.Nome}
	}
	return resp
}
