package handler

import (
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
)

// CategoriaHandler handles categoria HTTP requests
type CategoriaHandler struct {
	categoriaService *service.CategoriaService
}

// NewCategoriaHandler creates a new CategoriaHandler
func NewCategoriaHandler(categoriaService *service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{categoriaService: categoriaService}
}

// CategoriaRequest represents the create/update categoria request body
type CategoriaRequest struct {
	Nome string `json:"nome"`
}

// CategoriaResponse represents a categoria in API responses
type CategoriaResponse struct {
	ID        int32  `json:"id"`
	Nome      string `json:"nome"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateCategoria handles POST /api/v1/categorias
func (h *CategoriaHandler) CreateCategoria(c echo.Context) error {
	if middleware.GetUserID(c) == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	var req CategoriaRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	categoria, err := h.categoriaService.CreateCategoria(req.Nome)
	if err != nil {
		if errors.Is(err, domain.ErrNomeRequired) {
			return NewValidationError(c, "Categoria nome is required", []ValidationError{
				{Field: "nome", Message: "Nome cannot be empty"},
			})
		}
		if errors.Is(err, domain.ErrNomeTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "nome", Message: "Nome must be 100 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrCategoriaAlreadyExists) {
			return NewConflictError(c, "A categoria with this nome already exists")
		}
		log.Error().Err(err).Msg("Failed to create categoria")
		return NewInternalError(c, "Failed to create categoria")
	}

	log.Info().Int32("categoria_id", categoria.ID).Str("nome", categoria.Nome).Msg("Categoria created")
	return c.JSON(http.StatusCreated, toCategoriaResponse(categoria))
}

// GetCategorias handles GET /api/v1/categorias
func (h *CategoriaHandler) GetCategorias(c echo.Context) error {
	if middleware.GetUserID(c) == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	categorias, err := h.categoriaService.GetCategorias()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get categorias")
		return NewInternalError(c, "Failed to get categorias")
	}

	response := make([]CategoriaResponse, len(categorias))
	for i, categoria := range categorias {
		response[i] = toCategoriaResponse(categoria)
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateCategoria handles PUT /api/v1/categorias/:id
func (h *CategoriaHandler) UpdateCategoria(c echo.Context) error {
	if middleware.GetUserID(c) == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid categoria ID", nil)
	}

	var req CategoriaRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	categoria, err := h.categoriaService.UpdateCategoria(int32(id), req.Nome)
	if err != nil {
		if errors.Is(err, domain.ErrCategoriaNotFound) {
			return NewNotFoundError(c, "Categoria not found")
		}
		if errors.Is(err, domain.ErrNomeRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "nome", Message: "Nome is required"},
			})
		}
		if errors.Is(err, domain.ErrNomeTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "nome", Message: "Nome must be 100 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrCategoriaAlreadyExists) {
			return NewConflictError(c, "A categoria with this nome already exists")
		}
		log.Error().Err(err).Int("categoria_id", id).Msg("Failed to update categoria")
		return NewInternalError(c, "Failed to update categoria")
	}

	log.Info().Int32("categoria_id", categoria.ID).Str("nome", categoria.Nome).Msg("Categoria updated")
	return c.JSON(http.StatusOK, toCategoriaResponse(categoria))
}

// DeleteCategoria handles DELETE /api/v1/categorias/:id
func (h *CategoriaHandler) DeleteCategoria(c echo.Context) error {
	if middleware.GetUserID(c) == uuid.Nil {
		return NewUnauthorizedError(c, "Session required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid categoria ID", nil)
	}

	if err := h.categoriaService.DeleteCategoria(int32(id)); err != nil {
		if errors.Is(err, domain.ErrCategoriaNotFound) {
			return NewNotFoundError(c, "Categoria not found")
		}
		if errors.Is(err, domain.ErrCategoriaInUse) {
			return NewConflictError(c, "Categoria still has lancamentos assigned")
		}
		log.Error().Err(err).Int("categoria_id", id).Msg("Failed to delete categoria")
		return NewInternalError(c, "Failed to delete categoria")
	}

	log.Info().Int("categoria_id", id).Msg("Categoria deleted")
	return c.NoContent(http.StatusNoContent)
}

func toCategoriaResponse(categoria *domain.Categoria) CategoriaResponse {
	return CategoriaResponse{
		ID:        categoria.ID,
		Nome:      categoria.Nome,
		CreatedAt: categoria.CreatedAt.Format(time.RFC3339),
		UpdatedAt: categoria.UpdatedAt.Format(time.RFC3339),
	}
}
