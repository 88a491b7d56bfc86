package handler

import (
	"net/http"

	"github.com/financas-app/financas-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// PageHandler serves the static page shells. The shells are intentionally
// minimal; all data flows through the JSON API.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Root handles GET /. The page guard redirects before this runs; the handler
// only exists so the route is registered.
func (h *PageHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/login")
}

// Login handles GET /login
func (h *PageHandler) Login(c echo.Context) error {
	return servePage(c, "login.html")
}

// Signup handles GET /signup
func (h *PageHandler) Signup(c echo.Context) error {
	return servePage(c, "signup.html")
}

// Dashboard handles GET /dashboard
func (h *PageHandler) Dashboard(c echo.Context) error {
	return servePage(c, "dashboard.html")
}

// Categorias handles GET /categorias
func (h *PageHandler) Categorias(c echo.Context) error {
	return servePage(c, "categorias.html")
}

// Lancamentos handles GET /lancamentos
func (h *PageHandler) Lancamentos(c echo.Context) error {
	return servePage(c, "lancamentos.html")
}

func servePage(c echo.Context, name string) error {
	b, err := web.FS.ReadFile(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "page not found")
	}
	return c.HTMLBlob(http.StatusOK, b)
}
