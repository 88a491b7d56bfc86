package handler

import (
	"github.com/financas-app/financas-backend/internal/middleware"
	"github.com/financas-app/financas-backend/internal/session"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all page and API routes
func RegisterRoutes(
	e *echo.Echo,
	sessions *session.Manager,
	sessionMiddleware *middleware.SessionMiddleware,
	loginLimiter *middleware.LoginRateLimiter,
	pageHandler *PageHandler,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	categoriaHandler *CategoriaHandler,
	lancamentoHandler *LancamentoHandler,
	dashboardHandler *DashboardHandler,
) {
	// Browser pages, gated by the route guard
	pages := e.Group("", middleware.PageGuard(sessions))
	pages.GET("/", pageHandler.Root)
	pages.GET("/login", pageHandler.Login)
	pages.GET("/signup", pageHandler.Signup)
	pages.GET("/dashboard", pageHandler.Dashboard)
	pages.GET("/categorias", pageHandler.Categorias)
	pages.GET("/lancamentos", pageHandler.Lancamentos)

	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (public, login throttled per IP)
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login, middleware.LoginRateLimitMiddleware(loginLimiter))
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, sessionMiddleware.Authenticate())

	// Profile routes (protected)
	profile := api.Group("/profile")
	profile.Use(sessionMiddleware.Authenticate())
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)

	// Categoria routes (protected)
	categorias := api.Group("/categorias")
	categorias.Use(sessionMiddleware.Authenticate())
	categorias.GET("", categoriaHandler.GetCategorias)
	categorias.POST("", categoriaHandler.CreateCategoria)
	categorias.PUT("/:id", categoriaHandler.UpdateCategoria)
	categorias.DELETE("/:id", categoriaHandler.DeleteCategoria)

	// Lancamento routes (protected)
	lancamentos := api.Group("/lancamentos")
	lancamentos.Use(sessionMiddleware.Authenticate())
	lancamentos.GET("", lancamentoHandler.GetLancamentos)
	lancamentos.POST("", lancamentoHandler.CreateLancamento)
	lancamentos.PUT("/:id", lancamentoHandler.UpdateLancamento)
	lancamentos.DELETE("/:id", lancamentoHandler.DeleteLancamento)

	// Dashboard routes (protected)
	dashboard := api.Group("/dashboard")
	dashboard.Use(sessionMiddleware.Authenticate())
	dashboard.GET("/summary", dashboardHandler.GetSummary)
}
