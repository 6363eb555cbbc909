package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/docuvault/docqa-api/internal/api/handler"
	"github.com/docuvault/docqa-api/internal/api/middleware"
	"github.com/docuvault/docqa-api/internal/core/domain"
	"github.com/docuvault/docqa-api/internal/core/ports"
)

// Deps carries the constructed services the router wires into handlers.
type Deps struct {
	DB        *sqlx.DB
	Redis     *redis.Client
	Auth      ports.AuthService
	Users     ports.UserService
	Documents ports.DocumentService
	Ingestion ports.IngestionService
	QA        ports.QAService
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("docqa"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	documentHandler := handler.NewDocumentHandler(d.Documents)
	ingestionHandler := handler.NewIngestionHandler(d.Ingestion)
	qaHandler := handler.NewQAHandler(d.QA)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	v1 := e.Group("/v1", middleware.Auth(d.Auth))
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	v1.GET("/users/me", authHandler.Me)
	v1.GET("/users", userHandler.List, adminOnly)
	v1.PUT("/users/:id/role", userHandler.UpdateRole, adminOnly)
	v1.DELETE("/users/:id", userHandler.Delete, adminOnly)

	v1.POST("/documents", documentHandler.Upload)
	v1.GET("/documents", documentHandler.List)
	v1.GET("/documents/:id", documentHandler.Get)
	v1.DELETE("/documents/:id", documentHandler.Delete)
	v1.GET("/documents/:id/download", documentHandler.Download)

	v1.POST("/documents/:id/ingest", ingestionHandler.Trigger)
	v1.GET("/ingestion/status", ingestionHandler.Status)

	v1.POST("/qa", qaHandler.Ask)

	return e
}
