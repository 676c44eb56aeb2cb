package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webdawg/futures-api/internal/api/handler"
	"github.com/webdawg/futures-api/internal/api/middleware"
	"github.com/webdawg/futures-api/internal/core/service"
	"github.com/webdawg/futures-api/internal/infrastructure/catalog"
	mongodb "github.com/webdawg/futures-api/internal/infrastructure/db/mongo"
	redisdb "github.com/webdawg/futures-api/internal/infrastructure/db/redis"
	"github.com/webdawg/futures-api/internal/infrastructure/http/handlers"
	"github.com/webdawg/futures-api/internal/session"
)

// Deps carries everything the router needs, created once in main and passed
// by reference: no package-level connection state anywhere.
type Deps struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Sessions   *session.Manager
	Logger     zerolog.Logger
	BcryptCost int
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("futures"))

	// --- Dependencies ---
	jobCatalog := catalog.New()

	userRepo := mongodb.NewUserRepository(deps.DB)
	authService := service.NewAuthService(userRepo, deps.BcryptCost)
	authHandler := handler.NewAuthHandler(authService, deps.Sessions)

	appRepo := mongodb.NewApplicationRepository(deps.DB)
	appCache := redisdb.NewApplicationCache(deps.Redis)
	appService := service.NewApplicationService(appRepo, jobCatalog, appCache, deps.Logger)
	appHandler := handler.NewApplicationHandler(appService)

	jobHandler := handler.NewJobHandler(jobCatalog)
	requireSession := middleware.RequireSession(deps.Sessions)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/check-session", authHandler.CheckSession)

	// --- Job catalog (public) ---
	e.GET("/jobs", jobHandler.Search)
	e.GET("/jobs/:id", jobHandler.Get)

	// --- Applications (session required) ---
	apps := e.Group("/applications", requireSession)
	apps.GET("", appHandler.List)
	apps.POST("", appHandler.Add)
	apps.PATCH("/:id", appHandler.Update)
	apps.DELETE("/:id", appHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
