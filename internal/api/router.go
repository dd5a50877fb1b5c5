package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/inovaindustria/industria-api/docs"
	"github.com/inovaindustria/industria-api/internal/api/handler"
	"github.com/inovaindustria/industria-api/internal/api/middleware"
	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
	"github.com/inovaindustria/industria-api/internal/core/service"
	"github.com/inovaindustria/industria-api/internal/infrastructure/config"
	mongostore "github.com/inovaindustria/industria-api/internal/infrastructure/db/mongo"
	redisstore "github.com/inovaindustria/industria-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The Auth filter runs globally; its allow-list admits only the login route,
// CORS preflights, and the infrastructure endpoints.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuthEventSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	throttle := redisstore.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())

	clientRepo := mongostore.NewClientRepository(db)
	companyRepo := mongostore.NewCompanyRepository(db)
	projectRepo := mongostore.NewProjectRepository(db)
	activityRepo := mongostore.NewActivityRepository(db)

	authService := service.NewAuthService(clientRepo, tokens, throttle, audit, log)
	clientService := service.NewClientService(clientRepo, log)
	companyService := service.NewCompanyService(companyRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	activityService := service.NewActivityService(activityRepo, projectRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	companyHandler := handler.NewCompanyHandler(companyService)
	projectHandler := handler.NewProjectHandler(projectService)
	activityHandler := handler.NewActivityHandler(activityService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("industria"))
	e.Use(middleware.Auth(tokens, log))

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Companies ---
	superOnly := middleware.RequireRoles(domain.RoleSuperAdmin)
	admins := middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin)

	e.GET("/empresas", companyHandler.List)
	e.GET("/empresas/:id", companyHandler.Get)
	e.POST("/empresas", companyHandler.Create, superOnly)
	e.PUT("/empresas/:id", companyHandler.Update, superOnly)
	e.DELETE("/empresas/:id", companyHandler.Delete, superOnly)

	// --- Clients ---
	e.GET("/clientes", clientHandler.List)
	e.GET("/clientes/:id", clientHandler.Get)
	e.POST("/clientes", clientHandler.Register, admins)
	e.PUT("/clientes/:id", clientHandler.Update, admins)
	e.DELETE("/clientes/:id", clientHandler.Delete, admins)

	// --- Projects ---
	e.GET("/projetos", projectHandler.List)
	e.GET("/projetos/:id", projectHandler.Get)
	e.POST("/projetos", projectHandler.Create, superOnly)
	e.PUT("/projetos/:id", projectHandler.Update, admins)
	e.DELETE("/projetos/:id", projectHandler.Delete, admins)

	// --- Activities & sub-activities ---
	e.GET("/projetos/:id/atividades", activityHandler.ListByProject)
	e.POST("/projetos/:id/atividades", activityHandler.Create)
	e.PUT("/atividades/:id", activityHandler.Update)
	e.DELETE("/atividades/:id", activityHandler.Delete)
	e.GET("/atividades/:id/subatividades", activityHandler.ListSubs)
	e.POST("/atividades/:id/subatividades", activityHandler.CreateSub)
	e.PUT("/subatividades/:id", activityHandler.UpdateSub)
	e.DELETE("/subatividades/:id", activityHandler.DeleteSub)

	return e
}
