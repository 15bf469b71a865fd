package routes

import (
	"fmt"
	"net/http"

	"atlas-backend/internal/api/handlers"
	"atlas-backend/internal/api/middleware"
	"atlas-backend/internal/auth"
	"atlas-backend/internal/config"
	"atlas-backend/internal/database/models"
	"atlas-backend/internal/notify"
	"atlas-backend/internal/repository"
	"atlas-backend/internal/service"
	"atlas-backend/internal/workflow"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the application services so that the server and the
// command line tools share one wiring.
type Services struct {
	Catalog   *service.CatalogService
	Projects  *service.ProjectService
	Analytics *service.AnalyticsService
	Export    *service.ExportService
	Users     *service.UserService
	Auth      *auth.AuthService
}

// NewServices builds repositories and services on top of db
func NewServices(db *gorm.DB, cfg *config.Config) (*Services, error) {
	validator := service.NewValidator()

	// Initialize repositories
	engine := workflow.NewEngine()
	projectRepo := repository.NewProjectRepository(db, engine, cfg.Search())
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, cfg.CatalogCacheTTL())
	projectService := service.NewProjectService(projectRepo, catalogService, newNotifier(cfg), validator, cfg.Limits())

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}

	return &Services{
		Catalog:   catalogService,
		Projects:  projectService,
		Analytics: service.NewAnalyticsService(projectRepo, catalogService),
		Export:    service.NewExportService(projectRepo),
		Users:     service.NewUserService(userRepo, validator),
		Auth:      authService,
	}, nil
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if !cfg.NotifyEnabled {
		return notify.Noop{}
	}
	return notify.NewSendGrid(cfg.SendGridAPIKey, cfg.NotifyFromEmail, cfg.NotifyFromName, cfg.IsProduction())
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	services, err := NewServices(db, cfg)
	if err != nil {
		return nil, err
	}
	return NewRouter(db, cfg, services), nil
}

// NewRouter mounts every handler on a new gin engine
func NewRouter(db *gorm.DB, cfg *config.Config, services *Services) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	catalogHandler := handlers.NewCatalogHandler(services.Catalog)
	projectHandler := handlers.NewProjectHandler(services.Projects, services.Export)
	statsHandler := handlers.NewStatsHandler(services.Analytics)
	adminHandler := handlers.NewAdminHandler(services.Projects, services.Analytics)
	authHandler := auth.NewAuthHandler(services.Auth)
	authMiddleware := auth.NewAuthMiddleware(services.Auth)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/validate", authHandler.ValidateToken)
			authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		// Reference catalog routes
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/regions", catalogHandler.ListRegions)
			catalog.GET("/sdgs", catalogHandler.ListSDGs)
			catalog.GET("/typologies", catalogHandler.ListTypologies)
			catalog.GET("/requirements", catalogHandler.ListRequirements)
		}

		// Public project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.SubmitProject)
			projects.GET("/export", projectHandler.ExportProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/resubmit", projectHandler.ResubmitProject)
		}

		// Dashboard statistics
		stats := v1.Group("/stats")
		{
			stats.GET("/kpis", statsHandler.KPIs)
			stats.GET("/sdgs", statsHandler.SDGDistribution)
			stats.GET("/regions", statsHandler.FundingByRegion)
			stats.GET("/cities", statsHandler.Cities)
			stats.GET("/organizations", statsHandler.Organizations)
		}

		// Review and moderation routes require a staff token
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRole(models.UserRoleReviewer, models.UserRoleAdmin, models.UserRoleManager))
		{
			admin.GET("/reviews", adminHandler.ListReviews)
			admin.GET("/metrics", adminHandler.Metrics)
			admin.GET("/projects", adminHandler.ListProjects)
			admin.POST("/projects/bulk-status", adminHandler.BulkUpdateStatus)
			admin.GET("/projects/:id", adminHandler.GetProject)
			admin.PATCH("/projects/:id", adminHandler.CorrectProject)
			admin.DELETE("/projects/:id", adminHandler.DeleteProject)
			admin.GET("/projects/:id/history", adminHandler.History)
			admin.POST("/projects/:id/status", adminHandler.UpdateStatus)
			admin.POST("/projects/:id/approve", adminHandler.Approve)
			admin.POST("/projects/:id/unpublish", adminHandler.Unpublish)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
