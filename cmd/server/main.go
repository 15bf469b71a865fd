package main

import (
	"context"
	"log"
	"os"

	"atlas-backend/internal/api/routes"
	"atlas-backend/internal/catalog"
	"atlas-backend/internal/config"
	"atlas-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "atlas-backend/docs" // This is needed for swag
)

//	@title			Urban Project Atlas API
//	@version		1.0
//	@description	Submission, review and publication of sustainable urban development projects, with map search and dashboard statistics.

//	@contact.name	Atlas Support
//	@contact.email	support@example.org

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Open(cfg, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Reference data must exist before the catalog cache is first filled
	if err := catalog.Seed(context.Background(), db); err != nil {
		logrus.Fatal("Failed to seed reference catalog:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	services, err := routes.NewServices(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize services:", err)
	}
	services.Catalog.Invalidate()

	// Initialize router
	router := routes.NewRouter(db, cfg, services)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithFields(logrus.Fields{
		"port":   port,
		"driver": cfg.DatabaseDriver,
		"notify": cfg.NotifyEnabled,
		"env":    cfg.Environment,
	}).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
