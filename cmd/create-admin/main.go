package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"atlas-backend/internal/api/routes"
	"atlas-backend/internal/config"
	"atlas-backend/internal/database"
	"atlas-backend/internal/database/models"
	"atlas-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// create-admin creates a staff account or updates the role and password of
// an existing one. The password can come from ATLAS_ADMIN_PASSWORD so it
// stays out of the shell history.
func main() {
	email := flag.String("email", "", "account email (required)")
	name := flag.String("name", "", "full name")
	role := flag.String("role", string(models.UserRoleAdmin), "reviewer, admin or manager")
	password := flag.String("password", os.Getenv("ATLAS_ADMIN_PASSWORD"), "password, at least 8 characters")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Open(cfg, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	services, err := routes.NewServices(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize services:", err)
	}

	user, created, err := services.Users.EnsureStaff(context.Background(), &service.StaffAccountRequest{
		Email:    *email,
		FullName: *name,
		Password: *password,
		Role:     models.UserRole(*role),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "create-admin:", err)
		os.Exit(1)
	}

	action := "Updated"
	if created {
		action = "Created"
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	}).Infof("%s staff account", action)
}
