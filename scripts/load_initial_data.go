package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atlas-backend/internal/api/routes"
	"atlas-backend/internal/catalog"
	"atlas-backend/internal/config"
	"atlas-backend/internal/database"
	"atlas-backend/internal/database/models"
	"atlas-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ReviewerData is the staff account that performs the demo transitions
type ReviewerData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// ProjectData is one demo project plus the status it should end in. Project
// uses the same field names as the submission API.
type ProjectData struct {
	Project map[string]interface{} `yaml:"project"`
	Status  string                 `yaml:"status"`
	Reason  string                 `yaml:"reason,omitempty"`
}

func (d ProjectData) draft() (*service.ProjectDraft, error) {
	raw, err := json.Marshal(d.Project)
	if err != nil {
		return nil, err
	}
	var draft service.ProjectDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// ProjectsFile is the layout of a file under scripts/data
type ProjectsFile struct {
	Reviewer *ReviewerData `yaml:"reviewer,omitempty"`
	Projects []ProjectData `yaml:"projects"`
}

// statusPaths lists the transitions that lead from submitted to each demo status
var statusPaths = map[models.WorkflowStatus][]models.WorkflowStatus{
	models.WorkflowStatusSubmitted:        nil,
	models.WorkflowStatusInReview:         {models.WorkflowStatusInReview},
	models.WorkflowStatusApproved:         {models.WorkflowStatusInReview, models.WorkflowStatusApproved},
	models.WorkflowStatusRejected:         {models.WorkflowStatusInReview, models.WorkflowStatusRejected},
	models.WorkflowStatusChangesRequested: {models.WorkflowStatusInReview, models.WorkflowStatusChangesRequested},
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := catalog.Seed(context.Background(), db); err != nil {
		log.Fatalf("Failed to seed reference catalog: %v", err)
	}

	services, err := routes.NewServices(db, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(context.Background(), db, services, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Open(cfg, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, services *routes.Services, dataDir string) error {
	files, err := loadProjectFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load project files: %w", err)
	}

	created, skipped := 0, 0
	for _, file := range files {
		if file.Reviewer == nil {
			return fmt.Errorf("every data file needs a reviewer")
		}
		reviewer, _, err := services.Users.EnsureStaff(ctx, &service.StaffAccountRequest{
			Email:    file.Reviewer.Email,
			FullName: file.Reviewer.FullName,
			Password: file.Reviewer.Password,
			Role:     models.UserRole(file.Reviewer.Role),
		})
		if err != nil {
			return fmt.Errorf("failed to create reviewer %s: %w", file.Reviewer.Email, err)
		}

		for i, projectData := range file.Projects {
			ok, err := createProject(ctx, db, services.Projects, projectData, reviewer)
			if err != nil {
				return fmt.Errorf("failed to create project %d (%v): %w", i, projectData.Project["name"], err)
			}
			if ok {
				created++
			} else {
				skipped++
			}
		}
	}
	log.Printf("📋 Projects: %d created, %d already present", created, skipped)
	return nil
}

func loadProjectFiles(dataDir string) ([]ProjectsFile, error) {
	var files []ProjectsFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			files = append(files, file)
		}
		return nil
	})

	return files, err
}

// createProject submits the project unless one with the same name exists,
// then walks it to its demo status.
func createProject(ctx context.Context, db *gorm.DB, projects *service.ProjectService, data ProjectData, reviewer *models.User) (bool, error) {
	draft, err := data.draft()
	if err != nil {
		return false, err
	}

	var existing int64
	if err := db.WithContext(ctx).Model(&models.Project{}).Where("name = ?", draft.Name).Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	target := models.WorkflowStatus(data.Status)
	if target == "" {
		target = models.WorkflowStatusApproved
	}
	path, ok := statusPaths[target]
	if !ok {
		return false, fmt.Errorf("unknown status %q", data.Status)
	}

	result, err := projects.Create(ctx, draft)
	if err != nil {
		return false, err
	}
	for _, step := range path {
		reason := ""
		if step == target {
			reason = data.Reason
		}
		if _, err := projects.UpdateStatus(ctx, result.ID, step, reason, reviewer.ID); err != nil {
			return false, err
		}
	}
	return true, nil
}
