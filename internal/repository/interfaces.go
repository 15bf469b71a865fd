package repository

import (
	"context"
	"time"

	"atlas-backend/internal/database/models"
	"atlas-backend/internal/workflow"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, p *models.Project, submitter *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetByReferenceCode(ctx context.Context, code string) (*models.Project, error)
	Query(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
	QueryInBatches(ctx context.Context, filter ProjectFilter, fn func([]models.Project) error) error
	ListPendingReview(ctx context.Context) ([]models.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target models.WorkflowStatus, reason string, actorID uuid.UUID) (*models.Project, *workflow.Outcome, error)
	UpdateDetails(ctx context.Context, p *models.Project) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, id uuid.UUID) ([]models.WorkflowHistoryEntry, error)
	CountByStatus(ctx context.Context) (map[models.WorkflowStatus]int64, error)
	CountTransitionsSince(ctx context.Context, status models.WorkflowStatus, since time.Time) (int64, error)
	ReviewDurations(ctx context.Context) ([]time.Duration, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// CatalogRepositoryInterface defines the interface for reference catalog reads
type CatalogRepositoryInterface interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	ListSDGs(ctx context.Context) ([]models.SDG, error)
	ListTypologies(ctx context.Context) ([]models.Typology, error)
	ListRequirements(ctx context.Context) ([]models.Requirement, error)
}

// Compile-time checks
var (
	_ ProjectRepositoryInterface = (*ProjectRepository)(nil)
	_ UserRepositoryInterface    = (*UserRepository)(nil)
	_ CatalogRepositoryInterface = (*CatalogRepository)(nil)
)
