package service

import (
	"context"
	"io"

	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CatalogServiceInterface defines the interface for the reference catalog service
type CatalogServiceInterface interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	ListSDGs(ctx context.Context) ([]models.SDG, error)
	ListTypologies(ctx context.Context) ([]models.Typology, error)
	ListRequirements(ctx context.Context) ([]RequirementGroup, error)
	CheckReferences(ctx context.Context, p *models.Project, verr *apperrors.ValidationError) error
	Invalidate()
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(ctx context.Context, draft *ProjectDraft) (*SubmissionResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Query(ctx context.Context, filter repository.ProjectFilter) ([]models.Project, error)
	ListPendingReview(ctx context.Context) ([]models.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target models.WorkflowStatus, reason string, actorID uuid.UUID) (*models.Project, error)
	QuickApprove(ctx context.Context, id, actorID uuid.UUID) (*models.Project, error)
	Unpublish(ctx context.Context, id, actorID uuid.UUID) (*models.Project, error)
	Resubmit(ctx context.Context, id uuid.UUID, req *ResubmitRequest) (*models.Project, error)
	SoftDelete(ctx context.Context, id, actorID uuid.UUID) error
	Correct(ctx context.Context, id uuid.UUID, draft *ProjectDraft, actorID uuid.UUID) (*models.Project, error)
	History(ctx context.Context, id uuid.UUID) ([]models.WorkflowHistoryEntry, error)
	BulkUpdateStatus(ctx context.Context, items []BulkStatusItem, actorID uuid.UUID) []BulkStatusResult
}

// AnalyticsServiceInterface defines the interface for dashboard statistics
type AnalyticsServiceInterface interface {
	KPIs(ctx context.Context, filter repository.ProjectFilter) (*KPIs, error)
	SDGDistribution(ctx context.Context, filter repository.ProjectFilter) ([]SDGCount, error)
	FundingByRegion(ctx context.Context, filter repository.ProjectFilter) ([]RegionFunding, error)
	AdminMetrics(ctx context.Context) (*AdminMetrics, error)
	UniqueCities(ctx context.Context) ([]string, error)
	UniqueOrganizations(ctx context.Context) ([]string, error)
}

// ExportServiceInterface defines the interface for project exports
type ExportServiceInterface interface {
	ExportCSV(ctx context.Context, filter repository.ProjectFilter, w io.Writer) error
}

// UserServiceInterface defines the interface for staff account management
type UserServiceInterface interface {
	EnsureStaff(ctx context.Context, req *StaffAccountRequest) (*models.User, bool, error)
}

// Ensure implementations satisfy the interfaces
var (
	_ CatalogServiceInterface   = (*CatalogService)(nil)
	_ ProjectServiceInterface   = (*ProjectService)(nil)
	_ AnalyticsServiceInterface = (*AnalyticsService)(nil)
	_ ExportServiceInterface    = (*ExportService)(nil)
	_ UserServiceInterface      = (*UserService)(nil)
)
