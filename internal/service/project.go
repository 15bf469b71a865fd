package service

import (
	"context"
	"fmt"
	"strings"

	"atlas-backend/internal/catalog"
	"atlas-backend/internal/config"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/logger"
	"atlas-backend/internal/notify"
	"atlas-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Canned reasons recorded by the admin shortcuts
const (
	QuickApproveReason = "Quick approval via admin search"
	UnpublishReason    = "Unpublished via admin panel"
)

// ProjectService handles business logic for project submissions and reviews
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	catalog   CatalogServiceInterface
	notifier  notify.Notifier
	validator *validator.Validate
	limits    config.Limits
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, catalog CatalogServiceInterface, notifier notify.Notifier, validator *validator.Validate, limits config.Limits) *ProjectService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &ProjectService{
		repo:      repo,
		catalog:   catalog,
		notifier:  notifier,
		validator: validator,
		limits:    limits,
	}
}

// TypologySelection picks a typology; OtherDescription is required for OTHER
type TypologySelection struct {
	Code             string  `json:"code" validate:"required"`
	OtherDescription *string `json:"other_description,omitempty"`
}

// RequirementSelection picks a requirement tag; OtherDescription is required for OTHER_CUSTOM
type RequirementSelection struct {
	Code             string  `json:"code" validate:"required"`
	OtherDescription *string `json:"other_description,omitempty"`
}

// ImageInput is an image URL attached to a submission
type ImageInput struct {
	URL     string  `json:"url" validate:"required,url,max=1000"`
	AltText *string `json:"alt_text,omitempty" validate:"omitempty,max=255"`
}

// ProjectDraft is a project submission or an administrative correction
type ProjectDraft struct {
	Name                 string                      `json:"name" validate:"required"`
	OrganizationName     string                      `json:"organization_name" validate:"required"`
	ContactPerson        string                      `json:"contact_person" validate:"required"`
	ContactEmail         string                      `json:"contact_email" validate:"required,email,max=255"`
	ImplementationStatus models.ImplementationStatus `json:"implementation_status" validate:"required"`
	City                 string                      `json:"city" validate:"required,max=100"`
	Country              string                      `json:"country" validate:"required,max=100"`
	RegionID             int                         `json:"region_id" validate:"required"`
	Latitude             *float64                    `json:"latitude,omitempty"`
	Longitude            *float64                    `json:"longitude,omitempty"`
	FundingNeeded        float64                     `json:"funding_needed"`
	FundingSpent         *float64                    `json:"funding_spent,omitempty"`
	BriefDescription     string                      `json:"brief_description" validate:"required"`
	DetailedDescription  string                      `json:"detailed_description" validate:"required"`
	SuccessFactors       *string                     `json:"success_factors,omitempty"`
	SDGs                 []int                       `json:"sdgs"`
	Typologies           []TypologySelection         `json:"typologies,omitempty" validate:"dive"`
	Requirements         []RequirementSelection      `json:"requirements,omitempty" validate:"dive"`
	Images               []ImageInput                `json:"images,omitempty" validate:"dive"`
}

// toModel builds an unsaved project from the draft
func (d *ProjectDraft) toModel() *models.Project {
	p := &models.Project{
		Name:                 strings.TrimSpace(d.Name),
		OrganizationName:     strings.TrimSpace(d.OrganizationName),
		ContactPerson:        strings.TrimSpace(d.ContactPerson),
		ContactEmail:         strings.ToLower(strings.TrimSpace(d.ContactEmail)),
		ImplementationStatus: d.ImplementationStatus,
		City:                 strings.TrimSpace(d.City),
		Country:              strings.TrimSpace(d.Country),
		RegionID:             d.RegionID,
		Latitude:             d.Latitude,
		Longitude:            d.Longitude,
		FundingNeeded:        d.FundingNeeded,
		FundingSpent:         d.FundingSpent,
		BriefDescription:     strings.TrimSpace(d.BriefDescription),
		DetailedDescription:  strings.TrimSpace(d.DetailedDescription),
		SuccessFactors:       d.SuccessFactors,
	}
	seen := map[int]bool{}
	for _, id := range d.SDGs {
		if !seen[id] {
			seen[id] = true
			p.SDGs = append(p.SDGs, models.ProjectSDG{SDGID: id})
		}
	}
	for _, t := range d.Typologies {
		p.Typologies = append(p.Typologies, models.ProjectTypology{TypologyCode: t.Code, OtherDescription: t.OtherDescription})
	}
	for _, r := range d.Requirements {
		category, ok := catalog.RequirementCategoryOf(r.Code)
		if !ok {
			category = models.RequirementCategoryOther
		}
		p.Requirements = append(p.Requirements, models.ProjectRequirement{
			RequirementCode:  r.Code,
			Category:         category,
			OtherDescription: r.OtherDescription,
		})
	}
	for i, img := range d.Images {
		p.Images = append(p.Images, models.ProjectImage{URL: img.URL, AltText: img.AltText, DisplayOrder: i})
	}
	return p
}

// SubmissionResult identifies a newly created project
type SubmissionResult struct {
	ID            uuid.UUID `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Slug          string    `json:"slug"`
}

// ResubmitRequest proves ownership of a project sent back for changes
type ResubmitRequest struct {
	ReferenceCode string `json:"reference_code" validate:"required"`
	ContactEmail  string `json:"contact_email" validate:"required,email"`
}

// BulkStatusItem is one entry of a bulk status change
type BulkStatusItem struct {
	ProjectID uuid.UUID             `json:"project_id" validate:"required"`
	Status    models.WorkflowStatus `json:"status" validate:"required"`
	Reason    string                `json:"reason,omitempty"`
}

// BulkStatusResult reports the outcome of one bulk item
type BulkStatusResult struct {
	ProjectID uuid.UUID             `json:"project_id"`
	Success   bool                  `json:"success"`
	Status    models.WorkflowStatus `json:"status,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// validateDraft collects every violation of d into one ValidationError and
// returns the project built from it.
func (s *ProjectService) validateDraft(ctx context.Context, d *ProjectDraft) (*models.Project, error) {
	verr := &apperrors.ValidationError{}
	if err := collectValidation(s.validator, d, verr); err != nil {
		return nil, err
	}

	checkLength(verr, "name", d.Name, s.limits.MaxProjectNameLength)
	checkLength(verr, "organization_name", d.OrganizationName, s.limits.MaxOrganizationNameLength)
	checkLength(verr, "contact_person", d.ContactPerson, s.limits.MaxContactPersonLength)
	checkLength(verr, "brief_description", d.BriefDescription, s.limits.MaxBriefDescriptionLength)
	checkLength(verr, "detailed_description", d.DetailedDescription, s.limits.MaxDetailedDescriptionLength)
	if d.SuccessFactors != nil {
		checkLength(verr, "success_factors", *d.SuccessFactors, s.limits.MaxSuccessFactorsLength)
	}
	if d.ImplementationStatus != "" && !d.ImplementationStatus.IsValid() {
		verr.Add("implementation_status", "implementation_status must be one of [Planned, In Progress, Implemented]")
	}
	if s.limits.MaxFundingAmount > 0 {
		// NaN is rejected by the model invariants
		if d.FundingNeeded > s.limits.MaxFundingAmount {
			verr.Add("funding_needed", "funding_needed exceeds the maximum amount")
		}
		if d.FundingSpent != nil && *d.FundingSpent > s.limits.MaxFundingAmount {
			verr.Add("funding_spent", "funding_spent exceeds the maximum amount")
		}
	}

	typologies := map[string]bool{}
	for i, t := range d.Typologies {
		if t.Code == catalog.OtherTypologyCode && blank(t.OtherDescription) {
			verr.Add("typologies", "typology "+catalog.OtherTypologyCode+" needs a description")
		}
		if typologies[t.Code] {
			verr.Add(fmt.Sprintf("typologies[%d].code", i), "typology "+t.Code+" is listed more than once")
		}
		typologies[t.Code] = true
	}
	requirements := map[string]bool{}
	for i, r := range d.Requirements {
		if r.Code == catalog.OtherRequirementCode && blank(r.OtherDescription) {
			verr.Add("requirements", "requirement "+catalog.OtherRequirementCode+" needs a description")
		}
		if requirements[r.Code] {
			verr.Add(fmt.Sprintf("requirements[%d].code", i), "requirement "+r.Code+" is listed more than once")
		}
		requirements[r.Code] = true
	}

	p := d.toModel()
	if err := p.Validate(); err != nil {
		invariants, ok := apperrors.AsValidation(err)
		if !ok {
			return nil, err
		}
		verr.Fields = append(verr.Fields, invariants.Fields...)
	}
	if err := s.catalog.CheckReferences(ctx, p, verr); err != nil {
		return nil, err
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return p, nil
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Create validates and stores a new submission
func (s *ProjectService) Create(ctx context.Context, draft *ProjectDraft) (*SubmissionResult, error) {
	project, err := s.validateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	submitter := &models.User{
		Email:                   project.ContactEmail,
		FullName:                project.ContactPerson,
		OrganizationAffiliation: project.OrganizationName,
	}
	if err := s.repo.Create(ctx, project, submitter); err != nil {
		s.logFailure(ctx, "create project", err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id":     project.ID,
		"reference_code": project.ReferenceCode,
		"to":             project.WorkflowStatus,
		"actor_id":       project.SubmittedByID,
	}).Info("Project submitted")

	s.send(ctx, notify.Message{
		Event:         notify.EventSubmissionReceived,
		ToName:        project.ContactPerson,
		ToEmail:       project.ContactEmail,
		ProjectName:   project.Name,
		ReferenceCode: project.ReferenceCode,
	})

	return &SubmissionResult{ID: project.ID, ReferenceCode: project.ReferenceCode, Slug: project.Slug}, nil
}

// GetByID returns the project or nil when it does not exist or was deleted
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// Query evaluates filter against the repository
func (s *ProjectService) Query(ctx context.Context, filter repository.ProjectFilter) ([]models.Project, error) {
	return s.repo.Query(ctx, filter)
}

// ListPendingReview returns the review queue, oldest submission first
func (s *ProjectService) ListPendingReview(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListPendingReview(ctx)
}

// UpdateStatus moves a project through the workflow on behalf of actorID
func (s *ProjectService) UpdateStatus(ctx context.Context, id uuid.UUID, target models.WorkflowStatus, reason string, actorID uuid.UUID) (*models.Project, error) {
	project, outcome, err := s.repo.UpdateStatus(ctx, id, target, reason, actorID)
	if err != nil {
		s.logFailure(ctx, "update project status", err)
		return nil, err
	}

	fields := map[string]interface{}{
		"project_id": id,
		"to":         outcome.Status,
		"actor_id":   actorID,
		"unpublish":  outcome.Unpublish,
	}
	if outcome.Entry != nil && outcome.Entry.FromStatus != nil {
		fields["from"] = *outcome.Entry.FromStatus
	}
	logger.WithContext(ctx).WithFields(fields).Info("Project status changed")

	if event, ok := notify.EventForStatus(outcome.Status); ok && !outcome.Unpublish {
		msg := notify.Message{
			Event:         event,
			ToName:        project.ContactPerson,
			ToEmail:       project.ContactEmail,
			ProjectName:   project.Name,
			ReferenceCode: project.ReferenceCode,
		}
		if outcome.Entry != nil && outcome.Entry.Reason != nil {
			msg.Reason = *outcome.Entry.Reason
		}
		s.send(ctx, msg)
	}
	return project, nil
}

// QuickApprove approves a project with the canned admin reason
func (s *ProjectService) QuickApprove(ctx context.Context, id, actorID uuid.UUID) (*models.Project, error) {
	return s.UpdateStatus(ctx, id, models.WorkflowStatusApproved, QuickApproveReason, actorID)
}

// Unpublish takes an approved project offline by moving it back to in_review
func (s *ProjectService) Unpublish(ctx context.Context, id, actorID uuid.UUID) (*models.Project, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	if current.WorkflowStatus != models.WorkflowStatusApproved {
		return nil, apperrors.NewValidationError("status", "only approved projects can be unpublished")
	}
	return s.UpdateStatus(ctx, id, models.WorkflowStatusInReview, UnpublishReason, actorID)
}

// Resubmit returns a project in changes_requested to the queue. The caller
// proves ownership with the reference code and contact email.
func (s *ProjectService) Resubmit(ctx context.Context, id uuid.UUID, req *ResubmitRequest) (*models.Project, error) {
	verr := &apperrors.ValidationError{}
	if err := collectValidation(s.validator, req, verr); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil ||
		current.ReferenceCode != strings.TrimSpace(req.ReferenceCode) ||
		!strings.EqualFold(current.ContactEmail, strings.TrimSpace(req.ContactEmail)) {
		return nil, apperrors.ErrProjectNotFound
	}
	return s.UpdateStatus(ctx, id, models.WorkflowStatusSubmitted, "Resubmitted by submitter", current.SubmittedByID)
}

// SoftDelete hides a project from every read. Its history is kept.
func (s *ProjectService) SoftDelete(ctx context.Context, id, actorID uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		s.logFailure(ctx, "delete project", err)
		return err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": id,
		"actor_id":   actorID,
	}).Info("Project deleted")
	return nil
}

// Correct replaces the descriptive fields of a project. The draft is
// validated as a whole; workflow fields are never touched.
func (s *ProjectService) Correct(ctx context.Context, id uuid.UUID, draft *ProjectDraft, actorID uuid.UUID) (*models.Project, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperrors.ErrProjectNotFound
	}

	corrected, err := s.validateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	corrected.ID = current.ID
	if err := s.repo.UpdateDetails(ctx, corrected); err != nil {
		s.logFailure(ctx, "correct project", err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": id,
		"actor_id":   actorID,
	}).Info("Project corrected")

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	return updated, nil
}

// History returns the audit trail of a project, oldest first
func (s *ProjectService) History(ctx context.Context, id uuid.UUID) ([]models.WorkflowHistoryEntry, error) {
	return s.repo.History(ctx, id)
}

// BulkUpdateStatus applies each item in its own transaction and reports
// every outcome. One failing item does not stop the others.
func (s *ProjectService) BulkUpdateStatus(ctx context.Context, items []BulkStatusItem, actorID uuid.UUID) []BulkStatusResult {
	results := make([]BulkStatusResult, 0, len(items))
	for _, item := range items {
		result := BulkStatusResult{ProjectID: item.ProjectID}
		project, err := s.UpdateStatus(ctx, item.ProjectID, item.Status, item.Reason, actorID)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Success = true
			result.Status = project.WorkflowStatus
		}
		results = append(results, result)
	}
	return results
}

// send delivers msg and logs failures; the caller's write has already committed
func (s *ProjectService) send(ctx context.Context, msg notify.Message) {
	if msg.ToEmail == "" {
		return
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"event":          msg.Event,
			"reference_code": msg.ReferenceCode,
			"error":          err.Error(),
		}).Warn("Failed to send notification")
	}
}

// logFailure logs storage errors and lost races; caller mistakes are not logged
func (s *ProjectService) logFailure(ctx context.Context, op string, err error) {
	switch {
	case apperrors.IsStorage(err):
		logger.WithContext(ctx).WithField("error", err.Error()).Errorf("Failed to %s", op)
	case apperrors.IsConflict(err):
		logger.WithContext(ctx).WithField("error", err.Error()).Warnf("Conflict during %s", op)
	}
}
