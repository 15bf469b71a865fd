package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"atlas-backend/internal/config"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultProjectOrder = "CASE WHEN projects.published_date IS NULL THEN 1 ELSE 0 END, " +
	"projects.published_date DESC, projects.submission_date DESC, projects.id"

// ProjectRepository handles database operations for projects. It owns every
// multi-table write and runs each one in a single transaction.
type ProjectRepository struct {
	db      *gorm.DB
	engine  *workflow.Engine
	dialect SpatialDialect
	limits  config.SearchLimits
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB, engine *workflow.Engine, limits config.SearchLimits) *ProjectRepository {
	return &ProjectRepository{
		db:      db,
		engine:  engine,
		dialect: DialectFor(db),
		limits:  limits,
	}
}

// Dialect returns the spatial dialect in use
func (r *ProjectRepository) Dialect() SpatialDialect {
	return r.dialect
}

// txAppender writes history entries inside the caller's transaction
type txAppender struct {
	tx *gorm.DB
}

func (a txAppender) AppendHistory(entry *models.WorkflowHistoryEntry) error {
	return a.tx.Create(entry).Error
}

// Create persists p, its associations and the initial history entry
// atomically. The submitter is looked up by email and created when unknown.
// Identity and workflow fields of p are assigned here.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project, submitter *models.User) error {
	if err := p.Validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := resolveUser(tx, submitter)
		if err != nil {
			return err
		}

		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		p.SubmittedByID = user.ID
		p.WorkflowStatus = models.WorkflowStatusSubmitted
		p.ApprovalDate, p.PublishedDate, p.RejectionReason = nil, nil, nil

		submittedAt, err := r.engine.Submit(txAppender{tx: tx}, p.ID, user.ID)
		if err != nil {
			return err
		}
		p.SubmissionDate = submittedAt

		if p.ReferenceCode, err = nextReferenceCode(tx, submittedAt.Year()); err != nil {
			return err
		}
		if p.Slug, err = uniqueSlug(tx, p.Name); err != nil {
			return err
		}

		if err := checkCatalogReferences(tx, p); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		return insertAssociations(tx, p)
	})
	return storageError("create project", err)
}

// GetByID loads a non-deleted project with all associations resolved
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := withAssociations(r.db.WithContext(ctx)).First(&project, "projects.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, storageError("get project", err)
	}
	return &project, nil
}

// GetByReferenceCode loads a non-deleted project by its reference code
func (r *ProjectRepository) GetByReferenceCode(ctx context.Context, code string) (*models.Project, error) {
	var project models.Project
	err := withAssociations(r.db.WithContext(ctx)).First(&project, "projects.reference_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, storageError("get project by reference code", err)
	}
	return &project, nil
}

// Query evaluates filter. Soft-deleted projects never match.
func (r *ProjectRepository) Query(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	f := filter.normalize(r.limits)

	q := r.db.WithContext(ctx).Model(&models.Project{})
	q = r.applyFilter(q, f)
	if f.FreeText != "" {
		q = r.dialect.OrderFreeText(q, f.FreeText)
	}
	q = q.Order(defaultProjectOrder)

	postFilter := f.Near != nil && !r.dialect.ExactNear()
	if !postFilter {
		q = q.Limit(f.Limit)
	}

	var projects []models.Project
	if err := withAssociations(q).Find(&projects).Error; err != nil {
		return nil, storageError("query projects", err)
	}

	if postFilter {
		projects = r.dialect.Refine(projects, *f.Near)
		if len(projects) > f.Limit {
			projects = projects[:f.Limit]
		}
	}
	return projects, nil
}

// queryBatchSize is the page size used by QueryInBatches
const queryBatchSize = 500

// QueryInBatches passes every project matching filter to fn, one page at a
// time in primary key order. Limit is ignored, so aggregates over the whole
// table are not cut off at the result cap. fn must not keep the slice.
func (r *ProjectRepository) QueryInBatches(ctx context.Context, filter ProjectFilter, fn func([]models.Project) error) error {
	if err := filter.Validate(); err != nil {
		return err
	}
	f := filter.normalize(r.limits)
	refine := f.Near != nil && !r.dialect.ExactNear()

	var page []models.Project
	var fnErr error
	q := r.applyFilter(r.db.WithContext(ctx).Model(&models.Project{}), f)
	res := withAssociations(q).FindInBatches(&page, queryBatchSize, func(_ *gorm.DB, _ int) error {
		projects := page
		if refine {
			// Refine filters in place; gorm reads the last row of page for the next cursor
			projects = r.dialect.Refine(append([]models.Project(nil), page...), *f.Near)
		}
		if len(projects) == 0 {
			return nil
		}
		fnErr = fn(projects)
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return storageError("query projects in batches", res.Error)
}

func (r *ProjectRepository) applyFilter(q *gorm.DB, f ProjectFilter) *gorm.DB {
	if !f.IncludeNonApproved {
		q = q.Where("projects.workflow_status = ?", models.WorkflowStatusApproved)
	} else if len(f.Statuses) > 0 {
		q = q.Where("projects.workflow_status IN ?", f.Statuses)
	}
	if f.RegionID != nil {
		q = q.Where("projects.region_id = ?", *f.RegionID)
	}
	if f.SDG != nil {
		q = q.Where("EXISTS (SELECT 1 FROM project_sdgs ps WHERE ps.project_id = projects.id AND ps.sdg_id = ?)", *f.SDG)
	}
	if f.City != "" {
		q = q.Where("projects.city_key = ?", f.City)
	}
	if f.FundedBy != "" {
		q = q.Where(`projects.organization_key LIKE ? ESCAPE '\'`, likePattern(f.FundedBy))
	}
	if f.FreeText != "" {
		q = q.Where(`projects.search_text LIKE ? ESCAPE '\'`, likePattern(f.FreeText))
	}
	if f.Near != nil {
		q = r.dialect.ScopeNear(q, *f.Near)
	}
	if f.Bounds != nil {
		q = r.dialect.ScopeBounds(q, *f.Bounds)
	}
	return q
}

// ListPendingReview returns the review queue, oldest submission first
func (r *ProjectRepository) ListPendingReview(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := withAssociations(r.db.WithContext(ctx)).
		Where("projects.workflow_status IN ?", models.PendingReviewStatuses).
		Order("projects.submission_date ASC, projects.id").
		Limit(r.limits.MaxResults).
		Find(&projects).Error
	if err != nil {
		return nil, storageError("list pending review", err)
	}
	return projects, nil
}

// UpdateStatus moves a project through the workflow. The status read at the
// start of the transaction is re-checked on write, so a concurrent change
// yields a ConflictError instead of a silently overwritten decision.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, target models.WorkflowStatus, reason string, actorID uuid.UUID) (*models.Project, *workflow.Outcome, error) {
	var project models.Project
	var outcome *workflow.Outcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return err
		}

		var err error
		outcome, err = r.engine.Apply(txAppender{tx: tx}, workflow.SnapshotOf(&project), target, reason, actorID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"workflow_status":  outcome.Status,
			"approval_date":    outcome.ApprovalDate,
			"published_date":   outcome.PublishedDate,
			"rejection_reason": outcome.RejectionReason,
			"updated_at":       outcome.Entry.CreatedAt,
		}
		if target.IsReviewDecision() {
			updates["last_reviewed_by_id"] = actorID
		}
		res := tx.Model(&models.Project{}).
			Where("id = ? AND workflow_status = ?", id, project.WorkflowStatus).
			UpdateColumns(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NewConflictError("project", "status changed by another reviewer")
		}

		if target.IsReviewDecision() {
			review := &models.Review{
				ProjectID:  id,
				ReviewerID: actorID,
				Decision:   target,
				Notes:      outcome.Entry.Reason,
			}
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, storageError("update project status", err)
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return updated, outcome, nil
}

// UpdateDetails writes the descriptive fields of p and replaces its
// associations. Workflow and identity fields are never touched.
func (r *ProjectRepository) UpdateDetails(ctx context.Context, p *models.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCatalogReferences(tx, p); err != nil {
			return err
		}
		p.RefreshSearchKeys()
		res := tx.Model(&models.Project{}).Where("id = ?", p.ID).UpdateColumns(map[string]interface{}{
			"name":                  p.Name,
			"organization_name":     p.OrganizationName,
			"contact_person":        p.ContactPerson,
			"contact_email":         p.ContactEmail,
			"implementation_status": p.ImplementationStatus,
			"city":                  p.City,
			"country":               p.Country,
			"region_id":             p.RegionID,
			"latitude":              p.Latitude,
			"longitude":             p.Longitude,
			"funding_needed":        p.FundingNeeded,
			"funding_spent":         p.FundingSpent,
			"brief_description":     p.BriefDescription,
			"detailed_description":  p.DetailedDescription,
			"success_factors":       p.SuccessFactors,
			"city_key":              p.CityKey,
			"organization_key":      p.OrganizationKey,
			"search_text":           p.SearchText,
			"updated_at":            r.engine.Now(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrProjectNotFound
		}

		for _, model := range []interface{}{&models.ProjectSDG{}, &models.ProjectTypology{}, &models.ProjectRequirement{}, &models.ProjectImage{}} {
			if err := tx.Where("project_id = ?", p.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return insertAssociations(tx, p)
	})
	return storageError("update project details", err)
}

// SoftDelete sets the tombstone. History rows are kept.
func (r *ProjectRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return storageError("soft delete project", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// History returns the audit trail of a project, oldest first. Soft-deleted
// projects keep their history.
func (r *ProjectRepository) History(ctx context.Context, id uuid.UUID) ([]models.WorkflowHistoryEntry, error) {
	var exists int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&models.Project{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return nil, storageError("count project", err)
	}
	if exists == 0 {
		return nil, apperrors.ErrProjectNotFound
	}

	var entries []models.WorkflowHistoryEntry
	err := r.db.WithContext(ctx).
		Where("project_id = ?", id).
		Order("created_at ASC, id").
		Find(&entries).Error
	if err != nil {
		return nil, storageError("load history", err)
	}
	return entries, nil
}

// CountByStatus returns the number of non-deleted projects per workflow status
func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[models.WorkflowStatus]int64, error) {
	var rows []struct {
		WorkflowStatus models.WorkflowStatus
		Count          int64
	}
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Select("workflow_status, COUNT(*) AS count").
		Group("workflow_status").
		Scan(&rows).Error
	if err != nil {
		return nil, storageError("count by status", err)
	}
	out := make(map[models.WorkflowStatus]int64, len(rows))
	for _, row := range rows {
		out[row.WorkflowStatus] = row.Count
	}
	return out, nil
}

// CountTransitionsSince counts history entries into status at or after since
func (r *ProjectRepository) CountTransitionsSince(ctx context.Context, status models.WorkflowStatus, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.WorkflowHistoryEntry{}).
		Where("to_status = ? AND created_at >= ?", status, since).
		Count(&n).Error
	if err != nil {
		return 0, storageError("count transitions", err)
	}
	return n, nil
}

// ReviewDurations returns submission-to-approval durations of approved projects
func (r *ProjectRepository) ReviewDurations(ctx context.Context) ([]time.Duration, error) {
	var rows []struct {
		SubmissionDate time.Time
		ApprovalDate   time.Time
	}
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Select("submission_date, approval_date").
		Where("approval_date IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, storageError("review durations", err)
	}
	out := make([]time.Duration, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ApprovalDate.Sub(row.SubmissionDate))
	}
	return out, nil
}

func withAssociations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Region").
		Preload("SDGs", func(db *gorm.DB) *gorm.DB { return db.Order("sdg_id") }).
		Preload("SDGs.SDG").
		Preload("Typologies").
		Preload("Typologies.Typology").
		Preload("Requirements").
		Preload("Requirements.Requirement").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order, id") })
}

// insertAssociations inserts the junction rows of p. Catalog references must
// already be checked; must run inside the caller's transaction.
func insertAssociations(tx *gorm.DB, p *models.Project) error {
	for i := range p.SDGs {
		p.SDGs[i].ProjectID = p.ID
	}
	for i := range p.Typologies {
		p.Typologies[i].ProjectID = p.ID
	}
	for i := range p.Requirements {
		p.Requirements[i].ProjectID = p.ID
	}
	for i := range p.Images {
		p.Images[i].ProjectID = p.ID
		p.Images[i].DisplayOrder = i
	}

	if len(p.SDGs) > 0 {
		if err := tx.Omit(clause.Associations).Create(&p.SDGs).Error; err != nil {
			return err
		}
	}
	if len(p.Typologies) > 0 {
		if err := tx.Omit(clause.Associations).Create(&p.Typologies).Error; err != nil {
			return err
		}
	}
	if len(p.Requirements) > 0 {
		if err := tx.Omit(clause.Associations).Create(&p.Requirements).Error; err != nil {
			return err
		}
	}
	if len(p.Images) > 0 {
		if err := tx.Create(&p.Images).Error; err != nil {
			return err
		}
	}
	return nil
}

// checkCatalogReferences reports every unknown catalog id or code on p
func checkCatalogReferences(tx *gorm.DB, p *models.Project) error {
	verr := &apperrors.ValidationError{}

	var regions int64
	if err := tx.Model(&models.Region{}).Where("id = ?", p.RegionID).Count(&regions).Error; err != nil {
		return err
	}
	if regions == 0 {
		verr.Add("region_id", fmt.Sprintf("unknown region %d", p.RegionID))
	}

	sdgIDs := p.SDGIDs()
	if missing, err := missingKeys(tx, &models.SDG{}, "id", sdgIDs); err != nil {
		return err
	} else if len(missing) > 0 {
		verr.Add("sdgs", fmt.Sprintf("unknown SDG ids %v", missing))
	}

	typologyCodes := make([]string, 0, len(p.Typologies))
	for _, t := range p.Typologies {
		typologyCodes = append(typologyCodes, t.TypologyCode)
	}
	if missing, err := missingKeys(tx, &models.Typology{}, "code", typologyCodes); err != nil {
		return err
	} else if len(missing) > 0 {
		verr.Add("typologies", fmt.Sprintf("unknown typology codes %v", missing))
	}

	requirementCodes := make([]string, 0, len(p.Requirements))
	for _, req := range p.Requirements {
		requirementCodes = append(requirementCodes, req.RequirementCode)
	}
	if missing, err := missingKeys(tx, &models.Requirement{}, "code", requirementCodes); err != nil {
		return err
	} else if len(missing) > 0 {
		verr.Add("requirements", fmt.Sprintf("unknown requirement codes %v", missing))
	}

	return verr.OrNil()
}

func missingKeys[K comparable](tx *gorm.DB, model interface{}, column string, keys []K) ([]K, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var found []K
	if err := tx.Model(model).Where(column+" IN ?", keys).Pluck(column, &found).Error; err != nil {
		return nil, err
	}
	present := make(map[K]bool, len(found))
	for _, k := range found {
		present[k] = true
	}
	var missing []K
	for _, k := range keys {
		if !present[k] {
			missing = append(missing, k)
		}
	}
	return missing, nil
}

func resolveUser(tx *gorm.DB, submitter *models.User) (*models.User, error) {
	if submitter == nil {
		return nil, apperrors.NewValidationError("contact_email", "submitter is required")
	}
	email := strings.ToLower(strings.TrimSpace(submitter.Email))
	if email == "" {
		return nil, apperrors.NewValidationError("contact_email", "submitter email is required")
	}
	var user models.User
	err := tx.Where(models.User{Email: email}).
		Attrs(models.User{
			FullName:                submitter.FullName,
			Role:                    models.UserRoleSubmitter,
			OrganizationAffiliation: submitter.OrganizationAffiliation,
			IsActive:                true,
		}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// nextReferenceCode increments the per-year sequence inside tx. The UPDATE
// locks the sequence row until the transaction ends.
func nextReferenceCode(tx *gorm.DB, year int) (string, error) {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.ReferenceSequence{Year: year}).Error; err != nil {
		return "", err
	}
	if err := tx.Model(&models.ReferenceSequence{}).Where("year = ?", year).
		UpdateColumn("last_value", gorm.Expr("last_value + ?", 1)).Error; err != nil {
		return "", err
	}
	var seq models.ReferenceSequence
	if err := tx.First(&seq, "year = ?", year).Error; err != nil {
		return "", err
	}
	return FormatReferenceCode(year, seq.LastValue), nil
}

// FormatReferenceCode renders ATLAS-<year>-<6-digit sequence>
func FormatReferenceCode(year, seq int) string {
	return fmt.Sprintf("ATLAS-%d-%06d", year, seq)
}

var (
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

const maxSlugLength = 200

// Slugify lower-cases name, drops everything but letters, digits, spaces and
// hyphens, and joins words with hyphens.
func Slugify(name string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(name), "")
	s = slugWhitespace.ReplaceAllString(strings.TrimSpace(s), "-")
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	if s == "" {
		s = "project"
	}
	return s
}

// uniqueSlug appends -1, -2, ... until the slug is free. Soft-deleted
// projects keep their slug reserved.
func uniqueSlug(tx *gorm.DB, name string) (string, error) {
	base := Slugify(name)
	var taken []string
	err := tx.Unscoped().Model(&models.Project{}).
		Where(`slug = ? OR slug LIKE ? ESCAPE '\'`, base, escapeLike(base)+"-%").
		Pluck("slug", &taken).Error
	if err != nil {
		return "", err
	}
	used := make(map[string]bool, len(taken))
	for _, s := range taken {
		used[s] = true
	}
	if !used[base] {
		return base, nil
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !used[candidate] {
			return candidate, nil
		}
	}
}

// storageError keeps typed application errors intact, turns unique key
// races into ConflictError and wraps everything else as StorageError.
func storageError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsValidation(err), apperrors.IsNotFound(err), apperrors.IsInvalidTransition(err),
		apperrors.IsConflict(err), apperrors.IsStorage(err):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewConflictError("project", "a concurrent write claimed the same slug or reference code")
	default:
		return apperrors.NewStorageError(op, err)
	}
}
