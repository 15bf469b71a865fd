// Package workflow implements the project review state machine and its
// append-only audit trail. It is independent of the storage engine.
package workflow

import (
	"strings"
	"time"

	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"

	"github.com/google/uuid"
)

// transitions is the complete table of legal edges
var transitions = map[models.WorkflowStatus][]models.WorkflowStatus{
	models.WorkflowStatusSubmitted: {
		models.WorkflowStatusInReview,
		models.WorkflowStatusApproved,
		models.WorkflowStatusRejected,
		models.WorkflowStatusChangesRequested,
	},
	models.WorkflowStatusInReview: {
		models.WorkflowStatusApproved,
		models.WorkflowStatusRejected,
		models.WorkflowStatusChangesRequested,
	},
	models.WorkflowStatusChangesRequested: {
		models.WorkflowStatusSubmitted,
		models.WorkflowStatusInReview,
	},
	models.WorkflowStatusApproved: {
		models.WorkflowStatusInReview,
	},
	models.WorkflowStatusRejected: {},
}

// HistoryAppender persists one audit entry. Implementations write inside the
// caller's transaction.
type HistoryAppender interface {
	AppendHistory(entry *models.WorkflowHistoryEntry) error
}

// AppenderFunc adapts a function to HistoryAppender
type AppenderFunc func(entry *models.WorkflowHistoryEntry) error

// AppendHistory calls f(entry)
func (f AppenderFunc) AppendHistory(entry *models.WorkflowHistoryEntry) error {
	return f(entry)
}

// Snapshot is the workflow-relevant state of a project before a transition
type Snapshot struct {
	ProjectID       uuid.UUID
	Status          models.WorkflowStatus
	SubmissionDate  time.Time
	ApprovalDate    *time.Time
	PublishedDate   *time.Time
	RejectionReason *string
}

// SnapshotOf extracts the workflow state of p
func SnapshotOf(p *models.Project) Snapshot {
	return Snapshot{
		ProjectID:       p.ID,
		Status:          p.WorkflowStatus,
		SubmissionDate:  p.SubmissionDate,
		ApprovalDate:    p.ApprovalDate,
		PublishedDate:   p.PublishedDate,
		RejectionReason: p.RejectionReason,
	}
}

// Outcome is the new workflow state produced by a transition
type Outcome struct {
	Status          models.WorkflowStatus
	ApprovalDate    *time.Time
	PublishedDate   *time.Time
	RejectionReason *string
	Unpublish       bool
	Entry           *models.WorkflowHistoryEntry
}

// ApplyTo copies the outcome onto p
func (o *Outcome) ApplyTo(p *models.Project) {
	p.WorkflowStatus = o.Status
	p.ApprovalDate = o.ApprovalDate
	p.PublishedDate = o.PublishedDate
	p.RejectionReason = o.RejectionReason
}

// Engine validates transitions and appends their history entries. It keeps no
// state between calls apart from its clock.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a workflow engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine clock's current UTC time
func (e *Engine) Now() time.Time {
	return e.now().UTC()
}

// IsAllowed reports whether from -> to is in the transition table
func IsAllowed(from, to models.WorkflowStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// AllowedTargets lists the statuses reachable from from
func AllowedTargets(from models.WorkflowStatus) []models.WorkflowStatus {
	out := make([]models.WorkflowStatus, len(transitions[from]))
	copy(out, transitions[from])
	return out
}

// RequiresReason reports whether entering target needs an operator reason
func RequiresReason(target models.WorkflowStatus) bool {
	return target == models.WorkflowStatusRejected || target == models.WorkflowStatusChangesRequested
}

// IsUnpublish reports whether from -> to takes a published project offline
func IsUnpublish(from, to models.WorkflowStatus) bool {
	return from == models.WorkflowStatusApproved && to == models.WorkflowStatusInReview
}

// Submit appends the initial history entry for a new project and returns the
// submission time.
func (e *Engine) Submit(appender HistoryAppender, projectID, actorID uuid.UUID) (time.Time, error) {
	if actorID == uuid.Nil {
		return time.Time{}, apperrors.NewValidationError("actor_id", "actor is required")
	}
	now := e.Now()
	entry := &models.WorkflowHistoryEntry{
		ProjectID: projectID,
		ToStatus:  models.WorkflowStatusSubmitted,
		ActorID:   actorID,
		CreatedAt: now,
	}
	if err := appender.AppendHistory(entry); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// Apply validates current -> target and, when legal, appends exactly one
// history entry. Nothing is appended when an error is returned.
func (e *Engine) Apply(appender HistoryAppender, current Snapshot, target models.WorkflowStatus, reason string, actorID uuid.UUID) (*Outcome, error) {
	if !target.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown workflow status "+string(target))
	}
	if !IsAllowed(current.Status, target) {
		return nil, apperrors.NewInvalidTransitionError(string(current.Status), string(target))
	}

	verr := &apperrors.ValidationError{}
	reason = strings.TrimSpace(reason)
	if RequiresReason(target) && reason == "" {
		verr.Add("reason", "a reason is required when moving a project to "+string(target))
	}
	if actorID == uuid.Nil {
		verr.Add("actor_id", "actor is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := e.Now()
	out := &Outcome{
		Status:          target,
		ApprovalDate:    current.ApprovalDate,
		PublishedDate:   current.PublishedDate,
		RejectionReason: current.RejectionReason,
		Unpublish:       IsUnpublish(current.Status, target),
	}

	switch {
	case target == models.WorkflowStatusApproved:
		if out.ApprovalDate == nil {
			approved := latest(now, current.SubmissionDate)
			out.ApprovalDate = &approved
		}
		if out.PublishedDate == nil {
			published := latest(now, *out.ApprovalDate)
			out.PublishedDate = &published
		}
	case current.Status == models.WorkflowStatusApproved:
		out.PublishedDate = nil
	}
	if target == models.WorkflowStatusRejected {
		r := reason
		out.RejectionReason = &r
	}

	from := current.Status
	out.Entry = &models.WorkflowHistoryEntry{
		ProjectID:  current.ProjectID,
		FromStatus: &from,
		ToStatus:   target,
		ActorID:    actorID,
		Unpublish:  out.Unpublish,
		CreatedAt:  now,
	}
	if reason != "" {
		r := reason
		out.Entry.Reason = &r
	}

	if err := appender.AppendHistory(out.Entry); err != nil {
		return nil, err
	}
	return out, nil
}

func latest(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
