package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowHistoryEntry is an append-only audit record of one status change.
// FromStatus is nil for the initial submission.
type WorkflowHistoryEntry struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID  uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index"`
	FromStatus *WorkflowStatus `json:"from_status" gorm:"type:varchar(32)"`
	ToStatus   WorkflowStatus  `json:"to_status" gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID       `json:"actor_id" gorm:"type:uuid;not null;index"`
	Reason     *string         `json:"reason,omitempty" gorm:"type:text"`
	Unpublish  bool            `json:"unpublish" gorm:"not null;default:false"`
	CreatedAt  time.Time       `json:"created_at" gorm:"not null;index"`
}

// TableName returns the table name for WorkflowHistoryEntry
func (WorkflowHistoryEntry) TableName() string {
	return "workflow_history"
}

// BeforeCreate sets the UUID if not already set
func (e *WorkflowHistoryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Review records a reviewer decision on a project
type Review struct {
	BaseModel
	ProjectID  uuid.UUID      `json:"project_id" gorm:"type:uuid;not null;index"`
	ReviewerID uuid.UUID      `json:"reviewer_id" gorm:"type:uuid;not null;index"`
	Decision   WorkflowStatus `json:"decision" gorm:"type:varchar(32);not null"`
	Notes      *string        `json:"notes,omitempty" gorm:"type:text"`
}

// ReferenceSequence is the per-year counter behind project reference codes
type ReferenceSequence struct {
	Year      int `gorm:"primaryKey;autoIncrement:false"`
	LastValue int `gorm:"not null;default:0"`
}
