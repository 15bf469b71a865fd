package models

import (
	"math"
	"strings"
	"time"

	apperrors "atlas-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// searchFieldSeparator keeps substring matches from spanning two fields
const searchFieldSeparator = "\x1f"

// Project is a sustainable-development project submission
type Project struct {
	BaseModel
	ReferenceCode string `json:"reference_code" gorm:"size:32;not null;uniqueIndex"`
	Slug          string `json:"slug" gorm:"size:255;not null;uniqueIndex"`

	Name                 string               `json:"name" gorm:"size:200;not null"`
	OrganizationName     string               `json:"organization_name" gorm:"size:200;not null"`
	ContactPerson        string               `json:"contact_person" gorm:"size:100;not null"`
	ContactEmail         string               `json:"contact_email" gorm:"size:255;not null"`
	ImplementationStatus ImplementationStatus `json:"implementation_status" gorm:"type:varchar(32);not null"`
	City                 string               `json:"city" gorm:"size:100;not null"`
	Country              string               `json:"country" gorm:"size:100;not null"`
	RegionID             int                  `json:"region_id" gorm:"not null;index"`
	Latitude             *float64             `json:"latitude"`
	Longitude            *float64             `json:"longitude"`
	FundingNeeded        float64              `json:"funding_needed" gorm:"not null;default:0"`
	FundingSpent         *float64             `json:"funding_spent"`
	BriefDescription     string               `json:"brief_description" gorm:"size:255;not null"`
	DetailedDescription  string               `json:"detailed_description" gorm:"type:text;not null"`
	SuccessFactors       *string              `json:"success_factors" gorm:"type:text"`

	WorkflowStatus   WorkflowStatus `json:"workflow_status" gorm:"type:varchar(32);not null;index"`
	SubmissionDate   time.Time      `json:"submission_date" gorm:"not null;index"`
	ApprovalDate     *time.Time     `json:"approval_date"`
	PublishedDate    *time.Time     `json:"published_date" gorm:"index"`
	RejectionReason  *string        `json:"rejection_reason" gorm:"type:text"`
	SubmittedByID    uuid.UUID      `json:"submitted_by_id" gorm:"type:uuid;not null;index"`
	LastReviewedByID *uuid.UUID     `json:"last_reviewed_by_id,omitempty" gorm:"type:uuid"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Lower-cased search keys, rebuilt on every save
	CityKey         string `json:"-" gorm:"size:100;not null;index"`
	OrganizationKey string `json:"-" gorm:"size:200;not null;index"`
	SearchText      string `json:"-" gorm:"type:text;not null"`

	// Relationships
	Region       *Region              `json:"region,omitempty" gorm:"foreignKey:RegionID"`
	SDGs         []ProjectSDG         `json:"sdgs,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Typologies   []ProjectTypology    `json:"typologies,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Requirements []ProjectRequirement `json:"requirements,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Images       []ProjectImage       `json:"images,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeSave rebuilds the normalized search keys
func (p *Project) BeforeSave(tx *gorm.DB) error {
	p.RefreshSearchKeys()
	return nil
}

// RefreshSearchKeys recomputes CityKey, OrganizationKey and SearchText
func (p *Project) RefreshSearchKeys() {
	p.CityKey = NormalizeKey(p.City)
	p.OrganizationKey = NormalizeKey(p.OrganizationName)
	p.SearchText = strings.Join([]string{
		NormalizeKey(p.Name),
		NormalizeKey(p.BriefDescription),
		NormalizeKey(p.DetailedDescription),
		p.OrganizationKey,
	}, searchFieldSeparator)
}

// HasCoordinates reports whether both latitude and longitude are set
func (p *Project) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// IsPublished reports whether the project is visible on the public dashboard
func (p *Project) IsPublished() bool {
	return p.WorkflowStatus == WorkflowStatusApproved && p.PublishedDate != nil
}

// SDGIDs returns the ids of the attached SDGs
func (p *Project) SDGIDs() []int {
	ids := make([]int, 0, len(p.SDGs))
	for _, s := range p.SDGs {
		ids = append(ids, s.SDGID)
	}
	return ids
}

// NormalizeKey folds s for case-insensitive comparisons. Control characters
// are dropped so a search needle can never contain the field separator.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
}

// ProjectSDG links a project to an SDG
type ProjectSDG struct {
	ProjectID uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	SDGID     int       `json:"sdg_id" gorm:"primaryKey;autoIncrement:false"`
	SDG       *SDG      `json:"sdg,omitempty" gorm:"foreignKey:SDGID"`
}

// TableName returns the table name for ProjectSDG
func (ProjectSDG) TableName() string {
	return "project_sdgs"
}

// ProjectTypology links a project to a typology
type ProjectTypology struct {
	ProjectID        uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	TypologyCode     string    `json:"typology_code" gorm:"primaryKey;size:50"`
	OtherDescription *string   `json:"other_description,omitempty" gorm:"type:text"`
	Typology         *Typology `json:"typology,omitempty" gorm:"foreignKey:TypologyCode;references:Code"`
}

// ProjectRequirement links a project to a requirement tag
type ProjectRequirement struct {
	ProjectID        uuid.UUID           `json:"-" gorm:"type:uuid;primaryKey"`
	RequirementCode  string              `json:"requirement_code" gorm:"primaryKey;size:50"`
	Category         RequirementCategory `json:"category" gorm:"type:varchar(32);not null"`
	OtherDescription *string             `json:"other_description,omitempty" gorm:"type:text"`
	Requirement      *Requirement        `json:"requirement,omitempty" gorm:"foreignKey:RequirementCode;references:Code"`
}

// ProjectImage is an ordered image attached to a project
type ProjectImage struct {
	BaseModel
	ProjectID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	URL          string    `json:"url" gorm:"size:1000;not null"`
	AltText      *string   `json:"alt_text,omitempty" gorm:"size:255"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
}

// validAmount rejects negatives, NaN and +Inf
func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// Validate checks the storage invariants of p: coordinate ranges, both or
// neither coordinate, non-negative funding and at least one SDG. Request-level
// rules such as length limits live in the service layer.
func (p *Project) Validate() error {
	verr := &apperrors.ValidationError{}
	switch {
	case p.Latitude == nil && p.Longitude == nil:
	case p.Latitude == nil || p.Longitude == nil:
		verr.Add("latitude", "latitude and longitude must be given together")
	default:
		// Written as negated ranges so NaN fails them
		if !(*p.Latitude >= -90 && *p.Latitude <= 90) {
			verr.Add("latitude", "latitude must be between -90 and 90")
		}
		if !(*p.Longitude >= -180 && *p.Longitude <= 180) {
			verr.Add("longitude", "longitude must be between -180 and 180")
		}
	}
	if !validAmount(p.FundingNeeded) {
		verr.Add("funding_needed", "funding needed must be a finite, non-negative amount")
	}
	if p.FundingSpent != nil && !validAmount(*p.FundingSpent) {
		verr.Add("funding_spent", "funding spent must be a finite, non-negative amount")
	}
	if len(p.SDGs) == 0 {
		verr.Add("sdgs", "at least one SDG is required")
	}
	return verr.OrNil()
}
