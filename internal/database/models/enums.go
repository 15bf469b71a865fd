package models

// WorkflowStatus is the review state of a project
type WorkflowStatus string

const (
	WorkflowStatusSubmitted        WorkflowStatus = "submitted"
	WorkflowStatusInReview         WorkflowStatus = "in_review"
	WorkflowStatusApproved         WorkflowStatus = "approved"
	WorkflowStatusRejected         WorkflowStatus = "rejected"
	WorkflowStatusChangesRequested WorkflowStatus = "changes_requested"
)

// AllWorkflowStatuses lists every workflow status
var AllWorkflowStatuses = []WorkflowStatus{
	WorkflowStatusSubmitted,
	WorkflowStatusInReview,
	WorkflowStatusApproved,
	WorkflowStatusRejected,
	WorkflowStatusChangesRequested,
}

// PendingReviewStatuses are the statuses shown in the review queue
var PendingReviewStatuses = []WorkflowStatus{
	WorkflowStatusSubmitted,
	WorkflowStatusInReview,
	WorkflowStatusChangesRequested,
}

// IsValid checks if the WorkflowStatus is valid
func (s WorkflowStatus) IsValid() bool {
	switch s {
	case WorkflowStatusSubmitted, WorkflowStatusInReview, WorkflowStatusApproved,
		WorkflowStatusRejected, WorkflowStatusChangesRequested:
		return true
	}
	return false
}

// IsReviewDecision reports whether reaching s records a reviewer decision
func (s WorkflowStatus) IsReviewDecision() bool {
	switch s {
	case WorkflowStatusApproved, WorkflowStatusRejected, WorkflowStatusChangesRequested:
		return true
	}
	return false
}

// ImplementationStatus describes how far a project has progressed on the ground
type ImplementationStatus string

const (
	ImplementationStatusPlanned     ImplementationStatus = "Planned"
	ImplementationStatusInProgress  ImplementationStatus = "In Progress"
	ImplementationStatusImplemented ImplementationStatus = "Implemented"
)

// IsValid checks if the ImplementationStatus is valid
func (s ImplementationStatus) IsValid() bool {
	switch s {
	case ImplementationStatusPlanned, ImplementationStatusInProgress, ImplementationStatusImplemented:
		return true
	}
	return false
}

// UserRole defines what a user may do
type UserRole string

const (
	UserRolePublicVisitor UserRole = "public_visitor"
	UserRoleSubmitter     UserRole = "submitter"
	UserRoleReviewer      UserRole = "reviewer"
	UserRoleAdmin         UserRole = "admin"
	UserRoleManager       UserRole = "manager"
	UserRoleEditor        UserRole = "editor"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRolePublicVisitor, UserRoleSubmitter, UserRoleReviewer, UserRoleAdmin, UserRoleManager, UserRoleEditor:
		return true
	}
	return false
}

// CanReview reports whether the role may act on the review queue
func (r UserRole) CanReview() bool {
	switch r {
	case UserRoleReviewer, UserRoleAdmin, UserRoleManager:
		return true
	}
	return false
}

// RequirementCategory groups requirement tags
type RequirementCategory string

const (
	RequirementCategoryFunding    RequirementCategory = "funding"
	RequirementCategoryGovernment RequirementCategory = "government_regulatory"
	RequirementCategoryOther      RequirementCategory = "other"
)

// IsValid checks if the RequirementCategory is valid
func (c RequirementCategory) IsValid() bool {
	switch c {
	case RequirementCategoryFunding, RequirementCategoryGovernment, RequirementCategoryOther:
		return true
	}
	return false
}
