package handlers

import (
	"net/http"

	"atlas-backend/internal/auth"
	"atlas-backend/internal/database/models"
	"atlas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the review and moderation endpoints. Every route is
// behind auth.RequireAuth; the token subject is the actor of each change.
type AdminHandler struct {
	projectService   service.ProjectServiceInterface
	analyticsService service.AnalyticsServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(projectService service.ProjectServiceInterface, analyticsService service.AnalyticsServiceInterface) *AdminHandler {
	return &AdminHandler{
		projectService:   projectService,
		analyticsService: analyticsService,
	}
}

// StatusChangeRequest moves a project to a new workflow status
type StatusChangeRequest struct {
	Status models.WorkflowStatus `json:"status" binding:"required" example:"approved"`
	Reason string                `json:"reason,omitempty" example:"Meets every criterion"`
}

// BulkStatusRequest applies several status changes
type BulkStatusRequest struct {
	Items []service.BulkStatusItem `json:"items" binding:"required,min=1,dive"`
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// ListReviews handles GET /admin/reviews
// @Summary Review queue
// @Description Projects awaiting a decision or changes, oldest submission first
// @Tags admin
// @Produce json
// @Success 200 {array} models.Project
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /admin/reviews [get]
func (h *AdminHandler) ListReviews(c *gin.Context) {
	projects, err := h.projectService.ListPendingReview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListProjects handles GET /admin/projects
// @Summary Search projects in any status
// @Description Accepts the public filter parameters plus repeatable status and include_non_approved (default true).
// @Tags admin
// @Produce json
// @Param status query []string false "Workflow statuses" collectionFormat(multi)
// @Param include_non_approved query bool false "Include projects that are not approved"
// @Success 200 {array} models.Project
// @Failure 400 {object} ValidationErrorResponse "Malformed filter"
// @Security BearerAuth
// @Router /admin/projects [get]
func (h *AdminHandler) ListProjects(c *gin.Context) {
	filter, err := parseFilter(c, true)
	if err != nil {
		respondError(c, err)
		return
	}
	projects, err := h.projectService.Query(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /admin/projects/:id
// @Summary Get a project in any status
// @Tags admin
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [get]
func (h *AdminHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateStatus handles POST /admin/projects/:id/status
// @Summary Change the workflow status of a project
// @Description Rejections and change requests need a reason.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param body body StatusChangeRequest true "Target status"
// @Success 200 {object} models.Project
// @Failure 400 {object} ValidationErrorResponse "Missing reason or unknown status"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed or concurrent change"
// @Security BearerAuth
// @Router /admin/projects/{id}/status [post]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.UpdateStatus(c.Request.Context(), id, req.Status, req.Reason, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Approve handles POST /admin/projects/:id/approve
// @Summary Approve a project with the canned reason
// @Tags admin
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /admin/projects/{id}/approve [post]
func (h *AdminHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	project, err := h.projectService.QuickApprove(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Unpublish handles POST /admin/projects/:id/unpublish
// @Summary Take an approved project offline
// @Tags admin
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project
// @Failure 400 {object} ValidationErrorResponse "Project is not approved"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id}/unpublish [post]
func (h *AdminHandler) Unpublish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	project, err := h.projectService.Unpublish(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CorrectProject handles PATCH /admin/projects/:id
// @Summary Correct the details of a project
// @Description Replaces the descriptive fields; the workflow status is unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.ProjectDraft true "Corrected project"
// @Success 200 {object} models.Project
// @Failure 400 {object} ValidationErrorResponse "Invalid project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [patch]
func (h *AdminHandler) CorrectProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var draft service.ProjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Correct(c.Request.Context(), id, &draft, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /admin/projects/:id
// @Summary Soft-delete a project
// @Tags admin
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.projectService.SoftDelete(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// History handles GET /admin/projects/:id/history
// @Summary Workflow history of a project
// @Tags admin
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.WorkflowHistoryEntry
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id}/history [get]
func (h *AdminHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entries, err := h.projectService.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// BulkUpdateStatus handles POST /admin/projects/bulk-status
// @Summary Change the status of several projects
// @Description Each item is applied on its own; the response reports every outcome.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body BulkStatusRequest true "Status changes"
// @Success 200 {array} service.BulkStatusResult
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /admin/projects/bulk-status [post]
func (h *AdminHandler) BulkUpdateStatus(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.projectService.BulkUpdateStatus(c.Request.Context(), req.Items, actor))
}

// Metrics handles GET /admin/metrics
// @Summary Review workload metrics
// @Tags admin
// @Produce json
// @Success 200 {object} service.AdminMetrics
// @Security BearerAuth
// @Router /admin/metrics [get]
func (h *AdminHandler) Metrics(c *gin.Context) {
	metrics, err := h.analyticsService.AdminMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
