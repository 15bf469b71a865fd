package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"atlas-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the public project endpoints
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
	exportService  service.ExportServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface, exportService service.ExportServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		exportService:  exportService,
	}
}

// ListProjects handles GET /projects
// @Summary List published projects
// @Description Filters combine with AND. A near search needs lat and lon; a box search needs all four edges.
// @Tags projects
// @Produce json
// @Param region_id query int false "Region ID"
// @Param sdg query int false "SDG ID"
// @Param city query string false "City (exact, case-insensitive)"
// @Param funded_by query string false "Organization name substring"
// @Param q query string false "Free text"
// @Param lat query number false "Latitude of the search centre"
// @Param lon query number false "Longitude of the search centre"
// @Param radius_km query number false "Search radius in kilometres"
// @Param north query number false "Bounding box north edge"
// @Param south query number false "Bounding box south edge"
// @Param east query number false "Bounding box east edge"
// @Param west query number false "Bounding box west edge"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} models.Project
// @Failure 400 {object} ValidationErrorResponse "Malformed filter"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter, err := parseFilter(c, false)
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

// GetProject handles GET /projects/:id
// @Summary Get a published project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil || !project.IsPublished() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// SubmitProject handles POST /projects
// @Summary Submit a project for review
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.ProjectDraft true "Submission"
// @Success 201 {object} service.SubmissionResult "Submission received"
// @Failure 400 {object} ValidationErrorResponse "Invalid submission"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /projects [post]
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	var draft service.ProjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.projectService.Create(c.Request.Context(), &draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ResubmitProject handles POST /projects/:id/resubmit
// @Summary Resubmit a project after requested changes
// @Description The submitter proves ownership with the reference code and contact email.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param body body service.ResubmitRequest true "Ownership proof"
// @Success 200 {object} models.Project
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Project is not awaiting changes"
// @Router /projects/{id}/resubmit [post]
func (h *ProjectHandler) ResubmitProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ResubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Resubmit(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ExportProjects handles GET /projects/export
// @Summary Export published projects as CSV
// @Description Accepts the same filter parameters as the project list.
// @Tags projects
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ValidationErrorResponse "Malformed filter"
// @Router /projects/export [get]
func (h *ProjectHandler) ExportProjects(c *gin.Context) {
	filter, err := parseFilter(c, false)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportCSV(c.Request.Context(), filter, &buf); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("atlas-projects-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
