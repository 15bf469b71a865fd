package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atlas-backend/internal/api/handlers"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/mocks"
	"atlas-backend/internal/repository"
	"atlas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AdminHandlerTestSuite defines the test suite for AdminHandler
type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectSv   *mocks.MockProjectServiceInterface
	mockAnalyticsSv *mocks.MockAnalyticsServiceInterface
	handler         *handlers.AdminHandler
	router          *gin.Engine
	actor           uuid.UUID
}

func (suite *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectSv = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.mockAnalyticsSv = mocks.NewMockAnalyticsServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAdminHandler(suite.mockProjectSv, suite.mockAnalyticsSv)
	suite.actor = uuid.New()

	suite.router = gin.New()
	admin := suite.router.Group("/admin")
	admin.Use(func(c *gin.Context) {
		if c.GetHeader("X-Anonymous") == "" {
			c.Set("user_id", suite.actor)
		}
		c.Next()
	})
	admin.GET("/reviews", suite.handler.ListReviews)
	admin.GET("/metrics", suite.handler.Metrics)
	admin.GET("/projects", suite.handler.ListProjects)
	admin.POST("/projects/bulk-status", suite.handler.BulkUpdateStatus)
	admin.GET("/projects/:id", suite.handler.GetProject)
	admin.PATCH("/projects/:id", suite.handler.CorrectProject)
	admin.DELETE("/projects/:id", suite.handler.DeleteProject)
	admin.GET("/projects/:id/history", suite.handler.History)
	admin.POST("/projects/:id/status", suite.handler.UpdateStatus)
	admin.POST("/projects/:id/approve", suite.handler.Approve)
	admin.POST("/projects/:id/unpublish", suite.handler.Unpublish)
}

func (suite *AdminHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AdminHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AdminHandlerTestSuite) TestListReviews() {
	pending := publishedProject()
	pending.WorkflowStatus = models.WorkflowStatusSubmitted
	suite.mockProjectSv.EXPECT().ListPendingReview(gomock.Any()).Return([]models.Project{*pending}, nil)

	w := suite.do(http.MethodGet, "/admin/reviews", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []models.Project
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), models.WorkflowStatusSubmitted, got[0].WorkflowStatus)
}

func (suite *AdminHandlerTestSuite) TestListProjects_StatusFilter() {
	suite.mockProjectSv.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter repository.ProjectFilter) ([]models.Project, error) {
			suite.True(filter.IncludeNonApproved)
			suite.Equal([]models.WorkflowStatus{
				models.WorkflowStatusSubmitted,
				models.WorkflowStatusInReview,
				models.WorkflowStatusRejected,
			}, filter.Statuses)
			return []models.Project{}, nil
		})

	w := suite.do(http.MethodGet, "/admin/projects?status=submitted,in_review&status=rejected", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AdminHandlerTestSuite) TestListProjects_ApprovedOnly() {
	suite.mockProjectSv.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter repository.ProjectFilter) ([]models.Project, error) {
			suite.False(filter.IncludeNonApproved)
			return []models.Project{}, nil
		})

	w := suite.do(http.MethodGet, "/admin/projects?include_non_approved=false", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AdminHandlerTestSuite) TestListProjects_UnknownStatus() {
	w := suite.do(http.MethodGet, "/admin/projects?status=archived", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `unknown status \"archived\"`)
}

func (suite *AdminHandlerTestSuite) TestGetProject_AnyStatus() {
	project := publishedProject()
	project.WorkflowStatus = models.WorkflowStatusRejected
	project.PublishedDate = nil
	suite.mockProjectSv.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	w := suite.do(http.MethodGet, "/admin/projects/"+project.ID.String(), "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AdminHandlerTestSuite) TestUpdateStatus() {
	project := publishedProject()
	project.WorkflowStatus = models.WorkflowStatusRejected
	suite.mockProjectSv.EXPECT().
		UpdateStatus(gomock.Any(), project.ID, models.WorkflowStatusRejected, "Out of scope", suite.actor).
		Return(project, nil)

	w := suite.do(http.MethodPost, "/admin/projects/"+project.ID.String()+"/status", `{"status":"rejected","reason":"Out of scope"}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"workflow_status":"rejected"`)
}

func (suite *AdminHandlerTestSuite) TestUpdateStatus_Errors() {
	id := uuid.New()

	suite.Run("missing status", func() {
		w := suite.do(http.MethodPost, "/admin/projects/"+id.String()+"/status", `{"reason":"x"}`)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	})

	suite.Run("reason required", func() {
		suite.mockProjectSv.EXPECT().
			UpdateStatus(gomock.Any(), id, models.WorkflowStatusRejected, "", suite.actor).
			Return(nil, apperrors.NewValidationError("reason", "a reason is required"))
		w := suite.do(http.MethodPost, "/admin/projects/"+id.String()+"/status", `{"status":"rejected"}`)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
		assert.Contains(suite.T(), w.Body.String(), `"field":"reason"`)
	})

	suite.Run("not found", func() {
		suite.mockProjectSv.EXPECT().
			UpdateStatus(gomock.Any(), id, models.WorkflowStatusApproved, "", suite.actor).
			Return(nil, apperrors.ErrProjectNotFound)
		w := suite.do(http.MethodPost, "/admin/projects/"+id.String()+"/status", `{"status":"approved"}`)
		assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	})

	suite.Run("transition not allowed", func() {
		suite.mockProjectSv.EXPECT().
			UpdateStatus(gomock.Any(), id, models.WorkflowStatusSubmitted, "", suite.actor).
			Return(nil, apperrors.NewInvalidTransitionError("approved", "submitted"))
		w := suite.do(http.MethodPost, "/admin/projects/"+id.String()+"/status", `{"status":"submitted"}`)
		assert.Equal(suite.T(), http.StatusConflict, w.Code)
	})

	suite.Run("concurrent change", func() {
		suite.mockProjectSv.EXPECT().
			UpdateStatus(gomock.Any(), id, models.WorkflowStatusApproved, "", suite.actor).
			Return(nil, apperrors.NewConflictError("project", "status changed concurrently"))
		w := suite.do(http.MethodPost, "/admin/projects/"+id.String()+"/status", `{"status":"approved"}`)
		assert.Equal(suite.T(), http.StatusConflict, w.Code)
	})
}

func (suite *AdminHandlerTestSuite) TestUpdateStatus_RequiresActor() {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/projects/"+id.String()+"/status", bytes.NewBufferString(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Anonymous", "1")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AdminHandlerTestSuite) TestApprove() {
	project := publishedProject()
	suite.mockProjectSv.EXPECT().QuickApprove(gomock.Any(), project.ID, suite.actor).Return(project, nil)

	w := suite.do(http.MethodPost, "/admin/projects/"+project.ID.String()+"/approve", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AdminHandlerTestSuite) TestUnpublish_NotApproved() {
	id := uuid.New()
	suite.mockProjectSv.EXPECT().
		Unpublish(gomock.Any(), id, suite.actor).
		Return(nil, apperrors.NewValidationError("workflow_status", "only approved projects can be unpublished"))

	w := suite.do(http.MethodPost, "/admin/projects/"+id.String()+"/unpublish", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AdminHandlerTestSuite) TestCorrectProject() {
	project := publishedProject()
	suite.mockProjectSv.EXPECT().
		Correct(gomock.Any(), project.ID, gomock.Any(), suite.actor).
		DoAndReturn(func(_ any, _ uuid.UUID, draft *service.ProjectDraft, _ uuid.UUID) (*models.Project, error) {
			suite.Equal("Solar Microgrid Phase 2", draft.Name)
			project.Name = draft.Name
			return project, nil
		})

	w := suite.do(http.MethodPatch, "/admin/projects/"+project.ID.String(), `{"name":"Solar Microgrid Phase 2"}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Solar Microgrid Phase 2")
}

func (suite *AdminHandlerTestSuite) TestDeleteProject() {
	id := uuid.New()
	suite.mockProjectSv.EXPECT().SoftDelete(gomock.Any(), id, suite.actor).Return(nil)

	w := suite.do(http.MethodDelete, "/admin/projects/"+id.String(), "")

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *AdminHandlerTestSuite) TestDeleteProject_Missing() {
	id := uuid.New()
	suite.mockProjectSv.EXPECT().SoftDelete(gomock.Any(), id, suite.actor).Return(apperrors.ErrProjectNotFound)

	w := suite.do(http.MethodDelete, "/admin/projects/"+id.String(), "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AdminHandlerTestSuite) TestHistory() {
	id := uuid.New()
	entries := []models.WorkflowHistoryEntry{
		{ID: uuid.New(), ProjectID: id, ToStatus: models.WorkflowStatusSubmitted, ActorID: uuid.New()},
		{ID: uuid.New(), ProjectID: id, ToStatus: models.WorkflowStatusInReview, ActorID: suite.actor},
	}
	suite.mockProjectSv.EXPECT().History(gomock.Any(), id).Return(entries, nil)

	w := suite.do(http.MethodGet, "/admin/projects/"+id.String()+"/history", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []models.WorkflowHistoryEntry
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 2)
	assert.Nil(suite.T(), got[0].FromStatus)
}

func (suite *AdminHandlerTestSuite) TestBulkUpdateStatus() {
	ok, missing := uuid.New(), uuid.New()
	items := []service.BulkStatusItem{
		{ProjectID: ok, Status: models.WorkflowStatusApproved},
		{ProjectID: missing, Status: models.WorkflowStatusApproved},
	}
	suite.mockProjectSv.EXPECT().
		BulkUpdateStatus(gomock.Any(), items, suite.actor).
		Return([]service.BulkStatusResult{
			{ProjectID: ok, Success: true, Status: models.WorkflowStatusApproved},
			{ProjectID: missing, Error: "project not found"},
		})

	body, _ := json.Marshal(handlers.BulkStatusRequest{Items: items})
	w := suite.do(http.MethodPost, "/admin/projects/bulk-status", string(body))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []service.BulkStatusResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got[0].Success)
	assert.False(suite.T(), got[1].Success)
}

func (suite *AdminHandlerTestSuite) TestBulkUpdateStatus_Empty() {
	w := suite.do(http.MethodPost, "/admin/projects/bulk-status", `{"items":[]}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AdminHandlerTestSuite) TestMetrics() {
	suite.mockAnalyticsSv.EXPECT().AdminMetrics(gomock.Any()).Return(&service.AdminMetrics{PendingReviews: 4}, nil)

	w := suite.do(http.MethodGet, "/admin/metrics", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.AdminMetrics
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(4), got.PendingReviews)
}

func TestAdminHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
