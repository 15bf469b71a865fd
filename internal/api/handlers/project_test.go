package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockProjectSv *mocks.MockProjectServiceInterface
	mockExportSv  *mocks.MockExportServiceInterface
	handler       *handlers.ProjectHandler
	router        *gin.Engine
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectSv = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.mockExportSv = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockProjectSv, suite.mockExportSv)

	suite.router = gin.New()
	suite.router.GET("/projects", suite.handler.ListProjects)
	suite.router.GET("/projects/export", suite.handler.ExportProjects)
	suite.router.POST("/projects", suite.handler.SubmitProject)
	suite.router.GET("/projects/:id", suite.handler.GetProject)
	suite.router.POST("/projects/:id/resubmit", suite.handler.ResubmitProject)
}

func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func publishedProject() *models.Project {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &models.Project{
		ReferenceCode:  "ATLAS-2026-000001",
		Name:           "Solar Microgrid",
		City:           "Accra",
		Country:        "Ghana",
		RegionID:       5,
		WorkflowStatus: models.WorkflowStatusApproved,
		PublishedDate:  &now,
	}
	p.ID = uuid.New()
	return p
}

func (suite *ProjectHandlerTestSuite) TestListProjects_PassesFilter() {
	suite.mockProjectSv.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter repository.ProjectFilter) ([]models.Project, error) {
			suite.Require().NotNil(filter.RegionID)
			suite.Equal(5, *filter.RegionID)
			suite.Require().NotNil(filter.SDG)
			suite.Equal(7, *filter.SDG)
			suite.Equal("Accra", filter.City)
			suite.Equal("solar", filter.FreeText)
			suite.Require().NotNil(filter.Near)
			suite.Equal(5.6, filter.Near.Lat)
			suite.Equal(-0.2, filter.Near.Lon)
			suite.Equal(25.0, filter.Near.RadiusKm)
			suite.False(filter.IncludeNonApproved)
			return []models.Project{*publishedProject()}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/projects?region_id=5&sdg=7&city=Accra&q=solar&lat=5.6&lon=-0.2&radius_km=25", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []models.Project
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Solar Microgrid", got[0].Name)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_PublicCannotWidenStatus() {
	suite.mockProjectSv.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter repository.ProjectFilter) ([]models.Project, error) {
			suite.False(filter.IncludeNonApproved)
			suite.Empty(filter.Statuses)
			return []models.Project{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/projects?include_non_approved=true&status=submitted", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_MalformedFilter() {
	req := httptest.NewRequest(http.MethodGet, "/projects?region_id=abc&lat=95&lon=0&north=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	var got handlers.ValidationErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	fields := map[string]bool{}
	for _, f := range got.Fields {
		fields[f.Field] = true
	}
	assert.True(suite.T(), fields["region_id"])
	assert.True(suite.T(), fields["lat"])
	assert.True(suite.T(), fields["north"])
}

func (suite *ProjectHandlerTestSuite) TestListProjects_NonFiniteNumbers() {
	req := httptest.NewRequest(http.MethodGet, "/projects?lat=NaN&lon=0&radius_km=Inf", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	var got handlers.ValidationErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	fields := map[string]bool{}
	for _, f := range got.Fields {
		fields[f.Field] = true
	}
	assert.True(suite.T(), fields["lat"])
	assert.True(suite.T(), fields["radius_km"])
}

func (suite *ProjectHandlerTestSuite) TestListProjects_LatWithoutLon() {
	req := httptest.NewRequest(http.MethodGet, "/projects?lat=5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "lat and lon must be given together")
}

func (suite *ProjectHandlerTestSuite) TestListProjects_InvertedBounds() {
	req := httptest.NewRequest(http.MethodGet, "/projects?north=1&south=2&east=10&west=0", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "south must not be greater than north")
}

func (suite *ProjectHandlerTestSuite) TestListProjects_AntimeridianBounds() {
	suite.mockProjectSv.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter repository.ProjectFilter) ([]models.Project, error) {
			suite.Require().NotNil(filter.Bounds)
			suite.True(filter.Bounds.CrossesAntimeridian())
			return []models.Project{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/projects?north=10&south=-10&east=-170&west=170", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_StorageUnavailable() {
	suite.mockProjectSv.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewStorageError("query projects", errors.New("connection refused")))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "connection refused")
}

func (suite *ProjectHandlerTestSuite) TestGetProject_Published() {
	project := publishedProject()
	suite.mockProjectSv.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects/"+project.ID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ATLAS-2026-000001")
}

func (suite *ProjectHandlerTestSuite) TestGetProject_HidesUnpublished() {
	project := publishedProject()
	project.WorkflowStatus = models.WorkflowStatusSubmitted
	project.PublishedDate = nil
	suite.mockProjectSv.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects/"+project.ID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestGetProject_Missing() {
	id := uuid.New()
	suite.mockProjectSv.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestGetProject_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid project ID")
}

func (suite *ProjectHandlerTestSuite) TestSubmitProject_Created() {
	result := &service.SubmissionResult{ID: uuid.New(), ReferenceCode: "ATLAS-2026-000002", Slug: "solar-microgrid"}
	suite.mockProjectSv.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, draft *service.ProjectDraft) (*service.SubmissionResult, error) {
			suite.Equal("Solar Microgrid", draft.Name)
			suite.Equal([]int{7, 11}, draft.SDGs)
			return result, nil
		})

	body, _ := json.Marshal(map[string]any{
		"name":      "Solar Microgrid",
		"sdgs":      []int{7, 11},
		"region_id": 5,
	})
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.SubmissionResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "ATLAS-2026-000002", got.ReferenceCode)
}

func (suite *ProjectHandlerTestSuite) TestSubmitProject_ValidationFields() {
	verr := &apperrors.ValidationError{}
	verr.Add("name", "name is required")
	verr.Add("sdgs", "at least one SDG is required")
	suite.mockProjectSv.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, verr)

	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	var got handlers.ValidationErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Fields, 2)
	assert.Equal(suite.T(), "name", got.Fields[0].Field)
	assert.Equal(suite.T(), "sdgs", got.Fields[1].Field)
}

func (suite *ProjectHandlerTestSuite) TestSubmitProject_MalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestResubmitProject() {
	project := publishedProject()
	project.WorkflowStatus = models.WorkflowStatusSubmitted
	suite.mockProjectSv.EXPECT().
		Resubmit(gomock.Any(), project.ID, &service.ResubmitRequest{ReferenceCode: "ATLAS-2026-000001", ContactEmail: "ama@greenenergy.org"}).
		Return(project, nil)

	body := `{"reference_code":"ATLAS-2026-000001","contact_email":"ama@greenenergy.org"}`
	req := httptest.NewRequest(http.MethodPost, "/projects/"+project.ID.String()+"/resubmit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestResubmitProject_WrongState() {
	id := uuid.New()
	suite.mockProjectSv.EXPECT().
		Resubmit(gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.NewInvalidTransitionError("approved", "submitted"))

	req := httptest.NewRequest(http.MethodPost, "/projects/"+id.String()+"/resubmit", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestExportProjects() {
	suite.mockExportSv.EXPECT().
		ExportCSV(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ repository.ProjectFilter, w io.Writer) error {
			_, err := io.WriteString(w, "reference_code,name\nATLAS-2026-000001,Solar Microgrid\n")
			return err
		})

	req := httptest.NewRequest(http.MethodGet, "/projects/export?sdg=7", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "attachment; filename=\"atlas-projects-")
	assert.Contains(suite.T(), w.Body.String(), "Solar Microgrid")
}

func (suite *ProjectHandlerTestSuite) TestExportProjects_Failure() {
	suite.mockExportSv.EXPECT().
		ExportCSV(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	req := httptest.NewRequest(http.MethodGet, "/projects/export", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Header().Get("Content-Type"), "application/json")
	assert.Empty(suite.T(), w.Header().Get("Content-Disposition"))
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
