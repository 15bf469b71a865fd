package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"atlas-backend/internal/api/handlers"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/mocks"
	"atlas-backend/internal/service"
	"atlas-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogHandlerTestSuite defines the test suite for CatalogHandler
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCatalogSv *mocks.MockCatalogServiceInterface
	http          *testutils.HTTPTestSuite
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCatalogSv = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	handler := handlers.NewCatalogHandler(suite.mockCatalogSv)

	suite.http = testutils.SetupHTTPTest(nil)
	suite.http.Router.GET("/catalog/regions", handler.ListRegions)
	suite.http.Router.GET("/catalog/sdgs", handler.ListSDGs)
	suite.http.Router.GET("/catalog/typologies", handler.ListTypologies)
	suite.http.Router.GET("/catalog/requirements", handler.ListRequirements)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestListRegions() {
	suite.mockCatalogSv.EXPECT().ListRegions(gomock.Any()).Return([]models.Region{
		{ID: 1, Code: "NORTH_AMERICA", Name: "North America"},
		{ID: 5, Code: "AFRICA", Name: "Africa"},
	}, nil)

	var got []models.Region
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/catalog/regions", nil), http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "AFRICA", got[1].Code)
}

func (suite *CatalogHandlerTestSuite) TestListSDGs() {
	suite.mockCatalogSv.EXPECT().ListSDGs(gomock.Any()).Return([]models.SDG{{ID: 7, Number: 7, ShortName: "Clean Energy", ColorHex: "#FCC30B"}}, nil)

	var got []models.SDG
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/catalog/sdgs", nil), http.StatusOK, &got)
	assert.Equal(suite.T(), "#FCC30B", got[0].ColorHex)
}

func (suite *CatalogHandlerTestSuite) TestListRequirements() {
	suite.mockCatalogSv.EXPECT().ListRequirements(gomock.Any()).Return([]service.RequirementGroup{
		{Category: models.RequirementCategoryFunding},
	}, nil)

	var got []service.RequirementGroup
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/catalog/requirements", nil), http.StatusOK, &got)
	assert.Equal(suite.T(), models.RequirementCategoryFunding, got[0].Category)
}

func (suite *CatalogHandlerTestSuite) TestStorageFailure() {
	suite.mockCatalogSv.EXPECT().
		ListTypologies(gomock.Any()).
		Return(nil, apperrors.NewStorageError("load catalog", errors.New("database is locked")))

	w := suite.http.MakeRequest(http.MethodGet, "/catalog/typologies", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusServiceUnavailable, "storage unavailable")
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
