package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atlas-backend/internal/catalog"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/mocks"
	"atlas-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogServiceTestSuite defines the test suite for CatalogService
type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockCatalogRepositoryInterface
	service  *service.CatalogService
	ctx      context.Context
}

// SetupTest sets up the test suite
func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCatalogRepositoryInterface(suite.ctrl)
	suite.service = service.NewCatalogService(suite.mockRepo, time.Minute)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogServiceTestSuite) TestListsAreCached() {
	suite.mockRepo.EXPECT().ListRegions(gomock.Any()).Return(catalog.Regions, nil).Times(1)

	first, err := suite.service.ListRegions(suite.ctx)
	suite.Require().NoError(err)
	second, err := suite.service.ListRegions(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(first, second)
	suite.Len(second, 5)
}

func (suite *CatalogServiceTestSuite) TestCallersCannotCorruptTheCache() {
	suite.mockRepo.EXPECT().ListSDGs(gomock.Any()).Return(catalog.SDGs, nil).Times(1)

	sdgs, err := suite.service.ListSDGs(suite.ctx)
	suite.Require().NoError(err)
	sdgs[0].Name = "changed"

	again, err := suite.service.ListSDGs(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("No Poverty", again[0].Name)
}

func (suite *CatalogServiceTestSuite) TestInvalidateReloads() {
	suite.mockRepo.EXPECT().ListTypologies(gomock.Any()).Return(catalog.Typologies, nil).Times(2)

	_, err := suite.service.ListTypologies(suite.ctx)
	suite.Require().NoError(err)
	suite.service.Invalidate()
	_, err = suite.service.ListTypologies(suite.ctx)
	suite.Require().NoError(err)
}

func (suite *CatalogServiceTestSuite) TestLoadErrorsAreStorageErrors() {
	suite.mockRepo.EXPECT().ListRegions(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := suite.service.ListRegions(suite.ctx)
	suite.True(apperrors.IsStorage(err))
}

func (suite *CatalogServiceTestSuite) TestRequirementsGroupedByCategory() {
	suite.mockRepo.EXPECT().ListRequirements(gomock.Any()).Return(catalog.Requirements, nil)

	groups, err := suite.service.ListRequirements(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(groups, 3)
	suite.Equal(models.RequirementCategoryFunding, groups[0].Category)

	total := 0
	for _, g := range groups {
		for _, r := range g.Requirements {
			suite.Equal(g.Category, r.Category)
		}
		total += len(g.Requirements)
	}
	suite.Equal(len(catalog.Requirements), total)
}

func (suite *CatalogServiceTestSuite) TestCheckReferences() {
	suite.mockRepo.EXPECT().ListRegions(gomock.Any()).Return(catalog.Regions, nil).AnyTimes()
	suite.mockRepo.EXPECT().ListSDGs(gomock.Any()).Return(catalog.SDGs, nil).AnyTimes()
	suite.mockRepo.EXPECT().ListTypologies(gomock.Any()).Return(catalog.Typologies, nil).AnyTimes()
	suite.mockRepo.EXPECT().ListRequirements(gomock.Any()).Return(catalog.Requirements, nil).AnyTimes()

	suite.Run("known references", func() {
		p := &models.Project{
			RegionID:     1,
			SDGs:         []models.ProjectSDG{{SDGID: 17}},
			Typologies:   []models.ProjectTypology{{TypologyCode: "RESIDENTIAL"}},
			Requirements: []models.ProjectRequirement{{RequirementCode: "OTHER_CUSTOM"}},
		}
		verr := &apperrors.ValidationError{}
		suite.Require().NoError(suite.service.CheckReferences(suite.ctx, p, verr))
		suite.NoError(verr.OrNil())
		suite.Equal(models.RequirementCategoryOther, p.Requirements[0].Category)
	})

	suite.Run("unknown references", func() {
		p := &models.Project{
			RegionID:     6,
			SDGs:         []models.ProjectSDG{{SDGID: 18}},
			Typologies:   []models.ProjectTypology{{TypologyCode: "SPACEPORT"}},
			Requirements: []models.ProjectRequirement{{RequirementCode: "NOPE"}},
		}
		verr := &apperrors.ValidationError{}
		suite.Require().NoError(suite.service.CheckReferences(suite.ctx, p, verr))
		for _, field := range []string{"region_id", "sdgs", "typologies", "requirements"} {
			suite.True(verr.HasField(field), field)
		}
	})
}

// TestCatalogServiceTestSuite runs the test suite
func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
