package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"atlas-backend/internal/catalog"
	"atlas-backend/internal/database/models"
	"atlas-backend/internal/mocks"
	"atlas-backend/internal/repository"
	"atlas-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnalyticsServiceTestSuite defines the test suite for AnalyticsService and ExportService
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockProjectRepositoryInterface
	mockCatalog *mocks.MockCatalogServiceInterface
	analytics   *service.AnalyticsService
	export      *service.ExportService
	ctx         context.Context
}

// SetupTest sets up the test suite
func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockCatalog = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	suite.analytics = service.NewAnalyticsService(suite.mockRepo, suite.mockCatalog)
	suite.export = service.NewExportService(suite.mockRepo)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectPages makes the repository hand pages to the aggregation callback in order
func (suite *AnalyticsServiceTestSuite) expectPages(filter any, pages ...[]models.Project) *gomock.Call {
	return suite.mockRepo.EXPECT().QueryInBatches(gomock.Any(), filter, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.ProjectFilter, fn func([]models.Project) error) error {
			for _, page := range pages {
				if err := fn(page); err != nil {
					return err
				}
			}
			return nil
		})
}

func publishedProjects() []models.Project {
	published := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	return []models.Project{
		{
			ReferenceCode: "ATLAS-2025-000001", Name: "Solar Schools", OrganizationName: "Green Energy Trust",
			City: "Accra", Country: "Ghana", RegionID: 5, Region: &catalog.Regions[4],
			Latitude: ptr(5.6037), Longitude: ptr(-0.187),
			FundingNeeded:        100000,
			FundingSpent:         ptr(25000.0),
			SDGs:                 []models.ProjectSDG{{SDGID: 7}, {SDGID: 11}},
			ImplementationStatus: models.ImplementationStatusInProgress,
			WorkflowStatus:       models.WorkflowStatusApproved,
			SubmissionDate:       published.Add(-48 * time.Hour),
			PublishedDate:        &published,
		},
		{
			ReferenceCode: "ATLAS-2025-000002", Name: "Water, \"Clean\" & Safe", OrganizationName: "green energy trust",
			City: "accra", Country: "Ghana", RegionID: 5,
			FundingNeeded:        50000,
			SDGs:                 []models.ProjectSDG{{SDGID: 6}},
			ImplementationStatus: models.ImplementationStatusPlanned,
			WorkflowStatus:       models.WorkflowStatusApproved,
			SubmissionDate:       published.Add(-24 * time.Hour),
		},
		{
			ReferenceCode: "ATLAS-2025-000003", Name: "Harbour Greening", OrganizationName: "Blue Coast",
			City: "Lisbon", Country: "Portugal", RegionID: 1,
			FundingNeeded:        30000,
			FundingSpent:         ptr(30000.0),
			SDGs:                 []models.ProjectSDG{{SDGID: 11}, {SDGID: 14}},
			ImplementationStatus: models.ImplementationStatusImplemented,
			WorkflowStatus:       models.WorkflowStatusApproved,
			SubmissionDate:       published,
		},
	}
}

func (suite *AnalyticsServiceTestSuite) TestKPIs() {
	filter := repository.ProjectFilter{}
	projects := publishedProjects()
	suite.expectPages(filter, projects[:2], projects[2:])

	kpis, err := suite.analytics.KPIs(suite.ctx, filter)
	suite.Require().NoError(err)
	suite.Equal(3, kpis.TotalProjects)
	suite.Equal(2, kpis.Cities)
	suite.Equal(2, kpis.Countries)
	suite.InDelta(180000, kpis.FundingNeeded, 0.001)
	suite.InDelta(55000, kpis.FundingSpent, 0.001)
}

func (suite *AnalyticsServiceTestSuite) TestSDGDistributionListsEveryGoal() {
	suite.mockCatalog.EXPECT().ListSDGs(gomock.Any()).Return(catalog.SDGs, nil)
	suite.expectPages(gomock.Any(), publishedProjects())

	counts, err := suite.analytics.SDGDistribution(suite.ctx, repository.ProjectFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(counts, 17)
	byID := map[int]int{}
	for _, c := range counts {
		byID[c.SDGID] = c.Projects
	}
	suite.Equal(2, byID[11])
	suite.Equal(1, byID[7])
	suite.Equal(0, byID[1])
	suite.Equal("#FCC30B", counts[6].ColorHex)
}

func (suite *AnalyticsServiceTestSuite) TestFundingByRegion() {
	suite.mockCatalog.EXPECT().ListRegions(gomock.Any()).Return(catalog.Regions, nil)
	projects := publishedProjects()
	suite.expectPages(gomock.Any(), projects[:1], projects[1:])

	regions, err := suite.analytics.FundingByRegion(suite.ctx, repository.ProjectFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(regions, 5)

	africa := regions[4]
	suite.Equal("SECTION_V", africa.Code)
	suite.Equal(2, africa.Projects)
	suite.InDelta(150000, africa.FundingNeeded, 0.001)
	suite.InDelta(75000, africa.AverageNeeded, 0.001)
	suite.Equal(0, regions[2].Projects)
	suite.Zero(regions[2].AverageNeeded)
}

func (suite *AnalyticsServiceTestSuite) TestAdminMetrics() {
	suite.mockRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[models.WorkflowStatus]int64{
		models.WorkflowStatusSubmitted:        3,
		models.WorkflowStatusInReview:         2,
		models.WorkflowStatusChangesRequested: 1,
		models.WorkflowStatusApproved:         9,
		models.WorkflowStatusRejected:         4,
	}, nil)
	suite.mockRepo.EXPECT().CountTransitionsSince(gomock.Any(), models.WorkflowStatusApproved, gomock.Any()).Return(int64(5), nil)
	suite.mockRepo.EXPECT().CountTransitionsSince(gomock.Any(), models.WorkflowStatusRejected, gomock.Any()).Return(int64(1), nil)
	suite.mockRepo.EXPECT().ReviewDurations(gomock.Any()).Return([]time.Duration{2 * time.Hour, 4 * time.Hour}, nil)

	metrics, err := suite.analytics.AdminMetrics(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(5), metrics.PendingReviews)
	suite.Equal(int64(5), metrics.ApprovedThisMonth)
	suite.Equal(int64(1), metrics.RejectedThisMonth)
	suite.Equal(int64(9), metrics.TotalPublished)
	suite.InDelta(3.0, metrics.AverageReviewHours, 0.0001)
}

func (suite *AnalyticsServiceTestSuite) TestAdminMetricsWithoutReviews() {
	suite.mockRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[models.WorkflowStatus]int64{}, nil)
	suite.mockRepo.EXPECT().CountTransitionsSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(2)
	suite.mockRepo.EXPECT().ReviewDurations(gomock.Any()).Return(nil, nil)

	metrics, err := suite.analytics.AdminMetrics(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(metrics.AverageReviewHours)
}

func (suite *AnalyticsServiceTestSuite) TestUniqueValuesFoldCase() {
	suite.expectPages(repository.ProjectFilter{}, publishedProjects()).Times(2)

	cities, err := suite.analytics.UniqueCities(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"Accra", "Lisbon"}, cities)

	orgs, err := suite.analytics.UniqueOrganizations(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"Blue Coast", "Green Energy Trust"}, orgs)
}

func (suite *AnalyticsServiceTestSuite) TestKPIsCountBeyondResultCap() {
	const total = 10250
	pages := make([][]models.Project, 0, total/500+1)
	for start := 0; start < total; start += 500 {
		n := min(500, total-start)
		page := make([]models.Project, n)
		for i := range page {
			page[i] = models.Project{City: "Accra", Country: "Ghana", RegionID: 5, FundingNeeded: 10}
		}
		pages = append(pages, page)
	}
	suite.expectPages(gomock.Any(), pages...)

	kpis, err := suite.analytics.KPIs(suite.ctx, repository.ProjectFilter{})
	suite.Require().NoError(err)
	suite.Equal(total, kpis.TotalProjects)
	suite.InDelta(float64(total*10), kpis.FundingNeeded, 0.001)
}

func (suite *AnalyticsServiceTestSuite) TestQueryErrorsPropagate() {
	suite.mockRepo.EXPECT().QueryInBatches(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	_, err := suite.analytics.KPIs(suite.ctx, repository.ProjectFilter{})
	suite.Error(err)
}

func (suite *AnalyticsServiceTestSuite) TestExportCSV() {
	suite.mockRepo.EXPECT().Query(gomock.Any(), gomock.Any()).Return(publishedProjects(), nil)

	var buf bytes.Buffer
	suite.Require().NoError(suite.export.ExportCSV(suite.ctx, repository.ProjectFilter{}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	suite.Equal("reference_code", rows[0][0])
	suite.Len(rows[1], len(rows[0]))

	first := rows[1]
	suite.Equal("ATLAS-2025-000001", first[0])
	suite.Equal("Section V - Africa", first[5])
	suite.Equal("5.6037", first[6])
	suite.Equal("7;11", first[8])
	suite.Equal("100000.00", first[10])
	suite.Equal("25000.00", first[11])
	suite.Equal("2025-03-12T10:00:00Z", first[14])

	second := rows[2]
	suite.Equal("Water, \"Clean\" & Safe", second[1])
	suite.Equal("", second[6])
	suite.Equal("", second[11])
	suite.Equal("", second[14])
}

func (suite *AnalyticsServiceTestSuite) TestExportCSVWithNoProjects() {
	suite.mockRepo.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, nil)

	var buf bytes.Buffer
	suite.Require().NoError(suite.export.ExportCSV(suite.ctx, repository.ProjectFilter{}, &buf))
	rows, err := csv.NewReader(&buf).ReadAll()
	suite.Require().NoError(err)
	suite.Len(rows, 1)
}

// TestAnalyticsServiceTestSuite runs the test suite
func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

