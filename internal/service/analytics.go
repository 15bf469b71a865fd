package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"atlas-backend/internal/database/models"
	"atlas-backend/internal/repository"
)

// KPIs are the headline numbers of the public dashboard
type KPIs struct {
	TotalProjects int     `json:"total_projects"`
	Cities        int     `json:"cities"`
	Countries     int     `json:"countries"`
	FundingNeeded float64 `json:"funding_needed"`
	FundingSpent  float64 `json:"funding_spent"`
}

// SDGCount is the number of projects contributing to one SDG
type SDGCount struct {
	SDGID     int    `json:"sdg_id"`
	Number    int    `json:"number"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	ColorHex  string `json:"color_hex"`
	Projects  int    `json:"projects"`
}

// RegionFunding aggregates funding per region
type RegionFunding struct {
	RegionID      int     `json:"region_id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Projects      int     `json:"projects"`
	FundingNeeded float64 `json:"funding_needed"`
	FundingSpent  float64 `json:"funding_spent"`
	AverageNeeded float64 `json:"average_needed"`
}

// AdminMetrics summarises the review workload
type AdminMetrics struct {
	PendingReviews     int64   `json:"pending_reviews"`
	ApprovedThisMonth  int64   `json:"approved_this_month"`
	RejectedThisMonth  int64   `json:"rejected_this_month"`
	TotalPublished     int64   `json:"total_published"`
	AverageReviewHours float64 `json:"average_review_hours"`
}

// AnalyticsService computes dashboard statistics. Figures are folded over the
// filtered projects page by page, so every storage backend reports the same
// numbers and totals are not capped at the query result limit.
type AnalyticsService struct {
	repo    repository.ProjectRepositoryInterface
	catalog CatalogServiceInterface
	now     func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repository.ProjectRepositoryInterface, catalog CatalogServiceInterface) *AnalyticsService {
	return &AnalyticsService{repo: repo, catalog: catalog, now: time.Now}
}

// KPIs computes the dashboard headline numbers for filter
func (s *AnalyticsService) KPIs(ctx context.Context, filter repository.ProjectFilter) (*KPIs, error) {
	cities := map[string]bool{}
	countries := map[string]bool{}
	kpis := &KPIs{}
	err := s.repo.QueryInBatches(ctx, filter, func(projects []models.Project) error {
		kpis.TotalProjects += len(projects)
		for _, p := range projects {
			cities[models.NormalizeKey(p.City)+"\x1f"+models.NormalizeKey(p.Country)] = true
			countries[models.NormalizeKey(p.Country)] = true
			kpis.FundingNeeded += p.FundingNeeded
			if p.FundingSpent != nil {
				kpis.FundingSpent += *p.FundingSpent
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	kpis.Cities = len(cities)
	kpis.Countries = len(countries)
	return kpis, nil
}

// SDGDistribution counts projects per SDG. All SDGs are listed, in number order.
func (s *AnalyticsService) SDGDistribution(ctx context.Context, filter repository.ProjectFilter) ([]SDGCount, error) {
	sdgs, err := s.catalog.ListSDGs(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[int]int{}
	err = s.repo.QueryInBatches(ctx, filter, func(projects []models.Project) error {
		for _, p := range projects {
			for _, id := range p.SDGIDs() {
				counts[id]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]SDGCount, 0, len(sdgs))
	for _, sdg := range sdgs {
		out = append(out, SDGCount{
			SDGID:     sdg.ID,
			Number:    sdg.Number,
			Name:      sdg.Name,
			ShortName: sdg.ShortName,
			ColorHex:  sdg.ColorHex,
			Projects:  counts[sdg.ID],
		})
	}
	return out, nil
}

// FundingByRegion aggregates funding per region, in region order
func (s *AnalyticsService) FundingByRegion(ctx context.Context, filter repository.ProjectFilter) ([]RegionFunding, error) {
	regions, err := s.catalog.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	byRegion := map[int]*RegionFunding{}
	out := make([]RegionFunding, len(regions))
	for i, r := range regions {
		out[i] = RegionFunding{RegionID: r.ID, Code: r.Code, Name: r.Name}
		byRegion[r.ID] = &out[i]
	}
	err = s.repo.QueryInBatches(ctx, filter, func(projects []models.Project) error {
		for _, p := range projects {
			agg, ok := byRegion[p.RegionID]
			if !ok {
				continue
			}
			agg.Projects++
			agg.FundingNeeded += p.FundingNeeded
			if p.FundingSpent != nil {
				agg.FundingSpent += *p.FundingSpent
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Projects > 0 {
			out[i].AverageNeeded = out[i].FundingNeeded / float64(out[i].Projects)
		}
	}
	return out, nil
}

// AdminMetrics summarises the review queue and this month's decisions
func (s *AnalyticsService) AdminMetrics(ctx context.Context) (*AdminMetrics, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	approved, err := s.repo.CountTransitionsSince(ctx, models.WorkflowStatusApproved, monthStart)
	if err != nil {
		return nil, err
	}
	rejected, err := s.repo.CountTransitionsSince(ctx, models.WorkflowStatusRejected, monthStart)
	if err != nil {
		return nil, err
	}
	durations, err := s.repo.ReviewDurations(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &AdminMetrics{
		PendingReviews:    counts[models.WorkflowStatusSubmitted] + counts[models.WorkflowStatusInReview],
		ApprovedThisMonth: approved,
		RejectedThisMonth: rejected,
		TotalPublished:    counts[models.WorkflowStatusApproved],
	}
	if len(durations) > 0 {
		var total time.Duration
		for _, d := range durations {
			total += d
		}
		metrics.AverageReviewHours = total.Hours() / float64(len(durations))
	}
	return metrics, nil
}

// UniqueCities lists the distinct cities of published projects, sorted
func (s *AnalyticsService) UniqueCities(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(p models.Project) string { return p.City })
}

// UniqueOrganizations lists the distinct organizations of published projects, sorted
func (s *AnalyticsService) UniqueOrganizations(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(p models.Project) string { return p.OrganizationName })
}

// distinct keeps the first spelling seen of each case-insensitive value
func (s *AnalyticsService) distinct(ctx context.Context, field func(models.Project) string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	err := s.repo.QueryInBatches(ctx, repository.ProjectFilter{}, func(projects []models.Project) error {
		for _, p := range projects {
			value := strings.TrimSpace(field(p))
			key := models.NormalizeKey(value)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out, nil
}
