package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/repository"

	"github.com/patrickmn/go-cache"
)

const (
	regionsCacheKey      = "catalog:regions"
	sdgsCacheKey         = "catalog:sdgs"
	typologiesCacheKey   = "catalog:typologies"
	requirementsCacheKey = "catalog:requirements"
)

// RequirementGroup is the requirement tags of one category
type RequirementGroup struct {
	Category     models.RequirementCategory `json:"category"`
	Requirements []models.Requirement       `json:"requirements"`
}

// CatalogService serves the reference catalog from an in-process cache
type CatalogService struct {
	repo  repository.CatalogRepositoryInterface
	cache *cache.Cache
}

// NewCatalogService creates a catalog service. The catalog only changes when
// it is re-seeded, so entries live for ttl.
func NewCatalogService(repo repository.CatalogRepositoryInterface, ttl time.Duration) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Invalidate drops every cached list. Call after seeding.
func (s *CatalogService) Invalidate() {
	s.cache.Flush()
}

// ListRegions returns all regions
func (s *CatalogService) ListRegions(ctx context.Context) ([]models.Region, error) {
	return cached(s, regionsCacheKey, func() ([]models.Region, error) { return s.repo.ListRegions(ctx) })
}

// ListSDGs returns the 17 SDGs ordered by number
func (s *CatalogService) ListSDGs(ctx context.Context) ([]models.SDG, error) {
	return cached(s, sdgsCacheKey, func() ([]models.SDG, error) { return s.repo.ListSDGs(ctx) })
}

// ListTypologies returns all typologies in display order
func (s *CatalogService) ListTypologies(ctx context.Context) ([]models.Typology, error) {
	return cached(s, typologiesCacheKey, func() ([]models.Typology, error) { return s.repo.ListTypologies(ctx) })
}

// ListRequirements returns requirement tags grouped by category. Groups keep
// the order in which categories first appear in display order.
func (s *CatalogService) ListRequirements(ctx context.Context) ([]RequirementGroup, error) {
	requirements, err := cached(s, requirementsCacheKey, func() ([]models.Requirement, error) { return s.repo.ListRequirements(ctx) })
	if err != nil {
		return nil, err
	}
	var groups []RequirementGroup
	index := map[models.RequirementCategory]int{}
	for _, r := range requirements {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, RequirementGroup{Category: r.Category})
		}
		groups[i].Requirements = append(groups[i].Requirements, r)
	}
	return groups, nil
}

// CheckReferences adds a violation to verr for every catalog id or code on p
// that does not exist. Requirement categories on p are filled in from the
// catalog.
func (s *CatalogService) CheckReferences(ctx context.Context, p *models.Project, verr *apperrors.ValidationError) error {
	regions, err := s.ListRegions(ctx)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(regions, func(r models.Region) bool { return r.ID == p.RegionID }) {
		verr.Add("region_id", fmt.Sprintf("unknown region %d", p.RegionID))
	}

	sdgs, err := s.ListSDGs(ctx)
	if err != nil {
		return err
	}
	var unknownSDGs []int
	for _, id := range p.SDGIDs() {
		if !slices.ContainsFunc(sdgs, func(sdg models.SDG) bool { return sdg.ID == id }) {
			unknownSDGs = append(unknownSDGs, id)
		}
	}
	if len(unknownSDGs) > 0 {
		verr.Add("sdgs", fmt.Sprintf("unknown SDG ids %v", unknownSDGs))
	}

	typologies, err := s.ListTypologies(ctx)
	if err != nil {
		return err
	}
	var unknownTypologies []string
	for _, t := range p.Typologies {
		if !slices.ContainsFunc(typologies, func(c models.Typology) bool { return c.Code == t.TypologyCode }) {
			unknownTypologies = append(unknownTypologies, t.TypologyCode)
		}
	}
	if len(unknownTypologies) > 0 {
		verr.Add("typologies", fmt.Sprintf("unknown typology codes %v", unknownTypologies))
	}

	requirements, err := cached(s, requirementsCacheKey, func() ([]models.Requirement, error) { return s.repo.ListRequirements(ctx) })
	if err != nil {
		return err
	}
	var unknownRequirements []string
	for i, r := range p.Requirements {
		at := slices.IndexFunc(requirements, func(c models.Requirement) bool { return c.Code == r.RequirementCode })
		if at < 0 {
			unknownRequirements = append(unknownRequirements, r.RequirementCode)
			continue
		}
		p.Requirements[i].Category = requirements[at].Category
	}
	if len(unknownRequirements) > 0 {
		verr.Add("requirements", fmt.Sprintf("unknown requirement codes %v", unknownRequirements))
	}
	return nil
}

// cached returns a copy of the list stored under key, loading it on a miss
func cached[T any](s *CatalogService, key string, load func() ([]T, error)) ([]T, error) {
	if v, ok := s.cache.Get(key); ok {
		return slices.Clone(v.([]T)), nil
	}
	items, err := load()
	if err != nil {
		return nil, apperrors.NewStorageError("load "+key, err)
	}
	s.cache.SetDefault(key, items)
	return slices.Clone(items), nil
}
