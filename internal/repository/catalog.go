package repository

import (
	"context"

	"atlas-backend/internal/database/models"

	"gorm.io/gorm"
)

// CatalogRepository reads the reference catalog
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListRegions returns all regions ordered by id
func (r *CatalogRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	err := r.db.WithContext(ctx).Order("id").Find(&regions).Error
	return regions, err
}

// ListSDGs returns all SDGs ordered by number
func (r *CatalogRepository) ListSDGs(ctx context.Context) ([]models.SDG, error) {
	var sdgs []models.SDG
	err := r.db.WithContext(ctx).Order("number").Find(&sdgs).Error
	return sdgs, err
}

// ListTypologies returns all typologies in display order
func (r *CatalogRepository) ListTypologies(ctx context.Context) ([]models.Typology, error) {
	var typologies []models.Typology
	err := r.db.WithContext(ctx).Order("display_order, code").Find(&typologies).Error
	return typologies, err
}

// ListRequirements returns all requirement tags in display order
func (r *CatalogRepository) ListRequirements(ctx context.Context) ([]models.Requirement, error) {
	var requirements []models.Requirement
	err := r.db.WithContext(ctx).Order("display_order, code").Find(&requirements).Error
	return requirements, err
}
