// Package catalog holds the static reference data (regions, SDGs, typologies
// and requirement tags) and seeds it into the database.
package catalog

import (
	"context"
	"fmt"

	"atlas-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed upserts the reference catalog by natural key. It never deletes rows,
// so it is safe to run while readers are active and safe to run repeatedly.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		regions := cloneSlice(Regions)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
		}).Create(&regions).Error; err != nil {
			return fmt.Errorf("seed regions: %w", err)
		}

		sdgs := cloneSlice(SDGs)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "short_name", "color_hex", "description"}),
		}).Create(&sdgs).Error; err != nil {
			return fmt.Errorf("seed sdgs: %w", err)
		}

		typologies := cloneSlice(Typologies)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "display_order"}),
		}).Create(&typologies).Error; err != nil {
			return fmt.Errorf("seed typologies: %w", err)
		}

		requirements := cloneSlice(Requirements)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "display_order"}),
		}).Create(&requirements).Error; err != nil {
			return fmt.Errorf("seed requirements: %w", err)
		}

		return nil
	})
}

// RequirementCategoryOf returns the category of a requirement code
func RequirementCategoryOf(code string) (models.RequirementCategory, bool) {
	for _, r := range Requirements {
		if r.Code == code {
			return r.Category, true
		}
	}
	return "", false
}

// cloneSlice keeps gorm from writing back into the package-level seed data
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
