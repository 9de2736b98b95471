package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// LocationLookupRepository reads reference tables owned by other services
// (regions, base locations, service-code location mappings). Queries are
// raw selects; a missing row is a miss, not an error.
type LocationLookupRepository struct {
	db *gorm.DB
}

func NewLocationLookupRepository(db *gorm.DB) *LocationLookupRepository {
	return &LocationLookupRepository{db: db}
}

func (r *LocationLookupRepository) RegionIDByDescription(ctx context.Context, description string) (string, error) {
	return r.scalar(ctx,
		"SELECT region_id FROM regions WHERE LOWER(description) = LOWER(?) LIMIT 1",
		description, "region by description")
}

func (r *LocationLookupRepository) ParentBaseLocationID(ctx context.Context, baseLocationID string) (string, error) {
	return r.scalar(ctx,
		"SELECT parent_id FROM base_locations WHERE base_location_id = ? LIMIT 1",
		baseLocationID, "parent base location")
}

func (r *LocationLookupRepository) EpimmsIDForLocation(ctx context.Context, location string) (string, error) {
	return r.scalar(ctx,
		"SELECT epimms_id FROM location_mappings WHERE LOWER(base_location_name) = LOWER(?) LIMIT 1",
		location, "epimms id for location")
}

func (r *LocationLookupRepository) scalar(ctx context.Context, query, arg, what string) (string, error) {
	var value *string

	err := r.db.WithContext(ctx).Raw(query, arg).Scan(&value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("lookup %s %q: %w", what, arg, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}
