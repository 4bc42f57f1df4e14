package assets

import (
	"context"
	"errors"

	"asset-audit/core/apperror"
	"asset-audit/core/reconcile"

	"gorm.io/gorm"
)

// lookupBatchSize keeps IN clauses under the bind variable limits of every driver.
const lookupBatchSize = 500

// Repository reads the registry table.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a registry repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

var _ reconcile.Registry = (*Repository)(nil)

func (r *Repository) FindByCode(ctx context.Context, code string) (*reconcile.Asset, error) {
	var row Asset
	err := r.db.WithContext(ctx).Where("code = ?", code).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("asset %s not found", code)
	}
	if err != nil {
		return nil, apperror.Dependency("find asset", err)
	}
	asset := row.ToReconcile()
	return &asset, nil
}

func (r *Repository) FindByLocation(ctx context.Context, location string) ([]reconcile.Asset, error) {
	var rows []Asset
	if err := r.db.WithContext(ctx).Where("location = ?", location).Order("code").Find(&rows).Error; err != nil {
		return nil, apperror.Dependency("find assets by location", err)
	}
	return toReconcile(rows), nil
}

func (r *Repository) FindByCodes(ctx context.Context, codes []string) ([]reconcile.Asset, error) {
	out := make([]reconcile.Asset, 0, len(codes))
	for start := 0; start < len(codes); start += lookupBatchSize {
		end := min(start+lookupBatchSize, len(codes))

		var rows []Asset
		if err := r.db.WithContext(ctx).Where("code IN ?", codes[start:end]).Find(&rows).Error; err != nil {
			return nil, apperror.Dependency("find assets by codes", err)
		}
		out = append(out, toReconcile(rows)...)
	}
	return out, nil
}

func toReconcile(rows []Asset) []reconcile.Asset {
	out := make([]reconcile.Asset, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToReconcile())
	}
	return out
}
