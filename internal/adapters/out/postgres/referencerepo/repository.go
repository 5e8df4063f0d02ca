package referencerepo

import (
	"context"

	"pickup/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormReferenceRepository implements ports.ReferenceRepository using GORM.
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new GORM reference repository.
func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

// PickupLocationExists reports whether a pickup location row exists.
func (r *GormReferenceRepository) PickupLocationExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return r.exists(ctx, &PickupLocationDTO{}, id)
}

// CourierExists reports whether a courier row exists.
func (r *GormReferenceRepository) CourierExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return r.exists(ctx, &CourierDTO{}, id)
}

func (r *GormReferenceRepository) exists(ctx context.Context, model any, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ?", id.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
