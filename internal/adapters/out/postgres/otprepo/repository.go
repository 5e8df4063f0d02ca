package otprepo

import (
	"context"
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/otp"
	"pickup/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOtpRepository implements ports.OtpRepository using GORM.
type GormOtpRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOtpRepository creates a new GORM OTP repository.
func NewGormOtpRepository(db *gorm.DB, tracker aggregateTracker) *GormOtpRepository {
	return &GormOtpRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly issued OTP to the database.
func (r *GormOtpRepository) Add(ctx context.Context, aggregate *otp.Otp) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing OTP, typically after consumption.
func (r *GormOtpRepository) Update(ctx context.Context, aggregate *otp.Otp) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OtpDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByParcelAndCode retrieves the most recently issued OTP for the parcel
// carrying the given code, locked FOR UPDATE. The lock serializes two
// confirmations racing on the same code: the loser re-reads the consumed row.
// Must run inside a transaction.
func (r *GormOtpRepository) GetByParcelAndCode(
	ctx context.Context,
	parcelID kernel.UUID,
	code string,
) (*otp.Otp, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto OtpDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("issued_at DESC").
		First(&dto, "parcel_id = ? AND code = ?", parcelID.Bytes(), code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("otp", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
