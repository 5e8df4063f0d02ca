package parcelrepo

import (
	"context"
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/parcel"
	"pickup/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
// Rejects the insert with parcel.ErrDuplicateTrackingCode when another
// non-terminal parcel already carries the same tracking code.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var active int64
	err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("tracking_code = ? AND status IN ?", aggregate.TrackingCode().String(), activeStatuses()).
		Count(&active).Error
	if err != nil {
		return err
	}
	if active > 0 {
		return parcel.ErrDuplicateTrackingCode
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a parcel by ID with a FOR UPDATE row lock.
// Must run inside a transaction; the lock is held until it ends.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(ctx, id, true)
}

func (r *GormParcelRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ParcelDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByTrackingCode retrieves the non-terminal parcel carrying the
// given tracking code.
func (r *GormParcelRepository) GetActiveByTrackingCode(
	ctx context.Context,
	code kernel.TrackingCode,
) (*parcel.Parcel, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tracking_code = ? AND status IN ?", code.String(), activeStatuses()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAwaitingPickup retrieves all parcels in AwaitingPickup status,
// oldest status change first so the sweep visits the most urgent parcels
// before any mid-run failure.
func (r *GormParcelRepository) GetAllAwaitingPickup(ctx context.Context) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Order("status_changed_at").
		Find(&dtos, "status = ?", parcel.AwaitingPickup.String()).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

func activeStatuses() []string {
	return []string{parcel.AwaitingPickup.String(), parcel.InHandling.String()}
}
