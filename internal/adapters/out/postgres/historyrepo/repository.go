package historyrepo

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends an event to the ledger. The seq column is assigned by the
// database on insert.
func (r *GormHistoryRepository) Add(ctx context.Context, event *history.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(event)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// HasEventSince reports whether an event of the given type exists for the
// parcel at or after the given instant.
func (r *GormHistoryRepository) HasEventSince(
	ctx context.Context,
	parcelID kernel.UUID,
	eventType history.EventType,
	since time.Time,
) (bool, error) {
	if err := parcelID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("parcel_id = ? AND event_type = ? AND occurred_at >= ?",
			parcelID.Bytes(), eventType.String(), since).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
