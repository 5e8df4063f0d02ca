package queries

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler serves the audit trail projection.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for history queries.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the history query.
// An unknown parcel yields errs.ObjectNotFoundError rather than an empty
// trail, so callers can distinguish "no parcel" from "no events yet".
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var parcelCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM parcels WHERE id = ?`, query.ParcelID().Bytes()).
		Scan(&parcelCount).Error
	if err != nil {
		return nil, err
	}
	if parcelCount == 0 {
		return nil, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			actor,
			payload,
			occurred_at
		FROM history_events
		WHERE parcel_id = ?
		ORDER BY occurred_at, seq
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]GetParcelHistoryQueryResponse, 0)
	for rows.Next() {
		var event GetParcelHistoryQueryResponse
		var id uuid.UUID
		var occurredAt time.Time

		if err = rows.Scan(&id, &event.Type, &event.Actor, &event.Payload, &occurredAt); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		event.ID = eventID
		event.OccurredAt = occurredAt.UTC()
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
