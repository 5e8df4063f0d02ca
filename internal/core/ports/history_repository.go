package ports

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the history ledger.
// Events are append only; there is no update or delete.
type HistoryRepository interface {
	// Add appends an event to the parcel's history.
	Add(ctx context.Context, event *history.Event) error

	// HasEventSince reports whether an event of the given type was recorded
	// for the parcel at or after the given instant. Used to avoid repeating
	// storage warnings within the same storage period.
	HasEventSince(ctx context.Context, parcelID kernel.UUID, eventType history.EventType, since time.Time) (bool, error)
}
