// Package ports defines repository and outbound interfaces for the pickup domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and querying parcels
// based on their status and tracking code.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	// Returns parcel.ErrDuplicateTrackingCode if another non-terminal parcel
	// already carries the same tracking code.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate retrieves a parcel aggregate by its identifier,
	// locking the underlying row until the surrounding transaction ends.
	// Used by pickup confirmation to serialize concurrent attempts.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetActiveByTrackingCode retrieves the non-terminal parcel carrying
	// the given tracking code, if any.
	GetActiveByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Parcel, error)

	// GetAllAwaitingPickup retrieves all parcels currently in storage
	// awaiting customer pickup. Used by the storage expiration sweep.
	GetAllAwaitingPickup(ctx context.Context) ([]*parcel.Parcel, error)
}
