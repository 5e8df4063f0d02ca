// Package queries contains read-only projections over the pickup store.
// Query handlers bypass the domain aggregates and read with raw SQL, the
// write side never shares these code paths (CQRS).
package queries

import (
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/guard"
)

var ErrGetParcelDetailsQueryIsNotConstructed = errors.New(
	"GetParcelDetailsQuery must be created via NewGetParcelDetailsQuery constructor",
)

// GetParcelDetailsQuery retrieves one parcel with its pickup location and
// courier names resolved from the reference tables.
type GetParcelDetailsQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelDetailsQuery creates a query for a single parcel projection.
func NewGetParcelDetailsQuery(parcelID kernel.UUID) (GetParcelDetailsQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelDetailsQuery{}, err
	}

	return GetParcelDetailsQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelDetailsQueryIsNotConstructed)
}

// ParcelID returns the parcel being projected.
func (q GetParcelDetailsQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetParcelDetailsQueryResponse is the flattened parcel projection served to
// operator dashboards.
type GetParcelDetailsQueryResponse struct {
	ID              kernel.UUID
	TrackingCode    string
	Status          string
	LocationName    string
	CourierName     string
	ContactName     string
	ContactPhone    string
	ContactEmail    string
	Notes           string
	CreatedAt       time.Time
	StatusChangedAt time.Time
}
