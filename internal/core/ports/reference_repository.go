package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
)

// ReferenceRepository provides read access to the pickup location and
// courier reference tables. Both tables are maintained outside the
// pickup core, so only existence checks are exposed.
type ReferenceRepository interface {
	// PickupLocationExists reports whether a pickup location with the
	// given identifier is registered.
	PickupLocationExists(ctx context.Context, id kernel.UUID) (bool, error)

	// CourierExists reports whether a courier with the given identifier
	// is registered.
	CourierExists(ctx context.Context, id kernel.UUID) (bool, error)
}
