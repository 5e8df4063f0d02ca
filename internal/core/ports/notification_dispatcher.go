package ports

import (
	"context"
	"errors"

	"pickup/internal/core/domain/model/kernel"
)

// ErrNotificationDelivery indicates that a notification could not be
// handed to the delivery channel. The triggering business operation is
// expected to proceed and record the failure in the parcel's history.
var ErrNotificationDelivery = errors.New("notification could not be delivered")

// Notification is an outbound message about a parcel, addressed to the
// recipient contact stored on the parcel.
type Notification struct {
	ParcelID     kernel.UUID
	TrackingCode string
	Kind         string
	Recipient    string
	Message      string
}

// NotificationDispatcher sends notifications to customers over an
// external channel. Implementations must wrap transport failures in
// ErrNotificationDelivery.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification Notification) error
}
