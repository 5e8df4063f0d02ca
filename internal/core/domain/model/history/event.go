// Package history provides the immutable audit record written for every
// state-affecting action on a parcel. Events are append-only: no update or
// delete operation exists anywhere in the core, and readers see them
// total-ordered per parcel by timestamp and insertion order.
package history

import (
	"errors"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

// EventType identifies what happened to a parcel.
type EventType string

// Event types written by the pickup core.
const (
	EventCreated            EventType = "created"
	EventOtpIssued          EventType = "otp_issued"
	EventOtpConfirmed       EventType = "otp_confirmed"
	EventStorageWarning     EventType = "notify_storage_warning"
	EventNotificationFailed EventType = "notification_failed"
	EventStatusExpired      EventType = "status_expired"
	EventReportLinked       EventType = "report_linked"
	EventProblemFlagged     EventType = "problem_flagged"
	EventProblemResolved    EventType = "problem_resolved"
)

func getValidEventTypes() map[EventType]struct{} {
	return map[EventType]struct{}{
		EventCreated:            {},
		EventOtpIssued:          {},
		EventOtpConfirmed:       {},
		EventStorageWarning:     {},
		EventNotificationFailed: {},
		EventStatusExpired:      {},
		EventReportLinked:       {},
		EventProblemFlagged:     {},
		EventProblemResolved:    {},
	}
}

// Validate checks the event type against the closed set above.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"event type is invalid",
			fmt.Errorf("%q is not a valid event type", string(t)),
		)
	}
	return nil
}

// String returns the wire identifier of the event type.
func (t EventType) String() string {
	return string(t)
}

// ErrEventIsNotConstructed is returned when an Event was not created through NewEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is a single parcel-scoped audit record. The payload is an opaque
// kind-specific value persisted alongside the type; the core never inspects
// payloads after writing them.
type Event struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	eventType  EventType
	actor      string
	payload    map[string]any
	occurredAt time.Time

	isConstructed bool
}

// NewEvent creates an audit event. Actor identifies who triggered the change
// (operator login, "system" for the sweep); it is required so the trail never
// depends on ambient session state. A nil payload is allowed.
func NewEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	eventType EventType,
	actor string,
	payload map[string]any,
	occurredAt time.Time,
) (*Event, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate(), eventType.Validate()); err != nil {
		return nil, err
	}

	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	return &Event{
		id:            id,
		parcelID:      parcelID,
		eventType:     eventType,
		actor:         actor,
		payload:       payload,
		occurredAt:    occurredAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	eventType EventType,
	actor string,
	payload map[string]any,
	occurredAt time.Time,
) (*Event, error) {
	return NewEvent(id, parcelID, eventType, actor, payload, occurredAt)
}

// Validate ensures the Event was created through NewEvent.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event identity.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identity of the parcel the event belongs to.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Type returns the event type.
func (e *Event) Type() EventType {
	return e.eventType
}

// Actor returns who triggered the recorded action.
func (e *Event) Actor() string {
	return e.actor
}

// Payload returns the opaque kind-specific payload, possibly nil.
func (e *Event) Payload() map[string]any {
	return e.payload
}

// OccurredAt returns the instant the recorded action happened.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}
