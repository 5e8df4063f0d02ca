package parcel

import (
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel or RestoreParcel factory functions.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrDuplicateTrackingCode is returned when an intake is attempted for a
	// tracking code already held by an active (non-terminal) parcel.
	ErrDuplicateTrackingCode = errors.New("an active parcel with this tracking code already exists")
)

// Parcel is the aggregate root of the pickup core. It represents a physical
// package held at a pickup location, from intake until either the customer
// collects it (OTP-confirmed) or storage expires.
//
// Invariants:
//   - Identity, tracking code, pickup location and contact are always valid
//   - Status only changes through the transitions defined on Status
//   - StatusChangedAt always reflects the instant of the last transition;
//     the storage-expiration sweep measures dwell time from it
//   - Can only be created through NewParcel / RestoreParcel
type Parcel struct {
	id           kernel.UUID
	trackingCode kernel.TrackingCode
	status       Status

	// courierID references the courier that delivered the parcel (optional
	// reference data, read-only for this core)
	courierID *kernel.UUID

	// locationID references the pickup location holding the parcel
	locationID kernel.UUID

	contact kernel.Contact
	notes   string

	createdAt       time.Time
	statusChangedAt time.Time

	isConstructed bool
}

// NewParcel creates a parcel at intake time with status AwaitingPickup.
// The caller supplies the intake instant explicitly so the aggregate stays a
// pure function of its inputs (no wall-clock reads inside the domain).
func NewParcel(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	locationID kernel.UUID,
	courierID *kernel.UUID,
	contact kernel.Contact,
	notes string,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:          AwaitingPickup,
		notes:           notes,
		createdAt:       now.UTC(),
		statusChangedAt: now.UTC(),
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setLocationID(locationID),
		p.setCourierID(courierID),
		p.setContact(contact),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence, including its current
// status and timestamps. It applies the same field validation as NewParcel.
func RestoreParcel(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	locationID kernel.UUID,
	courierID *kernel.UUID,
	contact kernel.Contact,
	notes string,
	status Status,
	createdAt time.Time,
	statusChangedAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		notes:           notes,
		createdAt:       createdAt,
		statusChangedAt: statusChangedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setLocationID(locationID),
		p.setCourierID(courierID),
		p.setContact(contact),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.status = status
	return p, nil
}

// Validate ensures the Parcel was created through a factory function.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the carrier tracking code.
func (p *Parcel) TrackingCode() kernel.TrackingCode {
	return p.trackingCode
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Courier returns the delivering courier's ID, or nil when unknown.
func (p *Parcel) Courier() *kernel.UUID {
	return p.courierID
}

// PickupLocation returns the ID of the location holding the parcel.
func (p *Parcel) PickupLocation() kernel.UUID {
	return p.locationID
}

// Contact returns the customer contact details.
func (p *Parcel) Contact() kernel.Contact {
	return p.contact
}

// Notes returns the free-text operator notes.
func (p *Parcel) Notes() string {
	return p.notes
}

// CreatedAt returns the intake instant.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// StatusChangedAt returns the instant of the last status transition.
func (p *Parcel) StatusChangedAt() time.Time {
	return p.statusChangedAt
}

// StorageAge returns how long the parcel has been in its current status.
// The expiration sweep uses it to decide warnings and expiry.
func (p *Parcel) StorageAge(now time.Time) time.Duration {
	return now.Sub(p.statusChangedAt)
}

// PickUp marks the parcel as collected by the customer.
// Only the OTP confirmation flow calls this; there is no generic set-status.
func (p *Parcel) PickUp(now time.Time) error {
	newStatus, err := p.status.PickUp()
	if err != nil {
		return err
	}

	p.applyStatus(newStatus, now)
	return nil
}

// Expire marks the parcel as storage-expired.
// Only the storage-expiration sweep calls this.
func (p *Parcel) Expire(now time.Time) error {
	newStatus, err := p.status.Expire()
	if err != nil {
		return err
	}

	p.applyStatus(newStatus, now)
	return nil
}

// FlagProblem moves the parcel under operator handling.
func (p *Parcel) FlagProblem(now time.Time) error {
	newStatus, err := p.status.FlagProblem()
	if err != nil {
		return err
	}

	p.applyStatus(newStatus, now)
	return nil
}

// Resume returns a handled parcel to the awaiting-pickup state.
// The storage clock restarts from now.
func (p *Parcel) Resume(now time.Time) error {
	newStatus, err := p.status.Resume()
	if err != nil {
		return err
	}

	p.applyStatus(newStatus, now)
	return nil
}

func (p *Parcel) applyStatus(newStatus Status, now time.Time) {
	p.status = newStatus
	p.statusChangedAt = now.UTC()
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	p.locationID = locationID
	return nil
}

func (p *Parcel) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	p.courierID = courierID
	return nil
}

func (p *Parcel) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	p.contact = contact
	return nil
}
