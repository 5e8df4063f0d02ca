package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrAddParcelCommandIsNotConstructed = errors.New(
	"AddParcelCommand must be created via NewAddParcelCommand constructor",
)

// AddParcelCommand represents a request to register an incoming parcel at a
// pickup location. The tracking code must not collide with any parcel still
// awaiting pickup or in handling.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewAddParcelCommand(parcelID, code, locationID, nil, contact, "fragile", "op.bianchi")
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewAddParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type AddParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	trackingCode kernel.TrackingCode
	locationID   kernel.UUID
	courierID    *kernel.UUID
	contact      kernel.Contact
	notes        string
	actor        string

	guard guard.ConstructorGuard
}

// NewAddParcelCommand creates a command to register a parcel for pickup.
// Courier is optional; everything else must be a valid, constructed value.
// The actor identifies the operator performing the intake and is recorded
// on the resulting history event.
func NewAddParcelCommand(
	parcelID kernel.UUID,
	trackingCode kernel.TrackingCode,
	locationID kernel.UUID,
	courierID *kernel.UUID,
	contact kernel.Contact,
	notes string,
	actor string,
) (AddParcelCommand, error) {
	cmd := AddParcelCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTrackingCode(trackingCode),
		cmd.setLocationID(locationID),
		cmd.setCourierID(courierID),
		cmd.setContact(contact),
		cmd.setActor(actor),
	); err != nil {
		return AddParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddParcelCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c AddParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingCode returns the carrier tracking code of the parcel.
func (c AddParcelCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// LocationID returns the pickup location where the parcel is stored.
func (c AddParcelCommand) LocationID() kernel.UUID {
	return c.locationID
}

// CourierID returns the delivering courier, or nil when unknown.
func (c AddParcelCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// Contact returns the recipient contact details.
func (c AddParcelCommand) Contact() kernel.Contact {
	return c.contact
}

// Notes returns the optional free-text intake notes.
func (c AddParcelCommand) Notes() string {
	return c.notes
}

// Actor returns the operator performing the intake.
func (c AddParcelCommand) Actor() string {
	return c.actor
}

func (c *AddParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AddParcelCommand) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *AddParcelCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *AddParcelCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}

	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AddParcelCommand) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.contact = contact
	return nil
}

func (c *AddParcelCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
