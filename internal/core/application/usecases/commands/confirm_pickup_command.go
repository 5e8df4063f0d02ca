package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents a customer handing over a pickup code at
// the counter. A successful confirmation is the only path to the PickedUp
// status.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	code     string
	actor    string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm a pickup with an OTP.
// The code is matched against issued OTPs inside the handler, not here;
// the command only requires it to be present.
func NewConfirmPickupCommand(parcelID kernel.UUID, code, actor string) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCode(code),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// ParcelID returns the parcel being picked up.
func (c ConfirmPickupCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Code returns the code presented by the customer.
func (c ConfirmPickupCommand) Code() string {
	return c.code
}

// Actor returns the operator confirming the pickup.
func (c ConfirmPickupCommand) Actor() string {
	return c.actor
}

func (c *ConfirmPickupCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ConfirmPickupCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

func (c *ConfirmPickupCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
