package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrGeneratePickupOtpCommandIsNotConstructed = errors.New(
	"GeneratePickupOtpCommand must be created via NewGeneratePickupOtpCommand constructor",
)

// GeneratePickupOtpCommand represents a request to issue a one-time pickup
// code for a parcel. Issuing a new code does not invalidate earlier unspent
// codes; each one expires on its own clock.
type GeneratePickupOtpCommand struct { //nolint:recvcheck //using for validation
	otpID    kernel.UUID
	parcelID kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewGeneratePickupOtpCommand creates a command to issue a pickup OTP.
func NewGeneratePickupOtpCommand(otpID, parcelID kernel.UUID, actor string) (GeneratePickupOtpCommand, error) {
	cmd := GeneratePickupOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOtpID(otpID),
		cmd.setParcelID(parcelID),
		cmd.setActor(actor),
	); err != nil {
		return GeneratePickupOtpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GeneratePickupOtpCommand) Validate() error {
	return c.guard.Validate(ErrGeneratePickupOtpCommandIsNotConstructed)
}

// OtpID returns the identifier for the new OTP.
func (c GeneratePickupOtpCommand) OtpID() kernel.UUID {
	return c.otpID
}

// ParcelID returns the parcel the code is issued for.
func (c GeneratePickupOtpCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Actor returns the operator requesting the code.
func (c GeneratePickupOtpCommand) Actor() string {
	return c.actor
}

func (c *GeneratePickupOtpCommand) setOtpID(otpID kernel.UUID) error {
	if err := otpID.Validate(); err != nil {
		return err
	}

	c.otpID = otpID
	return nil
}

func (c *GeneratePickupOtpCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *GeneratePickupOtpCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
