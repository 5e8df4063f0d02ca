package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrGenerateQrCheckinCommandIsNotConstructed = errors.New(
	"GenerateQrCheckinCommand must be created via NewGenerateQrCheckinCommand constructor",
)

// GenerateQrCheckinCommand triggers regeneration of the check-in QR poster.
// The encoded URL and the target store are handler configuration, so the
// command itself carries no parameters.
type GenerateQrCheckinCommand struct {
	guard guard.ConstructorGuard
}

// NewGenerateQrCheckinCommand creates a command to regenerate the QR poster.
func NewGenerateQrCheckinCommand() GenerateQrCheckinCommand {
	return GenerateQrCheckinCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *GenerateQrCheckinCommand) Validate() error {
	return c.guard.Validate(ErrGenerateQrCheckinCommandIsNotConstructed)
}
