package commands

import (
	"errors"
	"strings"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrFlagParcelProblemCommandIsNotConstructed = errors.New(
	"FlagParcelProblemCommand must be created via NewFlagParcelProblemCommand constructor",
)

// FlagParcelProblemCommand represents an operator pulling a parcel out of
// normal storage flow because of a handling problem (damaged label, wrong
// locker, customer dispute). The parcel moves to InHandling and stops aging
// towards expiration until resumed.
type FlagParcelProblemCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	reason   string
	actor    string

	guard guard.ConstructorGuard
}

// NewFlagParcelProblemCommand creates a command to flag a handling problem.
// A reason is required; it ends up in the history payload for the audit trail.
func NewFlagParcelProblemCommand(parcelID kernel.UUID, reason, actor string) (FlagParcelProblemCommand, error) {
	cmd := FlagParcelProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setReason(reason),
		cmd.setActor(actor),
	); err != nil {
		return FlagParcelProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagParcelProblemCommand) Validate() error {
	return c.guard.Validate(ErrFlagParcelProblemCommandIsNotConstructed)
}

// ParcelID returns the parcel being flagged.
func (c FlagParcelProblemCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Reason returns why the parcel needs handling.
func (c FlagParcelProblemCommand) Reason() string {
	return c.reason
}

// Actor returns the operator flagging the problem.
func (c FlagParcelProblemCommand) Actor() string {
	return c.actor
}

func (c *FlagParcelProblemCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *FlagParcelProblemCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *FlagParcelProblemCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
