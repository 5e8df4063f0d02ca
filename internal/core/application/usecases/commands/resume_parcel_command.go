package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrResumeParcelCommandIsNotConstructed = errors.New(
	"ResumeParcelCommand must be created via NewResumeParcelCommand constructor",
)

// ResumeParcelCommand represents the counterpart of FlagParcelProblemCommand:
// the handling problem is resolved and the parcel goes back to AwaitingPickup.
// The storage clock restarts from the resume instant.
type ResumeParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewResumeParcelCommand creates a command to return a parcel to storage.
func NewResumeParcelCommand(parcelID kernel.UUID, actor string) (ResumeParcelCommand, error) {
	cmd := ResumeParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActor(actor),
	); err != nil {
		return ResumeParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeParcelCommand) Validate() error {
	return c.guard.Validate(ErrResumeParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel being returned to storage.
func (c ResumeParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Actor returns the operator resolving the problem.
func (c ResumeParcelCommand) Actor() string {
	return c.actor
}

func (c *ResumeParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ResumeParcelCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
