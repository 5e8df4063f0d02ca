package commands

import (
	"errors"
	"time"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrCheckStorageExpirationCommandIsNotConstructed = errors.New(
	"CheckStorageExpirationCommand must be created via NewCheckStorageExpirationCommand constructor",
)

// CheckStorageExpirationCommand represents one run of the storage sweep.
// The reference instant is part of the command so the whole sweep is a pure
// function of it; the trigger (cron job, manual run) owns the clock.
type CheckStorageExpirationCommand struct { //nolint:recvcheck //using for validation
	now   time.Time
	actor string

	guard guard.ConstructorGuard
}

// NewCheckStorageExpirationCommand creates a sweep command for the given
// reference instant. The actor is recorded on every event the sweep writes,
// "system" for scheduled runs.
func NewCheckStorageExpirationCommand(now time.Time, actor string) (CheckStorageExpirationCommand, error) {
	cmd := CheckStorageExpirationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNow(now),
		cmd.setActor(actor),
	); err != nil {
		return CheckStorageExpirationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckStorageExpirationCommand) Validate() error {
	return c.guard.Validate(ErrCheckStorageExpirationCommandIsNotConstructed)
}

// Now returns the reference instant of the sweep.
func (c CheckStorageExpirationCommand) Now() time.Time {
	return c.now
}

// Actor returns who triggered the sweep.
func (c CheckStorageExpirationCommand) Actor() string {
	return c.actor
}

func (c *CheckStorageExpirationCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now.UTC()
	return nil
}

func (c *CheckStorageExpirationCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
