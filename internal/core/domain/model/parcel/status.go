package parcel

import (
	"fmt"

	"pickup/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel held at a pickup point.
// It implements a state machine with a closed transition table so invalid
// moves are errors rather than silent field writes.
//
// State transitions:
//
//	AwaitingPickup ──┬──> PickedUp
//	      │  ▲       └──> StorageExpired
//	      ▼  │
//	  InHandling ───────> PickedUp
//
// PickedUp and StorageExpired are terminal. StorageExpired can only be left
// through an administrative reactivation that is out of this core's scope.
//
// The string values are the wire/database identifiers inherited from the
// back-office system and are kept verbatim.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingPickup ("in_giacenza") is the initial status: the parcel sits
	// at the pickup point waiting for the customer.
	AwaitingPickup

	// InHandling ("in_corso") marks a parcel an operator has flagged for
	// handling (damaged label, identification problem, ...). The storage
	// clock keeps running from the moment the status changed.
	InHandling

	// PickedUp ("ritirato") means the customer collected the parcel after a
	// successful OTP confirmation. Terminal.
	PickedUp

	// StorageExpired ("in_giacenza_scaduto") means the parcel exceeded the
	// configured storage dwell time. Terminal for this core.
	StorageExpired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		AwaitingPickup: "in_giacenza",
		InHandling:     "in_corso",
		PickedUp:       "ritirato",
		StorageExpired: "in_giacenza_scaduto",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingPickup: "in_giacenza",
		InHandling:     "in_corso",
		PickedUp:       "ritirato",
		StorageExpired: "in_giacenza_scaduto",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire identifier of the status ("in_giacenza", "in_corso",
// "ritirato", "in_giacenza_scaduto"), or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString maps a wire identifier back to its Status.
// Returns an error for "unknown" and anything else outside the table.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == PickedUp || s == StorageExpired
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - AwaitingPickup -> PickedUp (regular OTP-confirmed collection)
//   - InHandling -> PickedUp (collection after the problem was handled)
//
// Returns (0, error) when the parcel is already in a terminal state.
func (s Status) PickUp() (Status, error) {
	if s != AwaitingPickup && s != InHandling {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}

	return PickedUp, nil
}

// Expire transitions the status to StorageExpired.
//
// Only AwaitingPickup parcels expire: a parcel under handling is being worked
// by an operator and must not silently drop out of the flow.
func (s Status) Expire() (Status, error) {
	if s != AwaitingPickup {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return StorageExpired, nil
}

// FlagProblem transitions the status to InHandling.
//
// Valid transition: AwaitingPickup -> InHandling.
func (s Status) FlagProblem() (Status, error) {
	if s != AwaitingPickup {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to flag", s.String()),
		)
	}

	return InHandling, nil
}

// Resume transitions the status back to AwaitingPickup after handling.
//
// Valid transition: InHandling -> AwaitingPickup. Resuming restarts the
// storage clock, since the status-change timestamp moves.
func (s Status) Resume() (Status, error) {
	if s != InHandling {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to resume", s.String()),
		)
	}

	return AwaitingPickup, nil
}
