package services

import (
	"time"

	"pickup/internal/pkg/errs"
)

// Decision is the outcome of evaluating one parcel against the storage policy.
type Decision int

const (
	// DecisionNone leaves the parcel untouched.
	DecisionNone Decision = iota

	// DecisionWarn notifies the customer that storage is about to expire.
	DecisionWarn

	// DecisionExpire transitions the parcel to the storage-expired status.
	DecisionExpire
)

// String returns a short identifier for logging.
func (d Decision) String() string {
	switch d {
	case DecisionWarn:
		return "warn"
	case DecisionExpire:
		return "expire"
	default:
		return "none"
	}
}

// ExpirationPolicy is a domain service deciding the fate of parcels awaiting
// pickup, based on how long they have dwelt since their last status change.
//
// Rules, with age measured from the parcel's last status change:
//   - age >= expirationDays: expire
//   - expirationDays - warningDays <= age < expirationDays, and the customer
//     was not already warned in this awaiting-pickup period: warn
//   - otherwise: nothing
//
// The policy holds no state and reads no clocks; callers pass the evaluation
// instant explicitly.
type ExpirationPolicy struct {
	expirationDays int
	warningDays    int
}

// NewExpirationPolicy creates a policy with the given thresholds.
// expirationDays must be at least 1; warningDays must lie in
// [0, expirationDays]; zero disables warnings entirely.
func NewExpirationPolicy(expirationDays, warningDays int) (ExpirationPolicy, error) {
	if expirationDays < 1 {
		return ExpirationPolicy{}, errs.NewValueIsInvalidError("expiration days")
	}

	if warningDays < 0 || warningDays > expirationDays {
		return ExpirationPolicy{}, errs.NewValueIsOutOfRangeError("warning days", warningDays, 0, expirationDays)
	}

	return ExpirationPolicy{
		expirationDays: expirationDays,
		warningDays:    warningDays,
	}, nil
}

// ExpirationDays returns the configured dwell time before expiry.
func (p ExpirationPolicy) ExpirationDays() int {
	return p.expirationDays
}

// WarningDays returns the width of the warning window before expiry.
func (p ExpirationPolicy) WarningDays() int {
	return p.warningDays
}

// Decide evaluates one parcel. statusChangedAt is the parcel's last status
// transition, now is the evaluation instant, and alreadyWarned reports
// whether a storage warning was already recorded since statusChangedAt.
func (p ExpirationPolicy) Decide(statusChangedAt, now time.Time, alreadyWarned bool) Decision {
	age := now.Sub(statusChangedAt)

	if age >= p.days(p.expirationDays) {
		return DecisionExpire
	}

	if p.warningDays > 0 && age >= p.days(p.expirationDays-p.warningDays) && !alreadyWarned {
		return DecisionWarn
	}

	return DecisionNone
}

func (p ExpirationPolicy) days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
