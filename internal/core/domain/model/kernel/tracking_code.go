package kernel

import (
	"strings"

	"pickup/internal/pkg/errs"
)

// ErrTrackingCodeIsNotConstructed is returned when validating a zero-value TrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode constructor",
)

// TrackingCode is the carrier-assigned identifier of a parcel.
// Codes are stored normalized (trimmed, upper-cased) so uniqueness checks
// among active parcels are not fooled by case or stray whitespace.
type TrackingCode struct {
	value string

	isConstructed bool
}

// NewTrackingCode creates a normalized tracking code. The raw value must not
// be blank after trimming.
func NewTrackingCode(raw string) (TrackingCode, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking code")
	}

	return TrackingCode{value: value, isConstructed: true}, nil
}

// Validate ensures the TrackingCode was created through NewTrackingCode.
func (t TrackingCode) Validate() error {
	if !t.isConstructed {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}

// String returns the normalized code.
func (t TrackingCode) String() string {
	return t.value
}

// IsEqual compares two tracking codes by normalized value.
func (t TrackingCode) IsEqual(other TrackingCode) bool {
	return t.value == other.value
}
