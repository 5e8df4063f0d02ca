// Package otp provides the one-time pickup-confirmation code entity.
//
// An Otp belongs to exactly one parcel. It is issued with a fixed validity
// window, consumed at most once by a successful pickup confirmation, and
// retained afterwards for audit. Codes come from crypto/rand so they are not
// attacker-predictable.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"math/big"
	"strings"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

// Code length bounds accepted by NewOtp.
const (
	MinCodeLength = 4
	MaxCodeLength = 10
)

var (
	// ErrOtpIsNotConstructed is returned when an Otp was not created through
	// the NewOtp or RestoreOtp factory functions.
	ErrOtpIsNotConstructed = errors.New("Otp must be created via NewOtp constructor")

	// ErrOtpInvalid is returned when no OTP matches the presented code.
	ErrOtpInvalid = errors.New("pickup code is not valid for this parcel")

	// ErrOtpExpired is returned when the presented code exists but its
	// validity window has closed.
	ErrOtpExpired = errors.New("pickup code has expired")

	// ErrOtpAlreadyConsumed is returned when the presented code was already
	// spent by a previous confirmation.
	ErrOtpAlreadyConsumed = errors.New("pickup code has already been used")
)

// Otp is a numeric one-time code authorizing the pickup of a single parcel.
type Otp struct {
	id       kernel.UUID
	parcelID kernel.UUID
	code     string

	issuedAt   time.Time
	expiresAt  time.Time
	consumedAt *time.Time

	isConstructed bool
}

// NewOtp issues a new code for a parcel. The code has the requested number of
// decimal digits, drawn from crypto/rand, and expires at now + validFor.
func NewOtp(
	id kernel.UUID,
	parcelID kernel.UUID,
	length int,
	validFor time.Duration,
	now time.Time,
) (*Otp, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}

	if length < MinCodeLength || length > MaxCodeLength {
		return nil, errs.NewValueIsOutOfRangeError("otp length", length, MinCodeLength, MaxCodeLength)
	}

	if validFor <= 0 {
		return nil, errs.NewValueIsInvalidError("otp validity window")
	}

	code, err := generateCode(length)
	if err != nil {
		return nil, err
	}

	return &Otp{
		id:            id,
		parcelID:      parcelID,
		code:          code,
		issuedAt:      now.UTC(),
		expiresAt:     now.UTC().Add(validFor),
		isConstructed: true,
	}, nil
}

// RestoreOtp reconstructs an Otp from persistence.
func RestoreOtp(
	id kernel.UUID,
	parcelID kernel.UUID,
	code string,
	issuedAt time.Time,
	expiresAt time.Time,
	consumedAt *time.Time,
) (*Otp, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}

	if code == "" {
		return nil, errs.NewValueIsRequiredError("otp code")
	}

	return &Otp{
		id:            id,
		parcelID:      parcelID,
		code:          code,
		issuedAt:      issuedAt,
		expiresAt:     expiresAt,
		consumedAt:    consumedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Otp was created through a factory function.
func (o *Otp) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOtpIsNotConstructed
	}
	return nil
}

// ID returns the OTP identity.
func (o *Otp) ID() kernel.UUID {
	return o.id
}

// ParcelID returns the identity of the owning parcel.
func (o *Otp) ParcelID() kernel.UUID {
	return o.parcelID
}

// Code returns the numeric code as issued.
func (o *Otp) Code() string {
	return o.code
}

// IssuedAt returns the issue instant.
func (o *Otp) IssuedAt() time.Time {
	return o.issuedAt
}

// ExpiresAt returns the end of the validity window.
func (o *Otp) ExpiresAt() time.Time {
	return o.expiresAt
}

// ConsumedAt returns the consumption instant, or nil while unspent.
func (o *Otp) ConsumedAt() *time.Time {
	return o.consumedAt
}

// IsConsumed reports whether the code was already spent.
func (o *Otp) IsConsumed() bool {
	return o.consumedAt != nil
}

// IsExpired reports whether the validity window has closed.
// The boundary itself counts as expired: a code valid for N minutes is
// rejected at exactly issue time + N.
func (o *Otp) IsExpired(now time.Time) bool {
	return !now.Before(o.expiresAt)
}

// Matches compares the presented code in constant time.
func (o *Otp) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(o.code), []byte(code)) == 1
}

// Consume spends the code at the given instant.
// Returns ErrOtpExpired or ErrOtpAlreadyConsumed when the code is not usable;
// expiry is checked first, so a code that is both expired and spent reports
// ErrOtpExpired. The entity is left untouched on error.
func (o *Otp) Consume(now time.Time) error {
	if o.IsExpired(now) {
		return ErrOtpExpired
	}

	if o.IsConsumed() {
		return ErrOtpAlreadyConsumed
	}

	consumedAt := now.UTC()
	o.consumedAt = &consumedAt
	return nil
}

func generateCode(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)

	for range length {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + digit.Int64()))
	}

	return b.String(), nil
}
