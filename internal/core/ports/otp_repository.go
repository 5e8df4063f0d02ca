package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/otp"
)

// OtpRepository defines the persistence contract for pickup OTPs.
type OtpRepository interface {
	// Add persists a newly issued OTP.
	Add(ctx context.Context, aggregate *otp.Otp) error

	// Update persists changes to an existing OTP, typically consumption.
	Update(ctx context.Context, aggregate *otp.Otp) error

	// GetByParcelAndCode retrieves the most recently issued OTP for the
	// given parcel carrying the given code, locking the underlying row
	// until the surrounding transaction ends. Returns
	// errs.ErrObjectNotFound when no such OTP exists.
	GetByParcelAndCode(ctx context.Context, parcelID kernel.UUID, code string) (*otp.Otp, error)
}
