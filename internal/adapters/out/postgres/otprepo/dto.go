// Package otprepo persists issued pickup OTPs. Rows are never deleted, the
// consumed timestamp is the audit record of each code's fate.
package otprepo

import (
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/otp"

	"github.com/google/uuid"
)

// OtpDTO represents the database structure for persisting pickup OTPs.
type OtpDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index"`
	Code       string    `gorm:"type:varchar(16);index"`
	IssuedAt   time.Time
	ExpiresAt  time.Time
	ConsumedAt *time.Time
}

// TableName specifies the database table name for OTP entities.
func (OtpDTO) TableName() string {
	return "pickup_otps"
}

func fromDomain(aggregate *otp.Otp) OtpDTO {
	return OtpDTO{
		ID:         aggregate.ID().Bytes(),
		ParcelID:   aggregate.ParcelID().Bytes(),
		Code:       aggregate.Code(),
		IssuedAt:   aggregate.IssuedAt(),
		ExpiresAt:  aggregate.ExpiresAt(),
		ConsumedAt: aggregate.ConsumedAt(),
	}
}

func toDomain(dto OtpDTO) (*otp.Otp, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return otp.RestoreOtp(id, parcelID, dto.Code, dto.IssuedAt, dto.ExpiresAt, dto.ConsumedAt)
}
