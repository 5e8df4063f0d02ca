// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Status is stored as its wire string so raw SQL projections can serve it
// without another mapping step.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingCode    string     `gorm:"type:varchar(64);index"`
	Status          string     `gorm:"type:varchar(32);index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	LocationID      uuid.UUID  `gorm:"type:uuid;index"`
	Contact         ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StatusChangedAt time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ContactDTO represents the embedded recipient contact within the parcel table.
type ContactDTO struct {
	Name  string `gorm:"type:varchar(255)"`
	Phone string `gorm:"type:varchar(32)"`
	Email string `gorm:"type:varchar(255)"`
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return ParcelDTO{
		ID:           aggregate.ID().Bytes(),
		TrackingCode: aggregate.TrackingCode().String(),
		Status:       aggregate.Status().String(),
		CourierID:    courierID,
		LocationID:   aggregate.PickupLocation().Bytes(),
		Contact: ContactDTO{
			Name:  aggregate.Contact().Name(),
			Phone: aggregate.Contact().Phone(),
			Email: aggregate.Contact().Email(),
		},
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		StatusChangedAt: aggregate.StatusChangedAt(),
	}
}

// toDomain converts a database row back to a parcel aggregate using
// RestoreParcel, so the full field validation runs on the way out too.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	contact, err := kernel.NewContact(dto.Contact.Name, dto.Contact.Phone, dto.Contact.Email)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		trackingCode,
		locationID,
		courierID,
		contact,
		dto.Notes,
		status,
		dto.CreatedAt,
		dto.StatusChangedAt,
	)
}
