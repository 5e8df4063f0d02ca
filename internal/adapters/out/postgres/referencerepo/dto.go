// Package referencerepo reads the pickup location and courier reference
// tables. The rows are maintained by the back office; the pickup core only
// checks existence and joins names in query projections.
package referencerepo

import (
	"github.com/google/uuid"
)

// PickupLocationDTO represents a pickup point reference row.
type PickupLocationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255)"`
	Address string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for pickup locations.
func (PickupLocationDTO) TableName() string {
	return "pickup_locations"
}

// CourierDTO represents a courier reference row.
type CourierDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for couriers.
func (CourierDTO) TableName() string {
	return "couriers"
}
