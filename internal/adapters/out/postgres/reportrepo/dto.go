// Package reportrepo persists customer portal reports. The bigserial
// feed_seq column doubles as the polling cursor for the dashboard feed.
package reportrepo

import (
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// ReportDTO represents the database structure for customer reports.
type ReportDTO struct {
	FeedSeq      int64      `gorm:"primaryKey;autoIncrement"`
	ID           uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	TrackingCode string     `gorm:"type:varchar(64);index"`
	CustomerName string     `gorm:"type:varchar(255)"`
	CustomerMail string     `gorm:"type:varchar(255)"`
	Notes        string
	Status       string     `gorm:"type:varchar(32);index"`
	ParcelID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for customer reports.
func (ReportDTO) TableName() string {
	return "customer_reports"
}

func fromDomain(aggregate *report.CustomerReport) ReportDTO {
	var parcelID *uuid.UUID
	if id := aggregate.Parcel(); id != nil {
		raw := id.Bytes()
		parcelID = &raw
	}

	return ReportDTO{
		ID:           aggregate.ID().Bytes(),
		TrackingCode: aggregate.TrackingCode(),
		CustomerName: aggregate.CustomerName(),
		CustomerMail: aggregate.CustomerMail(),
		Notes:        aggregate.Notes(),
		Status:       aggregate.Status().String(),
		ParcelID:     parcelID,
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto ReportDTO) (*report.CustomerReport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := report.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var parcelID *kernel.UUID
	if dto.ParcelID != nil {
		pID, parcelErr := kernel.UUIDFromBytes((*dto.ParcelID)[:])
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcelID = &pID
	}

	return report.RestoreCustomerReport(
		id,
		dto.TrackingCode,
		dto.CustomerName,
		dto.CustomerMail,
		dto.Notes,
		status,
		parcelID,
		dto.CreatedAt,
	)
}
