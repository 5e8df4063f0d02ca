package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelDetailsQueryHandler serves the single-parcel projection.
// Reads the parcels table joined with the pickup location and courier
// reference tables; the courier join is optional.
type GetParcelDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelDetailsQueryHandler creates a handler for parcel detail queries.
func NewGetParcelDetailsQueryHandler(db *gorm.DB) GetParcelDetailsQueryHandler {
	return GetParcelDetailsQueryHandler{db: db}
}

// Handle executes the projection query.
// Returns errs.ObjectNotFoundError when the parcel does not exist.
func (h GetParcelDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelDetailsQuery,
) (GetParcelDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelDetailsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_code,
			p.status,
			l.name,
			c.name,
			p.contact_name,
			p.contact_phone,
			p.contact_email,
			p.notes,
			p.created_at,
			p.status_changed_at
		FROM parcels p
		JOIN pickup_locations l ON l.id = p.location_id
		LEFT JOIN couriers c ON c.id = p.courier_id
		WHERE p.id = ?
	`, query.ParcelID().Bytes()).Row()

	var resp GetParcelDetailsQueryResponse
	var id uuid.UUID
	var courierName sql.NullString
	var createdAt, statusChangedAt time.Time

	err := row.Scan(
		&id,
		&resp.TrackingCode,
		&resp.Status,
		&resp.LocationName,
		&courierName,
		&resp.ContactName,
		&resp.ContactPhone,
		&resp.ContactEmail,
		&resp.Notes,
		&createdAt,
		&statusChangedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelDetailsQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}
	if err != nil {
		return GetParcelDetailsQueryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetParcelDetailsQueryResponse{}, err
	}

	resp.ID = parcelID
	resp.CourierName = courierName.String
	resp.CreatedAt = createdAt.UTC()
	resp.StatusChangedAt = statusChangedAt.UTC()
	return resp, nil
}
