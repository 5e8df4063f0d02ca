package commands

import (
	"context"
	"errors"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/parcel"
	"pickup/internal/pkg/errs"
)

// AddParcelCommandHandler handles the business logic for parcel intake.
// Registers the parcel in AwaitingPickup status and opens its history trail
// with a "created" event, all within one transaction.
type AddParcelCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewAddParcelCommandHandler creates a handler for parcel intake operations.
func NewAddParcelCommandHandler(uowFactory IntakeUoWFactory) AddParcelCommandHandler {
	return AddParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command.
// Verifies the pickup location (and courier, when given) against the
// reference tables, rejects tracking codes already carried by an active
// parcel, then persists the parcel together with its first history event.
func (h AddParcelCommandHandler) Handle(ctx context.Context, cmd AddParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	refs := uow.ReferenceRepository()
	locationExists, err := refs.PickupLocationExists(ctx, cmd.LocationID())
	if err != nil {
		return err
	}
	if !locationExists {
		return errs.NewObjectNotFoundError("pickup location", cmd.LocationID())
	}

	if courierID := cmd.CourierID(); courierID != nil {
		courierExists, err := refs.CourierExists(ctx, *courierID)
		if err != nil {
			return err
		}
		if !courierExists {
			return errs.NewObjectNotFoundError("courier", *courierID)
		}
	}

	parcelRepo := uow.ParcelRepository()
	_, err = parcelRepo.GetActiveByTrackingCode(ctx, cmd.TrackingCode())
	if err == nil {
		return parcel.ErrDuplicateTrackingCode
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingCode(),
		cmd.LocationID(),
		cmd.CourierID(),
		cmd.Contact(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		history.EventCreated,
		cmd.Actor(),
		map[string]any{"tracking_code": cmd.TrackingCode().String()},
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
