package commands

import (
	"context"
	"errors"
	"fmt"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/parcel"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
)

// SweepResult summarizes one storage sweep run.
type SweepResult struct {
	Processed int
	Warned    int
	Expired   int
}

// CheckStorageExpirationCommandHandler runs the storage sweep: it expires
// parcels whose storage period has elapsed and warns customers approaching
// the deadline. Each parcel is handled in its own transaction, so one
// failure never rolls back the rest of the run.
type CheckStorageExpirationCommandHandler struct {
	uowFactory SweepUoWFactory
	policy     services.ExpirationPolicy
	dispatcher ports.NotificationDispatcher
}

// NewCheckStorageExpirationCommandHandler creates a handler for the sweep.
func NewCheckStorageExpirationCommandHandler(
	uowFactory SweepUoWFactory,
	policy services.ExpirationPolicy,
	dispatcher ports.NotificationDispatcher,
) CheckStorageExpirationCommandHandler {
	return CheckStorageExpirationCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		dispatcher: dispatcher,
	}
}

// Handle processes one sweep run.
// Lists parcels in AwaitingPickup, then decides per parcel from its
// status_changed_at and the command's reference instant. A parcel past the
// storage period moves to StorageExpired with a "status_expired" event; a
// parcel inside the warning window gets one notification per storage period,
// recorded as "notify_storage_warning". A dispatcher failure is recorded as
// "notification_failed" and does not stop the run.
//
// The returned SweepResult counts every examined parcel even when later
// parcels fail; per-parcel errors are joined into the returned error.
func (h CheckStorageExpirationCommandHandler) Handle(
	ctx context.Context,
	cmd CheckStorageExpirationCommand,
) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	ids, err := h.listAwaiting(ctx)
	if err != nil {
		return SweepResult{}, err
	}

	var result SweepResult
	var sweepErrs []error

	for _, id := range ids {
		result.Processed++

		warned, expired, err := h.processParcel(ctx, cmd, id)
		if err != nil {
			sweepErrs = append(sweepErrs, fmt.Errorf("parcel %s: %w", id, err))
			continue
		}

		if warned {
			result.Warned++
		}
		if expired {
			result.Expired++
		}
	}

	return result, errors.Join(sweepErrs...)
}

// listAwaiting snapshots the IDs of parcels currently awaiting pickup.
// Each parcel is re-read under lock afterwards, so a stale snapshot entry
// is harmless.
func (h CheckStorageExpirationCommandHandler) listAwaiting(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels, err := uow.ParcelRepository().GetAllAwaitingPickup(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(parcels))
	for _, p := range parcels {
		ids = append(ids, p.ID())
	}

	return ids, nil
}

func (h CheckStorageExpirationCommandHandler) processParcel(
	ctx context.Context,
	cmd CheckStorageExpirationCommand,
	parcelID kernel.UUID,
) (warned, expired bool, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.GetForUpdate(ctx, parcelID)
	if err != nil {
		return false, false, err
	}

	// The parcel may have been picked up between the snapshot and the lock.
	if aggregate.Status() != parcel.AwaitingPickup {
		return false, false, nil
	}

	historyRepo := uow.HistoryRepository()
	alreadyWarned, err := historyRepo.HasEventSince(
		ctx, parcelID, history.EventStorageWarning, aggregate.StatusChangedAt(),
	)
	if err != nil {
		return false, false, err
	}

	switch h.policy.Decide(aggregate.StatusChangedAt(), cmd.Now(), alreadyWarned) {
	case services.DecisionExpire:
		if err = h.expire(ctx, uow, aggregate, cmd); err != nil {
			return false, false, err
		}
		return false, true, uow.Commit(ctx)

	case services.DecisionWarn:
		warned, err = h.warn(ctx, uow, aggregate, cmd)
		if err != nil {
			return false, false, err
		}
		return warned, false, uow.Commit(ctx)

	case services.DecisionNone:
		return false, false, nil
	}

	return false, false, nil
}

func (h CheckStorageExpirationCommandHandler) expire(
	ctx context.Context,
	uow SweepUoW,
	aggregate *parcel.Parcel,
	cmd CheckStorageExpirationCommand,
) error {
	if err := aggregate.Expire(cmd.Now()); err != nil {
		return err
	}

	if err := uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		history.EventStatusExpired,
		cmd.Actor(),
		map[string]any{"storage_days": h.policy.ExpirationDays()},
		cmd.Now(),
	)
	if err != nil {
		return err
	}

	return uow.HistoryRepository().Add(ctx, event)
}

// warn dispatches the storage warning and records the outcome. A delivery
// failure is written to history as "notification_failed" and reported as
// warned=false, not as an error, so the sweep keeps going.
func (h CheckStorageExpirationCommandHandler) warn(
	ctx context.Context,
	uow SweepUoW,
	aggregate *parcel.Parcel,
	cmd CheckStorageExpirationCommand,
) (bool, error) {
	notification := ports.Notification{
		ParcelID:     aggregate.ID(),
		TrackingCode: aggregate.TrackingCode().String(),
		Kind:         "storage_warning",
		Recipient:    recipientOf(aggregate),
		Message: fmt.Sprintf(
			"Parcel %s will leave storage soon: pick it up within %d days of arrival.",
			aggregate.TrackingCode(), h.policy.ExpirationDays(),
		),
	}

	eventType := history.EventStorageWarning
	payload := map[string]any{"recipient": notification.Recipient}

	if dispatchErr := h.dispatcher.Dispatch(ctx, notification); dispatchErr != nil {
		eventType = history.EventNotificationFailed
		payload["error"] = dispatchErr.Error()
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		eventType,
		cmd.Actor(),
		payload,
		cmd.Now(),
	)
	if err != nil {
		return false, err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return false, err
	}

	return eventType == history.EventStorageWarning, nil
}

func recipientOf(aggregate *parcel.Parcel) string {
	if email := aggregate.Contact().Email(); email != "" {
		return email
	}
	return aggregate.Contact().Phone()
}
