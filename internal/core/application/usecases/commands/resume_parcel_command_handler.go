package commands

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
)

// ResumeParcelCommandHandler returns parcels from InHandling to storage.
type ResumeParcelCommandHandler struct {
	uowFactory SweepUoWFactory
}

// NewResumeParcelCommandHandler creates a handler for problem resolution.
func NewResumeParcelCommandHandler(uowFactory SweepUoWFactory) ResumeParcelCommandHandler {
	return ResumeParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume command.
// Moving back to AwaitingPickup updates status_changed_at, which resets both
// the expiration age and the one-warning-per-period deduplication.
func (h ResumeParcelCommandHandler) Handle(ctx context.Context, cmd ResumeParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.Resume(now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		history.EventProblemResolved,
		cmd.Actor(),
		nil,
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
