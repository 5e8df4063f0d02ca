package commands

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
)

// FlagParcelProblemCommandHandler moves parcels into the InHandling status.
type FlagParcelProblemCommandHandler struct {
	uowFactory SweepUoWFactory
}

// NewFlagParcelProblemCommandHandler creates a handler for problem flagging.
func NewFlagParcelProblemCommandHandler(uowFactory SweepUoWFactory) FlagParcelProblemCommandHandler {
	return FlagParcelProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flagging command.
// Only a parcel in AwaitingPickup can be flagged; the transition error from
// the status machine surfaces otherwise. A "problem_flagged" event records
// the reason.
func (h FlagParcelProblemCommandHandler) Handle(ctx context.Context, cmd FlagParcelProblemCommand) error {
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

	if err = aggregate.FlagProblem(now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		history.EventProblemFlagged,
		cmd.Actor(),
		map[string]any{"reason": cmd.Reason()},
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
