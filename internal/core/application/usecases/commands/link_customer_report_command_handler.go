package commands

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
)

// LinkCustomerReportCommandHandler resolves customer reports against parcels.
type LinkCustomerReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

// NewLinkCustomerReportCommandHandler creates a handler for report linking.
func NewLinkCustomerReportCommandHandler(uowFactory ReportUoWFactory) LinkCustomerReportCommandHandler {
	return LinkCustomerReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the linking command.
// Both the report and the parcel must exist. Linking a report already tied
// to a different parcel fails with report.ErrReportAlreadyLinked; relinking
// to the same parcel only updates the resolution. The link is recorded on
// the parcel's history as "report_linked".
func (h LinkCustomerReportCommandHandler) Handle(ctx context.Context, cmd LinkCustomerReportCommand) error {
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

	reportRepo := uow.ReportRepository()
	aggregate, err := reportRepo.Get(ctx, cmd.ReportID())
	if err != nil {
		return err
	}

	// The parcel lookup both validates existence and pins the row id for
	// the history event.
	target, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.LinkToParcel(target.ID(), cmd.Resolution()); err != nil {
		return err
	}

	if err = reportRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		target.ID(),
		history.EventReportLinked,
		cmd.Actor(),
		map[string]any{
			"report_id":  aggregate.ID().String(),
			"resolution": cmd.Resolution().String(),
		},
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
