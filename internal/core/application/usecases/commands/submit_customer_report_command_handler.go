package commands

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/report"
)

// SubmitCustomerReportCommandHandler records portal submissions.
// Reports enter in Reported status and are resolved later by an operator
// through LinkCustomerReportCommand.
type SubmitCustomerReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

// NewSubmitCustomerReportCommandHandler creates a handler for report intake.
func NewSubmitCustomerReportCommandHandler(uowFactory ReportUoWFactory) SubmitCustomerReportCommandHandler {
	return SubmitCustomerReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command. The report is stored as-is, with
// no attempt to match the tracking code against parcels at this point.
func (h SubmitCustomerReportCommandHandler) Handle(ctx context.Context, cmd SubmitCustomerReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := report.NewCustomerReport(
		cmd.ReportID(),
		cmd.TrackingCode(),
		cmd.CustomerName(),
		cmd.CustomerMail(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReportRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
