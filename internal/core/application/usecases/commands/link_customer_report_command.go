package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/report"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrLinkCustomerReportCommandIsNotConstructed = errors.New(
	"LinkCustomerReportCommand must be created via NewLinkCustomerReportCommand constructor",
)

// LinkCustomerReportCommand represents an operator resolving a customer
// portal report against a physical parcel. Linking never changes the
// parcel's status; it only records the association and the resolution.
type LinkCustomerReportCommand struct { //nolint:recvcheck //using for validation
	reportID   kernel.UUID
	parcelID   kernel.UUID
	resolution report.Status
	actor      string

	guard guard.ConstructorGuard
}

// NewLinkCustomerReportCommand creates a command to link a report to a parcel.
// The resolution must be Confirmed or Rejected; the initial Reported status
// is not a resolution.
func NewLinkCustomerReportCommand(
	reportID kernel.UUID,
	parcelID kernel.UUID,
	resolution report.Status,
	actor string,
) (LinkCustomerReportCommand, error) {
	cmd := LinkCustomerReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReportID(reportID),
		cmd.setParcelID(parcelID),
		cmd.setResolution(resolution),
		cmd.setActor(actor),
	); err != nil {
		return LinkCustomerReportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkCustomerReportCommand) Validate() error {
	return c.guard.Validate(ErrLinkCustomerReportCommandIsNotConstructed)
}

// ReportID returns the report being resolved.
func (c LinkCustomerReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

// ParcelID returns the parcel the report is linked to.
func (c LinkCustomerReportCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Resolution returns the resolution status, Confirmed or Rejected.
func (c LinkCustomerReportCommand) Resolution() report.Status {
	return c.resolution
}

// Actor returns the operator resolving the report.
func (c LinkCustomerReportCommand) Actor() string {
	return c.actor
}

func (c *LinkCustomerReportCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}

func (c *LinkCustomerReportCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *LinkCustomerReportCommand) setResolution(resolution report.Status) error {
	if err := resolution.Validate(); err != nil {
		return err
	}

	if resolution == report.Reported {
		return errs.NewValueIsInvalidError("resolution")
	}

	c.resolution = resolution
	return nil
}

func (c *LinkCustomerReportCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
