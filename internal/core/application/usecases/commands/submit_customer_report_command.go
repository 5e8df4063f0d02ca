package commands

import (
	"errors"
	"strings"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrSubmitCustomerReportCommandIsNotConstructed = errors.New(
	"SubmitCustomerReportCommand must be created via NewSubmitCustomerReportCommand constructor",
)

// SubmitCustomerReportCommand represents a customer portal submission about
// a missing or mishandled parcel. The tracking code is the customer's guess
// and is stored verbatim; resolution happens later via linking.
type SubmitCustomerReportCommand struct { //nolint:recvcheck //using for validation
	reportID     kernel.UUID
	trackingCode string
	customerName string
	customerMail string
	notes        string

	guard guard.ConstructorGuard
}

// NewSubmitCustomerReportCommand creates a command to record a portal report.
// No actor parameter: submissions come from the customer named in the report.
func NewSubmitCustomerReportCommand(
	reportID kernel.UUID,
	trackingCode string,
	customerName string,
	customerMail string,
	notes string,
) (SubmitCustomerReportCommand, error) {
	cmd := SubmitCustomerReportCommand{
		customerMail: strings.TrimSpace(customerMail),
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReportID(reportID),
		cmd.setTrackingCode(trackingCode),
		cmd.setCustomerName(customerName),
	); err != nil {
		return SubmitCustomerReportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCustomerReportCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCustomerReportCommandIsNotConstructed)
}

// ReportID returns the identifier for the new report.
func (c SubmitCustomerReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

// TrackingCode returns the customer's tracking code guess.
func (c SubmitCustomerReportCommand) TrackingCode() string {
	return c.trackingCode
}

// CustomerName returns the submitting customer's name.
func (c SubmitCustomerReportCommand) CustomerName() string {
	return c.customerName
}

// CustomerMail returns the submitting customer's email, possibly empty.
func (c SubmitCustomerReportCommand) CustomerMail() string {
	return c.customerMail
}

// Notes returns the free-text report body.
func (c SubmitCustomerReportCommand) Notes() string {
	return c.notes
}

func (c *SubmitCustomerReportCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}

func (c *SubmitCustomerReportCommand) setTrackingCode(trackingCode string) error {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("tracking code")
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *SubmitCustomerReportCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.customerName = customerName
	return nil
}
