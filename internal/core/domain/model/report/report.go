package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

// Status represents the handling state of a customer self-service report.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Reported is the initial status of a submission coming in from the portal.
	Reported

	// Confirmed means the report was matched to a physical parcel.
	Confirmed

	// Rejected means the report could not be matched to any parcel.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Reported:      "reported",
		Confirmed:     "confirmed",
		Rejected:      "rejected",
	}
}

// Validate checks the status against the closed set of report states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"report status is invalid",
			fmt.Errorf("%d is not a valid report status", s),
		)
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"report status is invalid",
			fmt.Errorf("%d is not a valid report status", s),
		)
	}
	return nil
}

// String returns the wire identifier of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire identifier ("reported", "confirmed",
// "rejected") into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"report status is invalid",
		fmt.Errorf("%q is not a valid report status", raw),
	)
}

var (
	// ErrReportIsNotConstructed is returned when a CustomerReport was not
	// created through the NewCustomerReport or RestoreCustomerReport factories.
	ErrReportIsNotConstructed = errors.New("CustomerReport must be created via NewCustomerReport constructor")

	// ErrReportAlreadyLinked is returned when linking a report that is
	// already attached to a different parcel.
	ErrReportAlreadyLinked = errors.New("report is already linked to another parcel")
)

// CustomerReport is a self-service submission from the customer portal:
// "my parcel with this tracking code should be with you". The portal creates
// it; this core only links it to a physical parcel once an operator resolves
// the match.
type CustomerReport struct {
	id           kernel.UUID
	trackingCode string
	customerName string
	customerMail string
	notes        string
	status       Status
	parcelID     *kernel.UUID
	createdAt    time.Time

	isConstructed bool
}

// NewCustomerReport creates a portal submission in Reported status.
// The tracking code here is the customer's guess and is kept verbatim apart
// from trimming; it may match no real parcel.
func NewCustomerReport(
	id kernel.UUID,
	trackingCode string,
	customerName string,
	customerMail string,
	notes string,
	now time.Time,
) (*CustomerReport, error) {
	r := &CustomerReport{
		status:        Reported,
		notes:         notes,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setTrackingCode(trackingCode),
		r.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	r.customerMail = strings.TrimSpace(customerMail)
	return r, nil
}

// RestoreCustomerReport reconstructs a report from persistence.
func RestoreCustomerReport(
	id kernel.UUID,
	trackingCode string,
	customerName string,
	customerMail string,
	notes string,
	status Status,
	parcelID *kernel.UUID,
	createdAt time.Time,
) (*CustomerReport, error) {
	r := &CustomerReport{
		notes:         notes,
		customerMail:  strings.TrimSpace(customerMail),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setTrackingCode(trackingCode),
		r.setCustomerName(customerName),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if parcelID != nil {
		if err := parcelID.Validate(); err != nil {
			return nil, err
		}
		r.parcelID = parcelID
	}

	r.status = status
	return r, nil
}

// Validate ensures the report was created through a factory function.
func (r *CustomerReport) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

// ID returns the report identity.
func (r *CustomerReport) ID() kernel.UUID {
	return r.id
}

// TrackingCode returns the customer's tracking code guess.
func (r *CustomerReport) TrackingCode() string {
	return r.trackingCode
}

// CustomerName returns the submitting customer's name.
func (r *CustomerReport) CustomerName() string {
	return r.customerName
}

// CustomerMail returns the submitting customer's email, possibly empty.
func (r *CustomerReport) CustomerMail() string {
	return r.customerMail
}

// Notes returns the free-text submission notes.
func (r *CustomerReport) Notes() string {
	return r.notes
}

// Status returns the current report status.
func (r *CustomerReport) Status() Status {
	return r.status
}

// Parcel returns the linked parcel's ID, or nil while unresolved.
func (r *CustomerReport) Parcel() *kernel.UUID {
	return r.parcelID
}

// CreatedAt returns the submission instant.
func (r *CustomerReport) CreatedAt() time.Time {
	return r.createdAt
}

// LinkToParcel attaches the report to a physical parcel with the given
// resolution status.
//
// Linking rules:
//   - a report linked to a different parcel cannot be relinked (ErrReportAlreadyLinked)
//   - relinking to the same parcel is idempotent and only updates the status
//   - the resolution must be Confirmed or Rejected, not Reported
func (r *CustomerReport) LinkToParcel(parcelID kernel.UUID, resolution Status) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	if err := resolution.Validate(); err != nil {
		return err
	}

	if resolution == Reported {
		return errs.NewValueIsInvalidErrorWithCause(
			"report status is invalid",
			errors.New("reported is not a resolution status"),
		)
	}

	if r.parcelID != nil && !r.parcelID.IsEqual(parcelID) {
		return ErrReportAlreadyLinked
	}

	r.parcelID = &parcelID
	r.status = resolution
	return nil
}

func (r *CustomerReport) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *CustomerReport) setTrackingCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("reported tracking code")
	}
	r.trackingCode = code
	return nil
}

func (r *CustomerReport) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("reporting customer name")
	}
	r.customerName = name
	return nil
}
