package commands

import (
	"context"
	"errors"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/otp"
	"pickup/internal/pkg/errs"
)

// ConfirmPickupCommandHandler handles OTP-based pickup confirmation.
// The whole check-and-consume sequence runs in one transaction with the OTP
// row locked, so two concurrent attempts with the same code cannot both
// succeed: the second one observes the consumed state and fails.
type ConfirmPickupCommandHandler struct {
	uowFactory OtpUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(uowFactory OtpUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Returns otp.ErrOtpInvalid when no issued code matches, otp.ErrOtpExpired
// when the matching code's validity window has closed, and
// otp.ErrOtpAlreadyConsumed when it was already spent. On success the code
// is consumed, the parcel moves to PickedUp and an "otp_confirmed" event is
// appended, atomically.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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

	otpRepo := uow.OtpRepository()
	code, err := otpRepo.GetByParcelAndCode(ctx, cmd.ParcelID(), cmd.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return otp.ErrOtpInvalid
	}
	if err != nil {
		return err
	}

	if !code.Matches(cmd.Code()) {
		return otp.ErrOtpInvalid
	}

	if err = code.Consume(now); err != nil {
		return err
	}

	if err = aggregate.PickUp(now); err != nil {
		return err
	}

	if err = otpRepo.Update(ctx, code); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		history.EventOtpConfirmed,
		cmd.Actor(),
		map[string]any{"otp_id": code.ID().String()},
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
