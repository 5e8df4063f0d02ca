package commands

import (
	"context"
	"errors"
	"time"

	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/otp"
)

// ErrParcelAlreadyClosed is returned when an operation requires a parcel that
// is still in storage, but the parcel has already been picked up or expired.
var ErrParcelAlreadyClosed = errors.New("parcel is no longer awaiting pickup")

// GeneratedOtp is the result of issuing a pickup code. The plain code is
// returned exactly once, here; history events carry only the OTP id.
type GeneratedOtp struct {
	OtpID     kernel.UUID
	Code      string
	ExpiresAt time.Time
}

// GeneratePickupOtpCommandHandler issues one-time pickup codes.
// Code length and validity window come from configuration and are fixed at
// construction time.
type GeneratePickupOtpCommandHandler struct {
	uowFactory OtpUoWFactory
	codeLength int
	validFor   time.Duration
}

// NewGeneratePickupOtpCommandHandler creates a handler for OTP issuance.
// codeLength and validFor are validated later by the Otp constructor, so a
// misconfigured handler fails on first use rather than at wiring time.
func NewGeneratePickupOtpCommandHandler(
	uowFactory OtpUoWFactory,
	codeLength int,
	validFor time.Duration,
) GeneratePickupOtpCommandHandler {
	return GeneratePickupOtpCommandHandler{
		uowFactory: uowFactory,
		codeLength: codeLength,
		validFor:   validFor,
	}
}

// Handle processes the OTP issuance command.
// The parcel must exist and still be in storage (AwaitingPickup or
// InHandling). On success the code is persisted together with an
// "otp_issued" history event and returned to the caller.
func (h GeneratePickupOtpCommandHandler) Handle(
	ctx context.Context,
	cmd GeneratePickupOtpCommand,
) (GeneratedOtp, error) {
	if err := cmd.Validate(); err != nil {
		return GeneratedOtp{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GeneratedOtp{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return GeneratedOtp{}, err
	}

	if aggregate.Status().IsTerminal() {
		return GeneratedOtp{}, ErrParcelAlreadyClosed
	}

	code, err := otp.NewOtp(cmd.OtpID(), cmd.ParcelID(), h.codeLength, h.validFor, now)
	if err != nil {
		return GeneratedOtp{}, err
	}

	if err = uow.OtpRepository().Add(ctx, code); err != nil {
		return GeneratedOtp{}, err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(),
		cmd.ParcelID(),
		history.EventOtpIssued,
		cmd.Actor(),
		map[string]any{
			"otp_id":     code.ID().String(),
			"expires_at": code.ExpiresAt().Format(time.RFC3339),
		},
		now,
	)
	if err != nil {
		return GeneratedOtp{}, err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return GeneratedOtp{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GeneratedOtp{}, err
	}

	return GeneratedOtp{
		OtpID:     code.ID(),
		Code:      code.Code(),
		ExpiresAt: code.ExpiresAt(),
	}, nil
}
