package commands

import (
	"context"

	"github.com/skip2/go-qrcode"

	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

const qrCheckinFileName = "checkin_qr.png"

// qrCheckinSize is the PNG edge length in pixels, sized for counter printing.
const qrCheckinSize = 512

// GenerateQrCheckinCommandHandler renders the check-in page URL as a QR PNG
// and stores it through the asset store. Customers scan the poster at the
// pickup point to open the check-in page.
type GenerateQrCheckinCommandHandler struct {
	checkinURL string
	store      ports.AssetStore
}

// NewGenerateQrCheckinCommandHandler creates a handler for QR generation.
func NewGenerateQrCheckinCommandHandler(
	checkinURL string,
	store ports.AssetStore,
) (GenerateQrCheckinCommandHandler, error) {
	if checkinURL == "" {
		return GenerateQrCheckinCommandHandler{}, errs.NewValueIsRequiredError("checkin URL")
	}

	return GenerateQrCheckinCommandHandler{
		checkinURL: checkinURL,
		store:      store,
	}, nil
}

// Handle renders and stores the QR image, returning the relative path of the
// stored PNG. Store failures surface wrapped in ports.ErrAssetWrite by the
// store implementation.
func (h GenerateQrCheckinCommandHandler) Handle(ctx context.Context, cmd GenerateQrCheckinCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	png, err := qrcode.Encode(h.checkinURL, qrcode.Medium, qrCheckinSize)
	if err != nil {
		return "", err
	}

	return h.store.Save(ctx, qrCheckinFileName, png)
}
