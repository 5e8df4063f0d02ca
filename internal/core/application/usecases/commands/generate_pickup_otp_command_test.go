package commands_test

import (
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratePickupOtpCommand_ValidInput(t *testing.T) {
	otpID := kernel.NewUUID()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewGeneratePickupOtpCommand(otpID, parcelID, "op.verdi")
	require.NoError(t, err)
	assert.Equal(t, otpID, cmd.OtpID())
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, "op.verdi", cmd.Actor())
}

func TestNewGeneratePickupOtpCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewGeneratePickupOtpCommand(kernel.UUID{}, kernel.NewUUID(), "op.verdi")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewGeneratePickupOtpCommand(kernel.NewUUID(), kernel.UUID{}, "op.verdi")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGeneratePickupOtpCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewGeneratePickupOtpCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
}

func TestGeneratePickupOtpCommand_NotConstructed(t *testing.T) {
	var cmd commands.GeneratePickupOtpCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrGeneratePickupOtpCommandIsNotConstructed)
}
