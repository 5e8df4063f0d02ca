package commands_test

import (
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddParcelCommand_ValidInput(t *testing.T) {
	parcelID := kernel.NewUUID()
	locationID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	code := testTrackingCode(t)
	contact := testContact(t)

	cmd, err := commands.NewAddParcelCommand(
		parcelID, code, locationID, &courierID, contact, "fragile", "op.bianchi",
	)
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, code, cmd.TrackingCode())
	assert.Equal(t, locationID, cmd.LocationID())
	assert.Equal(t, &courierID, cmd.CourierID())
	assert.Equal(t, contact, cmd.Contact())
	assert.Equal(t, "fragile", cmd.Notes())
	assert.Equal(t, "op.bianchi", cmd.Actor())
}

func TestNewAddParcelCommand_NoCourier(t *testing.T) {
	cmd, err := commands.NewAddParcelCommand(
		kernel.NewUUID(), testTrackingCode(t), kernel.NewUUID(), nil, testContact(t), "", "op.bianchi",
	)
	require.NoError(t, err)
	assert.Nil(t, cmd.CourierID())
}

func TestNewAddParcelCommand_InvalidParcelID(t *testing.T) {
	_, err := commands.NewAddParcelCommand(
		kernel.UUID{}, testTrackingCode(t), kernel.NewUUID(), nil, testContact(t), "", "op.bianchi",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddParcelCommand_InvalidTrackingCode(t *testing.T) {
	_, err := commands.NewAddParcelCommand(
		kernel.NewUUID(), kernel.TrackingCode{}, kernel.NewUUID(), nil, testContact(t), "", "op.bianchi",
	)
	require.Error(t, err)
}

func TestNewAddParcelCommand_InvalidContact(t *testing.T) {
	_, err := commands.NewAddParcelCommand(
		kernel.NewUUID(), testTrackingCode(t), kernel.NewUUID(), nil, kernel.Contact{}, "", "op.bianchi",
	)
	require.Error(t, err)
}

func TestNewAddParcelCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewAddParcelCommand(
		kernel.NewUUID(), testTrackingCode(t), kernel.NewUUID(), nil, testContact(t), "", "",
	)
	require.Error(t, err)
}

func TestAddParcelCommand_NotConstructed(t *testing.T) {
	var cmd commands.AddParcelCommand
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrAddParcelCommandIsNotConstructed)
}
