package commands_test

import (
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeParcelCommand_ValidInput(t *testing.T) {
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewResumeParcelCommand(parcelID, "op.rossi")
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, "op.rossi", cmd.Actor())
}

func TestNewResumeParcelCommand_MissingActor(t *testing.T) {
	_, err := commands.NewResumeParcelCommand(kernel.NewUUID(), "")
	require.Error(t, err)
}

func TestResumeParcelCommand_NotConstructed(t *testing.T) {
	var cmd commands.ResumeParcelCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrResumeParcelCommandIsNotConstructed)
}
