package commands_test

import (
	"errors"
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitCustomerReportCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	reportID := kernel.NewUUID()

	cmd, err := commands.NewSubmitCustomerReportCommand(
		reportID, "TRK-0001", "Mario Rossi", "mario.rossi@example.com", "parcel never arrived",
	)
	require.NoError(t, err)

	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", ctx, mock.AnythingOfType("*report.CustomerReport")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitCustomerReportCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	stored := reportRepo.Calls[0].Arguments.Get(1).(*report.CustomerReport)
	assert.True(t, reportID.IsEqual(stored.ID()))
	assert.Equal(t, report.Reported, stored.Status())
	assert.Nil(t, stored.Parcel())
	uow.AssertExpectations(t)
}

func TestSubmitCustomerReportCommandHandler_Handle_AddFails(t *testing.T) {
	ctx := t.Context()
	storeErr := errors.New("connection reset")

	cmd, err := commands.NewSubmitCustomerReportCommand(
		kernel.NewUUID(), "TRK-0001", "Mario Rossi", "mario.rossi@example.com", "",
	)
	require.NoError(t, err)

	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", ctx, mock.AnythingOfType("*report.CustomerReport")).Return(storeErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitCustomerReportCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, storeErr)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSubmitCustomerReportCommandHandler_Handle_InvalidCommand(t *testing.T) {
	var zero commands.SubmitCustomerReportCommand

	handler := commands.NewSubmitCustomerReportCommandHandler(new(MockReportUoWFactory))
	err := handler.Handle(t.Context(), zero)

	require.ErrorIs(t, err, commands.ErrSubmitCustomerReportCommandIsNotConstructed)
}
