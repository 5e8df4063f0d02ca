package commands_test

import (
	"errors"
	"testing"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/parcel"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSweepPolicy(t *testing.T) services.ExpirationPolicy {
	t.Helper()
	policy, err := services.NewExpirationPolicy(3, 1)
	require.NoError(t, err)
	return policy
}

func eventOfType(eventType history.EventType) any {
	return mock.MatchedBy(func(e *history.Event) bool {
		return e.Type() == eventType
	})
}

func sweepCommand(t *testing.T, now time.Time) commands.CheckStorageExpirationCommand {
	t.Helper()
	cmd, err := commands.NewCheckStorageExpirationCommand(now, "system")
	require.NoError(t, err)
	return cmd
}

func TestCheckStorageExpirationCommandHandler_Handle_WarnsInsideWindow(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	aggregate := testAwaitingParcel(t, now.Add(-2*24*time.Hour))

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	parcelRepo.On("GetAllAwaitingPickup", ctx).Return([]*parcel.Parcel{aggregate}, nil).Once()
	parcelRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	historyRepo.On("HasEventSince", ctx, aggregate.ID(), history.EventStorageWarning, aggregate.StatusChangedAt()).
		Return(false, nil).Once()
	historyRepo.On("Add", ctx, eventOfType(history.EventStorageWarning)).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == "storage_warning" && n.Recipient == "mario.rossi@example.com"
	})).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckStorageExpirationCommandHandler(factory, testSweepPolicy(t), dispatcher)
	result, err := handler.Handle(ctx, sweepCommand(t, now))

	require.NoError(t, err)
	assert.Equal(t, commands.SweepResult{Processed: 1, Warned: 1, Expired: 0}, result)
	assert.Equal(t, parcel.AwaitingPickup, aggregate.Status())
	dispatcher.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
}

func TestCheckStorageExpirationCommandHandler_Handle_SkipsAlreadyWarned(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	aggregate := testAwaitingParcel(t, now.Add(-2*24*time.Hour))

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	parcelRepo.On("GetAllAwaitingPickup", ctx).Return([]*parcel.Parcel{aggregate}, nil).Once()
	parcelRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	historyRepo.On("HasEventSince", ctx, aggregate.ID(), history.EventStorageWarning, aggregate.StatusChangedAt()).
		Return(true, nil).Once()

	dispatcher := new(MockNotificationDispatcher)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckStorageExpirationCommandHandler(factory, testSweepPolicy(t), dispatcher)
	result, err := handler.Handle(ctx, sweepCommand(t, now))

	require.NoError(t, err)
	assert.Equal(t, commands.SweepResult{Processed: 1, Warned: 0, Expired: 0}, result)
	dispatcher.AssertNotCalled(t, "Dispatch", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCheckStorageExpirationCommandHandler_Handle_ExpiresAgedParcel(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	aggregate := testAwaitingParcel(t, now.Add(-5*24*time.Hour))

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	parcelRepo.On("GetAllAwaitingPickup", ctx).Return([]*parcel.Parcel{aggregate}, nil).Once()
	parcelRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	parcelRepo.On("Update", ctx, aggregate).Return(nil).Once()
	historyRepo.On("HasEventSince", ctx, aggregate.ID(), history.EventStorageWarning, aggregate.StatusChangedAt()).
		Return(false, nil).Once()
	historyRepo.On("Add", ctx, eventOfType(history.EventStatusExpired)).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckStorageExpirationCommandHandler(factory, testSweepPolicy(t), dispatcher)
	result, err := handler.Handle(ctx, sweepCommand(t, now))

	require.NoError(t, err)
	assert.Equal(t, commands.SweepResult{Processed: 1, Warned: 0, Expired: 1}, result)
	assert.Equal(t, parcel.StorageExpired, aggregate.Status())
	dispatcher.AssertNotCalled(t, "Dispatch", ctx, mock.Anything)
	historyRepo.AssertExpectations(t)
}

func TestCheckStorageExpirationCommandHandler_Handle_MixedWarnAndExpire(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	warnable := testAwaitingParcel(t, now.Add(-2*24*time.Hour))
	expirable := testAwaitingParcel(t, now.Add(-5*24*time.Hour))

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil).Times(2)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	parcelRepo.On("GetAllAwaitingPickup", ctx).Return([]*parcel.Parcel{warnable, expirable}, nil).Once()
	parcelRepo.On("GetForUpdate", ctx, warnable.ID()).Return(warnable, nil).Once()
	parcelRepo.On("GetForUpdate", ctx, expirable.ID()).Return(expirable, nil).Once()
	parcelRepo.On("Update", ctx, expirable).Return(nil).Once()
	historyRepo.On("HasEventSince", ctx, warnable.ID(), history.EventStorageWarning, warnable.StatusChangedAt()).
		Return(false, nil).Once()
	historyRepo.On("HasEventSince", ctx, expirable.ID(), history.EventStorageWarning, expirable.StatusChangedAt()).
		Return(false, nil).Once()
	historyRepo.On("Add", ctx, eventOfType(history.EventStorageWarning)).Return(nil).Once()
	historyRepo.On("Add", ctx, eventOfType(history.EventStatusExpired)).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckStorageExpirationCommandHandler(factory, testSweepPolicy(t), dispatcher)
	result, err := handler.Handle(ctx, sweepCommand(t, now))

	require.NoError(t, err)
	assert.Equal(t, commands.SweepResult{Processed: 2, Warned: 1, Expired: 1}, result)
	assert.Equal(t, parcel.AwaitingPickup, warnable.Status())
	assert.Equal(t, parcel.StorageExpired, expirable.Status())
	dispatcher.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckStorageExpirationCommandHandler_Handle_RecordsFailedNotification(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	aggregate := testAwaitingParcel(t, now.Add(-2*24*time.Hour))

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	parcelRepo.On("GetAllAwaitingPickup", ctx).Return([]*parcel.Parcel{aggregate}, nil).Once()
	parcelRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	historyRepo.On("HasEventSince", ctx, aggregate.ID(), history.EventStorageWarning, aggregate.StatusChangedAt()).
		Return(false, nil).Once()
	historyRepo.On("Add", ctx, eventOfType(history.EventNotificationFailed)).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("ports.Notification")).
		Return(ports.ErrNotificationDelivery).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckStorageExpirationCommandHandler(factory, testSweepPolicy(t), dispatcher)
	result, err := handler.Handle(ctx, sweepCommand(t, now))

	require.NoError(t, err)
	assert.Equal(t, commands.SweepResult{Processed: 1, Warned: 0, Expired: 0}, result)
	historyRepo.AssertExpectations(t)
}

func TestCheckStorageExpirationCommandHandler_Handle_ContinuesAfterParcelError(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	broken := testAwaitingParcel(t, now.Add(-5*24*time.Hour))
	healthy := testAwaitingParcel(t, now.Add(-5*24*time.Hour))
	repoErr := errors.New("deadlock detected")

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("HistoryRepository").Return(historyRepo)

	parcelRepo.On("GetAllAwaitingPickup", ctx).Return([]*parcel.Parcel{broken, healthy}, nil).Once()
	parcelRepo.On("GetForUpdate", ctx, broken.ID()).Return(nil, repoErr).Once()
	parcelRepo.On("GetForUpdate", ctx, healthy.ID()).Return(healthy, nil).Once()
	parcelRepo.On("Update", ctx, healthy).Return(nil).Once()
	historyRepo.On("HasEventSince", ctx, healthy.ID(), history.EventStorageWarning, healthy.StatusChangedAt()).
		Return(false, nil).Once()
	historyRepo.On("Add", ctx, eventOfType(history.EventStatusExpired)).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCheckStorageExpirationCommandHandler(
		factory, testSweepPolicy(t), new(MockNotificationDispatcher),
	)
	result, err := handler.Handle(ctx, sweepCommand(t, now))

	require.ErrorIs(t, err, repoErr)
	assert.Equal(t, commands.SweepResult{Processed: 2, Warned: 0, Expired: 1}, result)
	assert.Equal(t, parcel.StorageExpired, healthy.Status())
}

func TestNewCheckStorageExpirationCommand_Invalid(t *testing.T) {
	_, err := commands.NewCheckStorageExpirationCommand(time.Time{}, "system")
	require.Error(t, err)

	_, err = commands.NewCheckStorageExpirationCommand(time.Now(), "")
	require.Error(t, err)
}

func TestCheckStorageExpirationCommand_NotConstructed(t *testing.T) {
	var cmd commands.CheckStorageExpirationCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCheckStorageExpirationCommandIsNotConstructed)
}
