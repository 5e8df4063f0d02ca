package commands_test

import (
	"context"
	"testing"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/history"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/otp"
	"pickup/internal/core/domain/model/parcel"
	"pickup/internal/core/domain/model/report"
	"pickup/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetActiveByTrackingCode(
	ctx context.Context, code kernel.TrackingCode,
) (*parcel.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllAwaitingPickup(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockOtpRepository struct{ mock.Mock }

func (m *MockOtpRepository) Add(ctx context.Context, o *otp.Otp) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOtpRepository) Update(ctx context.Context, o *otp.Otp) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOtpRepository) GetByParcelAndCode(
	ctx context.Context, parcelID kernel.UUID, code string,
) (*otp.Otp, error) {
	args := m.Called(ctx, parcelID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*otp.Otp), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, e *history.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockHistoryRepository) HasEventSince(
	ctx context.Context, parcelID kernel.UUID, eventType history.EventType, since time.Time,
) (bool, error) {
	args := m.Called(ctx, parcelID, eventType, since)
	return args.Bool(0), args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.CustomerReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, r *report.CustomerReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Get(ctx context.Context, id kernel.UUID) (*report.CustomerReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.CustomerReport), args.Error(1)
}

type MockReferenceRepository struct{ mock.Mock }

func (m *MockReferenceRepository) PickupLocationExists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepository) CourierExists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW implements every narrow unit of work interface used by the
// command handlers, so each test wires only the repositories it needs.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) OtpRepository() ports.OtpRepository {
	args := m.Called()
	return args.Get(0).(ports.OtpRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) ReportRepository() ports.ReportRepository {
	args := m.Called()
	return args.Get(0).(ports.ReportRepository)
}

func (m *MockUoW) ReferenceRepository() ports.ReferenceRepository {
	args := m.Called()
	return args.Get(0).(ports.ReferenceRepository)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockOtpUoWFactory struct{ mock.Mock }

func (m *MockOtpUoWFactory) Create() commands.OtpUoW {
	args := m.Called()
	return args.Get(0).(commands.OtpUoW)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW {
	args := m.Called()
	return args.Get(0).(commands.SweepUoW)
}

type MockReportUoWFactory struct{ mock.Mock }

func (m *MockReportUoWFactory) Create() commands.ReportUoW {
	args := m.Called()
	return args.Get(0).(commands.ReportUoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func testContact(t *testing.T) kernel.Contact {
	t.Helper()
	contact, err := kernel.NewContact("Mario Rossi", "+39 333 1234567", "mario.rossi@example.com")
	require.NoError(t, err)
	return contact
}

func testTrackingCode(t *testing.T) kernel.TrackingCode {
	t.Helper()
	code, err := kernel.NewTrackingCode("TRK-0001")
	require.NoError(t, err)
	return code
}

func testAwaitingParcel(t *testing.T, statusChangedAt time.Time) *parcel.Parcel {
	t.Helper()
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		testTrackingCode(t),
		kernel.NewUUID(),
		nil,
		testContact(t),
		"",
		parcel.AwaitingPickup,
		statusChangedAt,
		statusChangedAt,
	)
	require.NoError(t, err)
	return p
}
