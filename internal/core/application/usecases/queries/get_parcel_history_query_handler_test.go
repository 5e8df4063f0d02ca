package queries_test

import (
	"context"
	"testing"
	"time"

	"pickup/internal/adapters/out/postgres/historyrepo"
	"pickup/internal/adapters/out/postgres/parcelrepo"
	"pickup/internal/adapters/out/postgres/referencerepo"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetParcelHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetParcelHistoryQueryHandler
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&referencerepo.PickupLocationDTO{},
		&parcelrepo.ParcelDTO{},
		&historyrepo.EventDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetParcelHistoryQueryHandler(db)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, pickup_locations, history_events").Error
	suite.Require().NoError(err)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_UnknownParcel_ReturnsNotFoundError() {
	query, err := queries.NewGetParcelHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_ParcelWithoutEvents_ReturnsEmptyTrail() {
	parcelID := suite.seedParcel("TRK-0001")

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	suite.Require().NoError(err)

	events, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(events)
	suite.NotNil(events)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_OrdersByOccurrenceThenSequence() {
	parcelID := suite.seedParcel("TRK-0002")
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	// The OTP events share a timestamp, the insert order (seq) breaks the tie.
	suite.seedEvent(parcelID, "created", "operator:anna", base)
	suite.seedEvent(parcelID, "otp_issued", "customer", base.Add(time.Hour))
	suite.seedEvent(parcelID, "otp_confirmed", "customer", base.Add(time.Hour))

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	suite.Require().NoError(err)

	events, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(events, 3)
	suite.Equal("created", events[0].Type)
	suite.Equal("otp_issued", events[1].Type)
	suite.Equal("otp_confirmed", events[2].Type)
	suite.Equal("operator:anna", events[0].Actor)
	suite.Equal(base, events[0].OccurredAt)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_ReturnsRawPayload() {
	parcelID := suite.seedParcel("TRK-0003")
	row := historyrepo.EventDTO{
		ID:         uuid.New(),
		ParcelID:   parcelID.Bytes(),
		EventType:  "problem_flagged",
		Actor:      "operator:luca",
		Payload:    datatypes.JSON(`{"reason": "damaged label"}`),
		OccurredAt: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&row).Error)

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	suite.Require().NoError(err)

	events, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.JSONEq(`{"reason": "damaged label"}`, string(events[0].Payload))
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_SkipsOtherParcelsEvents() {
	firstParcelID := suite.seedParcel("TRK-0004")
	secondParcelID := suite.seedParcel("TRK-0005")
	now := time.Now().UTC()
	suite.seedEvent(firstParcelID, "created", "system", now)
	suite.seedEvent(secondParcelID, "created", "system", now)

	query, err := queries.NewGetParcelHistoryQuery(firstParcelID)
	suite.Require().NoError(err)

	events, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) seedParcel(trackingCode string) kernel.UUID {
	location := referencerepo.PickupLocationDTO{
		ID:      uuid.New(),
		Name:    "Via Roma 1",
		Address: "Milano",
	}
	suite.Require().NoError(suite.db.Create(&location).Error)

	now := time.Now().UTC()
	row := parcelrepo.ParcelDTO{
		ID:           uuid.New(),
		TrackingCode: trackingCode,
		Status:       "in_giacenza",
		LocationID:   location.ID,
		Contact: parcelrepo.ContactDTO{
			Name:  "Mario Rossi",
			Phone: "+39 333 1234567",
			Email: "mario.rossi@example.com",
		},
		CreatedAt:       now,
		StatusChangedAt: now,
	}
	suite.Require().NoError(suite.db.Create(&row).Error)

	parcelID, err := kernel.UUIDFromBytes(row.ID[:])
	suite.Require().NoError(err)
	return parcelID
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) seedEvent(
	parcelID kernel.UUID,
	eventType, actor string,
	occurredAt time.Time,
) {
	row := historyrepo.EventDTO{
		ID:         uuid.New(),
		ParcelID:   parcelID.Bytes(),
		EventType:  eventType,
		Actor:      actor,
		OccurredAt: occurredAt,
	}
	suite.Require().NoError(suite.db.Create(&row).Error)
}

func TestGetParcelHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetParcelHistoryQueryHandlerTestSuite))
}
