package queries_test

import (
	"context"
	"testing"
	"time"

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
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetParcelDetailsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetParcelDetailsQueryHandler
}

func (suite *GetParcelDetailsQueryHandlerTestSuite) SetupSuite() {
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
		&referencerepo.CourierDTO{},
		&parcelrepo.ParcelDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetParcelDetailsQueryHandler(db)
}

func (suite *GetParcelDetailsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetParcelDetailsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, pickup_locations, couriers").Error
	suite.Require().NoError(err)
}

func (suite *GetParcelDetailsQueryHandlerTestSuite) TestHandle_ParcelWithCourier_ReturnsFullProjection() {
	parcelID := suite.seedParcel("TRK-0001", "Via Roma 1", "SDA")

	query, err := queries.NewGetParcelDetailsQuery(parcelID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(parcelID.IsEqual(result.ID))
	suite.Equal("TRK-0001", result.TrackingCode)
	suite.Equal("in_giacenza", result.Status)
	suite.Equal("Via Roma 1", result.LocationName)
	suite.Equal("SDA", result.CourierName)
	suite.Equal("Mario Rossi", result.ContactName)
	suite.Equal("mario.rossi@example.com", result.ContactEmail)
	suite.False(result.CreatedAt.IsZero())
	suite.False(result.StatusChangedAt.IsZero())
}

func (suite *GetParcelDetailsQueryHandlerTestSuite) TestHandle_ParcelWithoutCourier_ReturnsEmptyCourierName() {
	parcelID := suite.seedParcel("TRK-0002", "Via Roma 1", "")

	query, err := queries.NewGetParcelDetailsQuery(parcelID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.CourierName)
}

func (suite *GetParcelDetailsQueryHandlerTestSuite) TestHandle_UnknownParcel_ReturnsNotFoundError() {
	query, err := queries.NewGetParcelDetailsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetParcelDetailsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetParcelDetailsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetParcelDetailsQuery constructor")
}

// seedParcel inserts a pickup location, an optional courier and one awaiting
// parcel, returning the parcel ID.
func (suite *GetParcelDetailsQueryHandlerTestSuite) seedParcel(
	trackingCode, locationName, courierName string,
) kernel.UUID {
	location := referencerepo.PickupLocationDTO{
		ID:      uuid.New(),
		Name:    locationName,
		Address: "Milano",
	}
	suite.Require().NoError(suite.db.Create(&location).Error)

	var courierID *uuid.UUID
	if courierName != "" {
		courier := referencerepo.CourierDTO{ID: uuid.New(), Name: courierName}
		suite.Require().NoError(suite.db.Create(&courier).Error)
		courierID = &courier.ID
	}

	now := time.Now().UTC()
	row := parcelrepo.ParcelDTO{
		ID:           uuid.New(),
		TrackingCode: trackingCode,
		Status:       "in_giacenza",
		CourierID:    courierID,
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

func TestGetParcelDetailsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetParcelDetailsQueryHandlerTestSuite))
}
