package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pickup/internal/adapters/out/postgres/reportrepo"
	"pickup/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetReportFeedQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetReportFeedQueryHandler
}

func (suite *GetReportFeedQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&reportrepo.ReportDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetReportFeedQueryHandler(db)
}

func (suite *GetReportFeedQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetReportFeedQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customer_reports RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *GetReportFeedQueryHandlerTestSuite) TestHandle_EmptyFeed_ReturnsNoEntries() {
	query, err := queries.NewGetReportFeedQuery(0)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(entries)
	suite.NotNil(entries)
}

func (suite *GetReportFeedQueryHandlerTestSuite) TestHandle_ReturnsEntriesInSequenceOrder() {
	suite.seedReport("TRK-0001", "Mario Rossi", "reported")
	suite.seedReport("TRK-0002", "Anna Bianchi", "confirmed")

	query, err := queries.NewGetReportFeedQuery(0)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Less(entries[0].Seq, entries[1].Seq)
	suite.Equal("TRK-0001", entries[0].TrackingCode)
	suite.Equal("TRK-0002", entries[1].TrackingCode)
	suite.Equal(
		"Mario Rossi reported a problem with parcel TRK-0001 (reported)",
		entries[0].Message,
	)
}

func (suite *GetReportFeedQueryHandlerTestSuite) TestHandle_AfterCursor_SkipsSeenEntries() {
	for i := range 5 {
		suite.seedReport(fmt.Sprintf("TRK-%04d", i+1), "Mario Rossi", "reported")
	}

	firstPage, err := queries.NewGetReportFeedQuery(0)
	suite.Require().NoError(err)
	entries, err := suite.handler.Handle(context.Background(), firstPage)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 5)

	cursor := entries[2].Seq
	nextPage, err := queries.NewGetReportFeedQuery(cursor)
	suite.Require().NoError(err)

	remaining, err := suite.handler.Handle(context.Background(), nextPage)

	suite.Require().NoError(err)
	suite.Require().Len(remaining, 2)
	suite.Equal(entries[3].Seq, remaining[0].Seq)
	suite.Equal(entries[4].Seq, remaining[1].Seq)
}

func (suite *GetReportFeedQueryHandlerTestSuite) TestHandle_CapsPageSize() {
	for i := range queries.FeedPageSize + 3 {
		suite.seedReport(fmt.Sprintf("TRK-%04d", i+1), "Mario Rossi", "reported")
	}

	query, err := queries.NewGetReportFeedQuery(0)
	suite.Require().NoError(err)

	entries, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(entries, queries.FeedPageSize)
}

func (suite *GetReportFeedQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetReportFeedQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetReportFeedQuery constructor")
}

func (suite *GetReportFeedQueryHandlerTestSuite) seedReport(
	trackingCode, customerName, status string,
) {
	row := reportrepo.ReportDTO{
		ID:           uuid.New(),
		TrackingCode: trackingCode,
		CustomerName: customerName,
		CustomerMail: "customer@example.com",
		Notes:        "parcel never arrived",
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&row).Error)
}

func TestGetReportFeedQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetReportFeedQueryHandlerTestSuite))
}
