package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"pickup/cmd"
	httpadapter "pickup/internal/adapters/in/http"
	"pickup/internal/adapters/out/assets"
	"pickup/internal/adapters/out/notifier"
	"pickup/internal/adapters/out/postgres/historyrepo"
	"pickup/internal/adapters/out/postgres/otprepo"
	"pickup/internal/adapters/out/postgres/parcelrepo"
	"pickup/internal/adapters/out/postgres/referencerepo"
	"pickup/internal/adapters/out/postgres/reportrepo"
	"pickup/internal/generated/servers"
	"pickup/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	dispatcher, err := notifier.NewKafkaNotificationDispatcher(
		[]string{configs.KafkaHost}, configs.KafkaNotificationsTopic)
	if err != nil {
		log.Fatalf("Failed to connect to Kafka: %v", err)
	}
	defer dispatcher.Close()

	assetStore, err := assets.NewFileAssetStore(configs.AssetsDir)
	if err != nil {
		log.Fatalf("Failed to prepare asset store: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, dispatcher, assetStore)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		OtpLength:               goDotEnvIntVariable("OTP_LENGTH"),
		OtpValidMinutes:         goDotEnvIntVariable("OTP_VALID_MINUTES"),
		StorageExpirationDays:   goDotEnvIntVariable("STORAGE_EXPIRATION_DAYS"),
		StorageWarningDays:      goDotEnvIntVariable("STORAGE_WARNING_DAYS"),
		SweepCronSpec:           goDotEnvVariable("SWEEP_CRON_SPEC"),
		CheckinBaseURL:          goDotEnvVariable("CHECKIN_BASE_URL"),
		AssetsDir:               goDotEnvVariable("ASSETS_DIR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&referencerepo.PickupLocationDTO{},
		&referencerepo.CourierDTO{},
		&parcelrepo.ParcelDTO{},
		&otprepo.OtpDTO{},
		&historyrepo.EventDTO{},
		&reportrepo.ReportDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	sweepHandler, err := app.CreateCheckStorageExpirationCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create storage expiration handler: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(sweepHandler, configs.SweepCronSpec, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	qrHandler, err := app.CreateGenerateQrCheckinCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create QR check-in handler: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateAddParcelCommandHandler(),
		app.CreateGeneratePickupOtpCommandHandler(),
		app.CreateConfirmPickupCommandHandler(),
		app.CreateFlagParcelProblemCommandHandler(),
		app.CreateResumeParcelCommandHandler(),
		app.CreateSubmitCustomerReportCommandHandler(),
		app.CreateLinkCustomerReportCommandHandler(),
		qrHandler,
		app.CreateGetParcelDetailsQueryHandler(),
		app.CreateGetParcelHistoryQueryHandler(),
		app.CreateGetReportFeedQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
