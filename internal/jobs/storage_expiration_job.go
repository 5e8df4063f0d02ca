package jobs

import (
	"context"
	"log/slog"
	"time"

	"pickup/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StorageExpirationJob manages the scheduled storage-expiration sweep.
// Each run warns parcels approaching the storage limit and expires the
// ones that exceeded it.
type StorageExpirationJob struct {
	handler  commands.CheckStorageExpirationCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStorageExpirationJob creates a new job for the storage-expiration sweep.
// cronSpec uses the six-field format with seconds, e.g. "0 0 * * * *" for hourly.
func NewStorageExpirationJob(
	handler commands.CheckStorageExpirationCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *StorageExpirationJob {
	return &StorageExpirationJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "storage_expiration_job"),
	}
}

// Start schedules the sweep according to the configured cron expression.
func (j *StorageExpirationJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCheckStorageExpirationCommand(time.Now(), "system")
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Storage expiration sweep could not be constructed", "error", cmdErr)
			return
		}

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// The sweep keeps going after per-parcel failures, so a partial
			// result is still worth reporting.
			j.logger.ErrorContext(ctx, "Storage expiration sweep finished with errors",
				"processed", result.Processed,
				"warned", result.Warned,
				"expired", result.Expired,
				"error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Storage expiration sweep finished",
			"processed", result.Processed,
			"warned", result.Warned,
			"expired", result.Expired)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Storage expiration job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the storage expiration job.
func (j *StorageExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Storage expiration job stopped")
}
