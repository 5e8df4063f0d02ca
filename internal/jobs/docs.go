// Package jobs provides scheduled background tasks for the pickup point service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. StorageExpirationJob - Runs on a configurable schedule to warn parcels
// approaching the storage limit and expire the ones that exceeded it
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(checkStorageExpirationHandler, cronSpec, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule comes from configuration as a six-field cron expression
// with seconds, e.g. "0 0 * * * *" for an hourly run. The sweep itself is a
// pure function of the wall clock it receives, so the schedule only decides
// how promptly warnings and expirations are observed.
//
// # Error Handling
//
// The sweep continues past per-parcel failures and reports a partial summary;
// the job logs the summary together with the joined error.
package jobs
