// Package jobs provides scheduled background tasks for the provisioning
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ExpiredStockJob - Scans the stock ledger for expired batches still on
// hand and reports them for removal.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expiredStockHandler, "0 6 * * *", logger)
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
// The expired stock job takes a standard five-field cron expression; a daily
// early-morning sweep is enough since expiry dates have day granularity.
//
// # Error Handling
//
// - Scan failures are logged and retried on the next tick
// - Failed job starts surface as errors from StartAll
package jobs
