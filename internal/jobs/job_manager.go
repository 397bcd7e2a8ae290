package jobs

import (
	"fmt"
	"log/slog"

	"librestock/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiredStockJob *ExpiredStockJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expiredStockHandler queries.GetExpiredStockQueryHandler,
	expiredStockSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expiredStockJob: NewExpiredStockJob(expiredStockHandler, expiredStockSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiredStockJob.Start(); err != nil {
		return fmt.Errorf("failed to start expired stock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expiredStockJob.Stop()
}
