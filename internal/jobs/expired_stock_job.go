package jobs

import (
	"context"
	"log/slog"
	"time"

	"librestock/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ExpiredStockJob periodically scans the ledger for stock whose expiry date
// has passed while units remain on hand, and reports every hit so the
// provisioning team can pull it from the shelves.
type ExpiredStockJob struct {
	handler  queries.GetExpiredStockQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewExpiredStockJob creates a new expired stock scan running on the given
// cron schedule, e.g. "0 6 * * *" for a daily sweep at 06:00.
func NewExpiredStockJob(
	handler queries.GetExpiredStockQueryHandler,
	schedule string,
	logger *slog.Logger,
) *ExpiredStockJob {
	return &ExpiredStockJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "expired_stock_job"),
	}
}

// Start schedules the expired stock scan.
func (j *ExpiredStockJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expired stock job started", "schedule", j.schedule)
	return nil
}

// Stop stops the expired stock job.
func (j *ExpiredStockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expired stock job stopped")
}

func (j *ExpiredStockJob) run() {
	ctx := context.Background()
	asOf := time.Now().UTC()

	rows, err := j.handler.Handle(ctx, queries.NewGetExpiredStockQuery(asOf))
	if err != nil {
		j.logger.ErrorContext(ctx, "Expired stock scan failed", "error", err)
		return
	}

	if len(rows) == 0 {
		j.logger.InfoContext(ctx, "Expired stock scan found nothing", "asOf", asOf)
		return
	}

	for _, row := range rows {
		j.logger.WarnContext(ctx, "Expired stock on hand",
			"recordId", row.ID.String(),
			"productId", row.ProductID.String(),
			"locationId", row.LocationID.String(),
			"quantity", row.Quantity,
			"expiryDate", row.ExpiryDate,
			"batchNumber", row.BatchNumber,
		)
	}

	j.logger.InfoContext(ctx, "Expired stock scan finished", "asOf", asOf, "records", len(rows))
}
