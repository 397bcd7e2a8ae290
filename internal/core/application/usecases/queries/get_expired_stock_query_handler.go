package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetExpiredStockQueryHandler lists stock records that are past their expiry
// date and still hold stock. Records without an expiry date never expire.
type GetExpiredStockQueryHandler struct {
	db *gorm.DB
}

// NewGetExpiredStockQueryHandler creates a handler for expired stock queries.
func NewGetExpiredStockQueryHandler(db *gorm.DB) GetExpiredStockQueryHandler {
	return GetExpiredStockQueryHandler{db: db}
}

// Handle executes the query, oldest expiry first.
func (h GetExpiredStockQueryHandler) Handle(
	ctx context.Context,
	query GetExpiredStockQuery,
) ([]StockRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]StockRecordResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(
		stockRecordSelect+`
		WHERE expiry_date IS NOT NULL
		  AND expiry_date < ?
		  AND quantity > 0
		ORDER BY expiry_date`,
		query.AsOf(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		record, scanErr := scanStockRecord(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
