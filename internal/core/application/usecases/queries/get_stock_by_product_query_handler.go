package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStockByProductQueryHandler lists a product's stock records across all
// locations, ordered by location for stable output.
type GetStockByProductQueryHandler struct {
	db *gorm.DB
}

// NewGetStockByProductQueryHandler creates a handler for per-product stock queries.
func NewGetStockByProductQueryHandler(db *gorm.DB) GetStockByProductQueryHandler {
	return GetStockByProductQueryHandler{db: db}
}

// Handle executes the query. An unknown product yields an empty slice, not an
// error.
func (h GetStockByProductQueryHandler) Handle(
	ctx context.Context,
	query GetStockByProductQuery,
) ([]StockRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]StockRecordResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(
		stockRecordSelect+`
		WHERE product_id = ?
		ORDER BY location_id, area_id`,
		query.ProductID().String(),
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
