package queries

import (
	"context"
	"database/sql"
	"errors"

	"librestock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStockRecordQueryHandler reads one stock record from the database.
type GetStockRecordQueryHandler struct {
	db *gorm.DB
}

// NewGetStockRecordQueryHandler creates a handler for single record queries.
func NewGetStockRecordQueryHandler(db *gorm.DB) GetStockRecordQueryHandler {
	return GetStockRecordQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no record
// has the requested identifier.
func (h GetStockRecordQueryHandler) Handle(
	ctx context.Context,
	query GetStockRecordQuery,
) (StockRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return StockRecordResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		stockRecordSelect+` WHERE id = ?`,
		query.RecordID().String(),
	).Row()

	response, err := scanStockRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return StockRecordResponse{}, errs.NewObjectNotFoundError("stockRecord", query.RecordID())
	}
	if err != nil {
		return StockRecordResponse{}, err
	}

	return response, nil
}
