package queries

import (
	"errors"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/guard"
)

var ErrGetStockRecordQueryIsNotConstructed = errors.New(
	"GetStockRecordQuery must be created via NewGetStockRecordQuery constructor",
)

// GetStockRecordQuery retrieves a single stock record by its identifier.
type GetStockRecordQuery struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockRecordQuery creates a query for one stock record.
func NewGetStockRecordQuery(recordID kernel.UUID) (GetStockRecordQuery, error) {
	if err := recordID.Validate(); err != nil {
		return GetStockRecordQuery{}, err
	}

	return GetStockRecordQuery{
		recordID: recordID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockRecordQueryIsNotConstructed if validation fails.
func (q GetStockRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetStockRecordQueryIsNotConstructed)
}

// RecordID returns the requested record's identifier.
func (q GetStockRecordQuery) RecordID() kernel.UUID {
	return q.recordID
}

// StockRecordResponse represents one stock ledger entry.
type StockRecordResponse struct {
	ID           kernel.UUID
	ProductID    kernel.UUID
	LocationID   kernel.UUID
	AreaID       *kernel.UUID
	Quantity     int
	BatchNumber  string
	ExpiryDate   *time.Time
	CostPerUnit  *float64
	ReceivedDate *time.Time
}
