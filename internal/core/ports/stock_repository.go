package ports

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for stock records.
// It owns the ledger's authoritative non-negative guard: AdjustQuantity is a
// single conditional write that both checks and applies the delta.
type StockRepository interface {
	// Add persists a new stock record. The caller checks the
	// (product, location, area) uniqueness rule first; a backing unique
	// constraint catches races.
	Add(ctx context.Context, aggregate *stock.Record) error

	// Get retrieves a stock record by identifier.
	Get(ctx context.Context, id kernel.UUID) (*stock.Record, error)

	// FindByTriple retrieves the record for a (product, location, area)
	// triple. Returns an ObjectNotFoundError when no record exists.
	FindByTriple(ctx context.Context, productID, locationID kernel.UUID, areaID *kernel.UUID) (*stock.Record, error)

	// AdjustQuantity applies delta to the record's quantity as a single
	// conditional write equivalent to
	//
	//	UPDATE ... SET quantity = quantity + delta
	//	WHERE id = ? AND quantity + delta >= 0
	//
	// and returns the number of affected rows. Zero rows means either the
	// record is gone or a concurrent adjustment won the race; the caller
	// distinguishes the two.
	AdjustQuantity(ctx context.Context, id kernel.UUID, delta int) (int64, error)
}

// StockMovementRepository defines the persistence contract for the
// append-only movement journal.
type StockMovementRepository interface {
	// Add persists a new journal row. Movements are never updated or
	// deleted.
	Add(ctx context.Context, aggregate *stock.Movement) error
}
