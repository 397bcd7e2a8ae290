package ports

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items are always persisted and deleted together:
// readers never observe a header without its items or a partial deletion.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items as a
	// single atomic unit.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order header. Line items are
	// immutable and not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its line items as a single atomic unit.
	// Callers are responsible for checking the draft-only rule first.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountByNumberPrefix counts orders whose order number starts with the
	// given prefix. Used by the order number allocator.
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)
}
