package queries

import (
	"errors"
	"time"

	"librestock/internal/pkg/guard"
)

var ErrGetExpiredStockQueryIsNotConstructed = errors.New(
	"GetExpiredStockQuery must be created via NewGetExpiredStockQuery constructor",
)

// GetExpiredStockQuery retrieves stock records whose expiry date has passed
// and that still hold a positive quantity. Used by the expired stock scan job.
type GetExpiredStockQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetExpiredStockQuery creates a query for stock expired as of the given
// instant.
func NewGetExpiredStockQuery(asOf time.Time) GetExpiredStockQuery {
	return GetExpiredStockQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetExpiredStockQueryIsNotConstructed if validation fails.
func (q GetExpiredStockQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiredStockQueryIsNotConstructed)
}

// AsOf returns the instant expiry is evaluated against.
func (q GetExpiredStockQuery) AsOf() time.Time {
	return q.asOf
}
