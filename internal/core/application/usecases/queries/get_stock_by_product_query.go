package queries

import (
	"errors"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/guard"
)

var ErrGetStockByProductQueryIsNotConstructed = errors.New(
	"GetStockByProductQuery must be created via NewGetStockByProductQuery constructor",
)

// GetStockByProductQuery retrieves every stock record holding a product,
// across all locations and areas.
//
// Example:
//
//	query, err := NewGetStockByProductQuery(productID)
//	if err != nil {
//	    return err
//	}
//	records, err := NewGetStockByProductQueryHandler(db).Handle(ctx, query)
type GetStockByProductQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockByProductQuery creates a query for a product's stock records.
func NewGetStockByProductQuery(productID kernel.UUID) (GetStockByProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetStockByProductQuery{}, err
	}

	return GetStockByProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockByProductQueryIsNotConstructed if validation fails.
func (q GetStockByProductQuery) Validate() error {
	return q.guard.Validate(ErrGetStockByProductQueryIsNotConstructed)
}

// ProductID returns the product identifier being queried.
func (q GetStockByProductQuery) ProductID() kernel.UUID {
	return q.productID
}
