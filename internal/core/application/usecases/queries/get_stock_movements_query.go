package queries

import (
	"errors"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/guard"
)

var ErrGetStockMovementsQueryIsNotConstructed = errors.New(
	"GetStockMovementsQuery must be created via NewGetStockMovementsQuery constructor",
)

// GetStockMovementsQuery retrieves a product's movement journal, newest
// first.
type GetStockMovementsQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockMovementsQuery creates a query for a product's movement history.
func NewGetStockMovementsQuery(productID kernel.UUID) (GetStockMovementsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetStockMovementsQuery{}, err
	}

	return GetStockMovementsQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockMovementsQueryIsNotConstructed if validation fails.
func (q GetStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockMovementsQueryIsNotConstructed)
}

// ProductID returns the product identifier being queried.
func (q GetStockMovementsQuery) ProductID() kernel.UUID {
	return q.productID
}

// StockMovementResponse represents one row of the movement journal.
type StockMovementResponse struct {
	ID              kernel.UUID
	ProductID       kernel.UUID
	FromLocationID  *kernel.UUID
	ToLocationID    *kernel.UUID
	Quantity        int
	Reason          string
	OrderID         *kernel.UUID
	ReferenceNumber string
	CostPerUnit     *float64
	Notes           string
	UserID          kernel.UUID
	CreatedAt       time.Time
}
