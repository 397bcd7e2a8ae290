// Package queries contains read-only operations for the read side of the
// CQRS split. Query handlers bypass the domain model and read projections
// straight from the database.
package queries

import (
	"errors"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//	found, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents one order with its line items.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	OrderNumber         string
	ClientID            kernel.UUID
	Status              string
	DeliveryAddress     string
	DeliveryDeadline    *time.Time
	YachtName           string
	SpecialInstructions string
	TotalAmount         float64
	AssignedTo          *kernel.UUID
	CreatedBy           kernel.UUID
	ConfirmedAt         *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	Items               []GetOrderItemResponse
}

// GetOrderItemResponse represents one line item of an order.
type GetOrderItemResponse struct {
	ID             kernel.UUID
	ProductID      kernel.UUID
	Quantity       int
	UnitPrice      float64
	Subtotal       float64
	QuantityPicked int
	QuantityPacked int
	Notes          string
}
