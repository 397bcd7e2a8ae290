package commands

import (
	"errors"
	"math"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/pkg/errs"
	"librestock/internal/pkg/guard"
)

var (
	ErrRecordStockMovementCommandIsNotConstructed = errors.New(
		"RecordStockMovementCommand must be created via NewRecordStockMovementCommand constructor",
	)
	ErrMovementLocationIsRequired = errors.New(
		"at least one of fromLocationID and toLocationID is required",
	)
)

// RecordStockMovementCommand represents a request to append a row to the
// stock movement journal: product, quantity, direction and business reason.
//
// Example:
//
//	cmd, err := NewRecordStockMovementCommand(
//	    productID, &warehouseID, &quayID, 12, stock.InternalTransfer, actorID)
//	if err != nil {
//	    return err
//	}
type RecordStockMovementCommand struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	fromLocationID *kernel.UUID
	toLocationID   *kernel.UUID
	quantity       int
	reason         stock.Reason
	actorID        kernel.UUID

	orderID         *kernel.UUID
	referenceNumber string
	costPerUnit     *float64
	notes           string

	guard guard.ConstructorGuard
}

// NewRecordStockMovementCommand creates a command to append a journal row.
// Requires a positive quantity, a known reason and at least one of the two
// location endpoints.
func NewRecordStockMovementCommand(
	productID kernel.UUID,
	fromLocationID, toLocationID *kernel.UUID,
	quantity int,
	reason stock.Reason,
	actorID kernel.UUID,
) (RecordStockMovementCommand, error) {
	cmd := RecordStockMovementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setLocations(fromLocationID, toLocationID),
		cmd.setQuantity(quantity),
		cmd.setReason(reason),
		cmd.setActorID(actorID),
	); err != nil {
		return RecordStockMovementCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordStockMovementCommandIsNotConstructed if validation fails.
func (c RecordStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordStockMovementCommandIsNotConstructed)
}

// WithOrderID links the movement to an order.
func (c RecordStockMovementCommand) WithOrderID(orderID kernel.UUID) RecordStockMovementCommand {
	c.orderID = &orderID
	return c
}

// WithReferenceNumber sets an external reference such as a supplier invoice.
func (c RecordStockMovementCommand) WithReferenceNumber(reference string) RecordStockMovementCommand {
	c.referenceNumber = reference
	return c
}

// WithCostPerUnit sets the unit cost observed for this movement.
func (c RecordStockMovementCommand) WithCostPerUnit(costPerUnit float64) RecordStockMovementCommand {
	c.costPerUnit = &costPerUnit
	return c
}

// WithNotes sets a free-form note.
func (c RecordStockMovementCommand) WithNotes(notes string) RecordStockMovementCommand {
	c.notes = notes
	return c
}

// ProductID returns the moved product's identifier.
func (c RecordStockMovementCommand) ProductID() kernel.UUID {
	return c.productID
}

// FromLocationID returns the origin location, or nil for stock entering the
// system.
func (c RecordStockMovementCommand) FromLocationID() *kernel.UUID {
	return c.fromLocationID
}

// ToLocationID returns the destination location, or nil for stock leaving
// the system.
func (c RecordStockMovementCommand) ToLocationID() *kernel.UUID {
	return c.toLocationID
}

// Quantity returns the moved quantity.
func (c RecordStockMovementCommand) Quantity() int {
	return c.quantity
}

// Reason returns the business reason for the movement.
func (c RecordStockMovementCommand) Reason() stock.Reason {
	return c.reason
}

// ActorID returns the acting user's identifier.
func (c RecordStockMovementCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the linked order, if any.
func (c RecordStockMovementCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// ReferenceNumber returns the external reference, if any.
func (c RecordStockMovementCommand) ReferenceNumber() string {
	return c.referenceNumber
}

// CostPerUnit returns the observed unit cost, if any.
func (c RecordStockMovementCommand) CostPerUnit() *float64 {
	return c.costPerUnit
}

// Notes returns the free-form note, if any.
func (c RecordStockMovementCommand) Notes() string {
	return c.notes
}

func (c *RecordStockMovementCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RecordStockMovementCommand) setLocations(from, to *kernel.UUID) error {
	if from == nil && to == nil {
		return ErrMovementLocationIsRequired
	}
	if from != nil {
		if err := from.Validate(); err != nil {
			return err
		}
	}
	if to != nil {
		if err := to.Validate(); err != nil {
			return err
		}
	}

	c.fromLocationID = from
	c.toLocationID = to
	return nil
}

func (c *RecordStockMovementCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}

	c.quantity = quantity
	return nil
}

func (c *RecordStockMovementCommand) setReason(reason stock.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}

func (c *RecordStockMovementCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
