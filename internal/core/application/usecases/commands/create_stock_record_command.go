package commands

import (
	"errors"
	"math"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/errs"
	"librestock/internal/pkg/guard"
)

var ErrCreateStockRecordCommandIsNotConstructed = errors.New(
	"CreateStockRecordCommand must be created via NewCreateStockRecordCommand constructor",
)

// CreateStockRecordCommand represents a request to open a stock ledger entry
// for a product at a location, optionally narrowed to a storage area. At most
// one entry may exist per (product, location, area) triple; the handler
// enforces that.
//
// Example:
//
//	cmd, err := NewCreateStockRecordCommand(productID, locationID, nil, 50, actorID)
//	if err != nil {
//	    return err
//	}
//	cmd = cmd.WithBatchNumber("LOT-2026-113")
type CreateStockRecordCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	locationID kernel.UUID
	areaID     *kernel.UUID
	quantity   int
	actorID    kernel.UUID

	batchNumber  string
	expiryDate   *time.Time
	costPerUnit  *float64
	receivedDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateStockRecordCommand creates a command to open a stock ledger entry.
// Validates that the identifiers are valid and quantity is not negative.
func NewCreateStockRecordCommand(
	productID, locationID kernel.UUID,
	areaID *kernel.UUID,
	quantity int,
	actorID kernel.UUID,
) (CreateStockRecordCommand, error) {
	cmd := CreateStockRecordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setLocationID(locationID),
		cmd.setAreaID(areaID),
		cmd.setQuantity(quantity),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateStockRecordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStockRecordCommandIsNotConstructed if validation fails.
func (c CreateStockRecordCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockRecordCommandIsNotConstructed)
}

// WithBatchNumber sets the optional batch number.
func (c CreateStockRecordCommand) WithBatchNumber(batchNumber string) CreateStockRecordCommand {
	c.batchNumber = batchNumber
	return c
}

// WithExpiryDate sets the optional expiry date.
func (c CreateStockRecordCommand) WithExpiryDate(expiryDate time.Time) CreateStockRecordCommand {
	c.expiryDate = &expiryDate
	return c
}

// WithCostPerUnit sets the optional unit cost.
func (c CreateStockRecordCommand) WithCostPerUnit(costPerUnit float64) CreateStockRecordCommand {
	c.costPerUnit = &costPerUnit
	return c
}

// WithReceivedDate sets the optional received date.
func (c CreateStockRecordCommand) WithReceivedDate(receivedDate time.Time) CreateStockRecordCommand {
	c.receivedDate = &receivedDate
	return c
}

// ProductID returns the product identifier.
func (c CreateStockRecordCommand) ProductID() kernel.UUID {
	return c.productID
}

// LocationID returns the location identifier.
func (c CreateStockRecordCommand) LocationID() kernel.UUID {
	return c.locationID
}

// AreaID returns the optional storage area identifier.
func (c CreateStockRecordCommand) AreaID() *kernel.UUID {
	return c.areaID
}

// Quantity returns the initial stock quantity.
func (c CreateStockRecordCommand) Quantity() int {
	return c.quantity
}

// ActorID returns the acting user's identifier.
func (c CreateStockRecordCommand) ActorID() kernel.UUID {
	return c.actorID
}

// BatchNumber returns the optional batch number.
func (c CreateStockRecordCommand) BatchNumber() string {
	return c.batchNumber
}

// ExpiryDate returns the optional expiry date.
func (c CreateStockRecordCommand) ExpiryDate() *time.Time {
	return c.expiryDate
}

// CostPerUnit returns the optional unit cost.
func (c CreateStockRecordCommand) CostPerUnit() *float64 {
	return c.costPerUnit
}

// ReceivedDate returns the optional received date.
func (c CreateStockRecordCommand) ReceivedDate() *time.Time {
	return c.receivedDate
}

func (c *CreateStockRecordCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateStockRecordCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateStockRecordCommand) setAreaID(areaID *kernel.UUID) error {
	if areaID == nil {
		return nil
	}
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *CreateStockRecordCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}

	c.quantity = quantity
	return nil
}

func (c *CreateStockRecordCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
