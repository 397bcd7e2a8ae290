package commands

import (
	"errors"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderItemsAreRequired     = errors.New("at least one order item is required")
)

// OrderItemInput carries the caller-supplied data for one order line item.
// Quantity and price bounds are enforced by the order aggregate.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
	Notes     string
}

// CreateOrderCommand represents a request to register a new provisioning order.
// Encapsulates the client, the delivery details and the line items; the order
// number and total amount are computed by the handler, not supplied here.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(clientID, actorID, "Marina Port Vell, Berth 12",
//	    []OrderItemInput{{ProductID: productID, Quantity: 2, UnitPrice: 10}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID        kernel.UUID
	createdBy       kernel.UUID
	deliveryAddress string
	items           []OrderItemInput

	deliveryDeadline    *time.Time
	yachtName           string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the client and acting user IDs are valid, the delivery
// address is not empty and at least one item is present. Per-item bounds are
// checked later by the order aggregate.
func NewCreateOrderCommand(
	clientID, createdBy kernel.UUID,
	deliveryAddress string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setCreatedBy(createdBy),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// WithDeliveryDeadline sets the optional delivery deadline.
func (c CreateOrderCommand) WithDeliveryDeadline(deadline time.Time) CreateOrderCommand {
	c.deliveryDeadline = &deadline
	return c
}

// WithYachtName sets the optional yacht name.
func (c CreateOrderCommand) WithYachtName(name string) CreateOrderCommand {
	c.yachtName = name
	return c
}

// WithSpecialInstructions sets the optional handling instructions.
func (c CreateOrderCommand) WithSpecialInstructions(instructions string) CreateOrderCommand {
	c.specialInstructions = instructions
	return c
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// CreatedBy returns the acting user's identifier.
func (c CreateOrderCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// DeliveryDeadline returns the optional delivery deadline.
func (c CreateOrderCommand) DeliveryDeadline() *time.Time {
	return c.deliveryDeadline
}

// YachtName returns the optional yacht name.
func (c CreateOrderCommand) YachtName() string {
	return c.yachtName
}

// SpecialInstructions returns the optional handling instructions.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
