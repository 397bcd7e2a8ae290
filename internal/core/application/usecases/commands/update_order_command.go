package commands

import (
	"errors"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order's mutable
// fields: delivery address, delivery deadline, yacht name, special
// instructions and assignment. Status and totals are never touched by this
// command. Fields are opted in through the With methods; an empty patch is a
// no-op at the handler level.
//
// Example:
//
//	cmd, err := NewUpdateOrderCommand(orderID, actorID)
//	if err != nil {
//	    return err
//	}
//	cmd = cmd.WithDeliveryAddress("Marina Port Vell, Berth 14").
//	    WithAssignedTo(&provisionerID)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	deliveryAddress     *string
	deliveryDeadline    *time.Time
	yachtName           *string
	specialInstructions *string
	assignedTo          *kernel.UUID
	assignedToProvided  bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an empty patch for the given order.
func NewUpdateOrderCommand(orderID, actorID kernel.UUID) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// WithDeliveryAddress includes a new delivery address in the patch.
func (c UpdateOrderCommand) WithDeliveryAddress(address string) UpdateOrderCommand {
	c.deliveryAddress = &address
	return c
}

// WithDeliveryDeadline includes a new delivery deadline in the patch.
func (c UpdateOrderCommand) WithDeliveryDeadline(deadline time.Time) UpdateOrderCommand {
	c.deliveryDeadline = &deadline
	return c
}

// WithYachtName includes a new yacht name in the patch.
func (c UpdateOrderCommand) WithYachtName(name string) UpdateOrderCommand {
	c.yachtName = &name
	return c
}

// WithSpecialInstructions includes new handling instructions in the patch.
func (c UpdateOrderCommand) WithSpecialInstructions(instructions string) UpdateOrderCommand {
	c.specialInstructions = &instructions
	return c
}

// WithAssignedTo includes an assignment change in the patch. Passing nil
// clears the assignment.
func (c UpdateOrderCommand) WithAssignedTo(userID *kernel.UUID) UpdateOrderCommand {
	c.assignedTo = userID
	c.assignedToProvided = true
	return c
}

// IsEmpty reports whether the patch contains no field changes.
func (c UpdateOrderCommand) IsEmpty() bool {
	return c.deliveryAddress == nil &&
		c.deliveryDeadline == nil &&
		c.yachtName == nil &&
		c.specialInstructions == nil &&
		!c.assignedToProvided
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user's identifier.
func (c UpdateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// DeliveryAddress returns the new delivery address, or nil when unchanged.
func (c UpdateOrderCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

// DeliveryDeadline returns the new delivery deadline, or nil when unchanged.
func (c UpdateOrderCommand) DeliveryDeadline() *time.Time {
	return c.deliveryDeadline
}

// YachtName returns the new yacht name, or nil when unchanged.
func (c UpdateOrderCommand) YachtName() *string {
	return c.yachtName
}

// SpecialInstructions returns the new instructions, or nil when unchanged.
func (c UpdateOrderCommand) SpecialInstructions() *string {
	return c.specialInstructions
}

// AssignedTo returns the new assignee and whether the patch includes an
// assignment change at all.
func (c UpdateOrderCommand) AssignedTo() (*kernel.UUID, bool) {
	return c.assignedTo, c.assignedToProvided
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
