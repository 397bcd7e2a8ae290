package order

import (
	"errors"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order represents a client order in the system. It is the aggregate root that
// owns the order's line items and its lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Status transitions follow the fixed transition table in Status
//   - TotalAmount equals the sum of its items' subtotals as computed at creation
//   - The confirmation, ship and delivery timestamps are stamped exactly once
//     when the corresponding status is first entered and never cleared
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the unique, human-readable, date-scoped number
	orderNumber string

	// clientID references the ordering client (existence checked externally)
	clientID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// deliveryAddress is the destination for the order
	deliveryAddress string

	// deliveryDeadline is the optional requested delivery date
	deliveryDeadline *time.Time

	// yachtName optionally names the vessel the order is provisioned for
	yachtName string

	// specialInstructions carries optional delivery remarks
	specialInstructions string

	// totalAmount is the sum of all item subtotals, fixed at creation
	totalAmount float64

	// assignedTo optionally references the user handling the order
	assignedTo *kernel.UUID

	// createdBy references the user who created the order
	createdBy kernel.UUID

	// lifecycle timestamps, stamped once on first entry into the status
	confirmedAt *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time

	// items are the order lines, in insertion order
	items []*Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Draft status with validation. This is the
// primary way to create an order; the order number must already have been
// allocated by the order number allocator.
//
// The items are attached to the order and the total amount is computed as the
// sum of their subtotals. At least one item is required.
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter or item is invalid
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	clientID, createdBy kernel.UUID,
	deliveryAddress string,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setClientID(clientID),
		o.setCreatedBy(createdBy),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	if err := o.setItems(items); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with all stored fields.
// Used by repositories only. The stored total amount is kept as-is; it is not
// recomputed from the items.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	clientID, createdBy kernel.UUID,
	status Status,
	deliveryAddress string,
	deliveryDeadline *time.Time,
	yachtName, specialInstructions string,
	totalAmount float64,
	assignedTo *kernel.UUID,
	confirmedAt, shippedAt, deliveredAt *time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		deliveryDeadline:    deliveryDeadline,
		yachtName:           yachtName,
		specialInstructions: specialInstructions,
		totalAmount:         totalAmount,
		assignedTo:          assignedTo,
		confirmedAt:         confirmedAt,
		shippedAt:           shippedAt,
		deliveredAt:         deliveredAt,
		items:               items,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setClientID(clientID),
		o.setCreatedBy(createdBy),
		o.setStatus(status),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable, date-scoped order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// ClientID returns the ordering client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryDeadline returns the optional requested delivery date.
func (o *Order) DeliveryDeadline() *time.Time {
	return o.deliveryDeadline
}

// YachtName returns the optional vessel name.
func (o *Order) YachtName() string {
	return o.yachtName
}

// SpecialInstructions returns the optional delivery remarks.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// TotalAmount returns the sum of item subtotals computed at creation.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// AssignedTo returns the handling user's ID, or nil when unassigned.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// CreatedBy returns the creating user's ID.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// ConfirmedAt returns when the order first entered Confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// ShippedAt returns when the order first entered Shipped, or nil.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order first entered Delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Items returns the order lines in insertion order.
func (o *Order) Items() []*Item {
	return o.items
}

// IsDraft reports whether the order is still in Draft status.
// Only draft orders may be deleted.
func (o *Order) IsDraft() bool {
	return o.status == Draft
}

// ChangeStatus moves the order along the status transition table.
//
// This method enforces the following business rules:
//   - The (current, next) pair must be an edge of the transition table;
//     any other pair fails with an invalid-state error naming both states
//   - Entering Confirmed, Shipped or Delivered for the first time stamps
//     the corresponding timestamp; stamps are never overwritten or cleared
//
// Returns:
//   - nil on successful transition
//   - error if the transition is not allowed
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus

	now := time.Now().UTC()
	switch newStatus {
	case Confirmed:
		if o.confirmedAt == nil {
			o.confirmedAt = &now
		}
	case Shipped:
		if o.shippedAt == nil {
			o.shippedAt = &now
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
		}
	}

	return nil
}

// ChangeDeliveryAddress updates the destination address.
// The address must not be empty.
func (o *Order) ChangeDeliveryAddress(address string) error {
	return o.setDeliveryAddress(address)
}

// ChangeDeliveryDeadline updates the optional requested delivery date.
// A nil deadline clears it.
func (o *Order) ChangeDeliveryDeadline(deadline *time.Time) {
	o.deliveryDeadline = deadline
}

// ChangeYachtName updates the optional vessel name.
func (o *Order) ChangeYachtName(name string) {
	o.yachtName = name
}

// ChangeSpecialInstructions updates the optional delivery remarks.
func (o *Order) ChangeSpecialInstructions(instructions string) {
	o.specialInstructions = instructions
}

// AssignTo sets or clears the user handling the order.
func (o *Order) AssignTo(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	o.assignedTo = userID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

// setItems validates and attaches the line items, computing the total amount
// as the sum of their subtotals.
func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		item.attachTo(o.id)
		total += item.Subtotal()
	}

	o.items = items
	o.totalAmount = total
	return nil
}
