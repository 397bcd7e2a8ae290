package order

import (
	"errors"
	"math"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item represents a single order line: a product, a quantity and the unit
// price agreed at order time. Line items are owned exclusively by their Order
// and are immutable after the order is created; the picked and packed
// counters are mutated by fulfillment flows outside this core.
//
// Item maintains the invariant subtotal == quantity * unitPrice, fixed at
// construction time.
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// orderID is the owning order, set when the item is attached
	orderID kernel.UUID

	// productID references the ordered product (existence checked externally)
	productID kernel.UUID

	// quantity is the ordered amount (must be >= 1)
	quantity int

	// unitPrice is the agreed price per unit (must be >= 0)
	unitPrice float64

	// subtotal is quantity * unitPrice, computed at construction
	subtotal float64

	// quantityPicked and quantityPacked are fulfillment counters,
	// zero at creation
	quantityPicked int
	quantityPacked int

	// notes carries optional free-form remarks for the line
	notes string

	// isConstructed ensures the item was created via a factory method
	isConstructed bool
}

// NewItem creates a new order line with validation. The subtotal is computed
// as quantity * unitPrice and never recomputed afterwards. The picked and
// packed counters start at zero.
//
// Returns an error if the IDs are invalid, quantity < 1 or unitPrice < 0.
func NewItem(id, productID kernel.UUID, quantity int, unitPrice float64, notes string) (*Item, error) {
	item := &Item{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.subtotal = float64(item.quantity) * item.unitPrice
	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including the stored
// subtotal and fulfillment counters. Used by repositories only.
func RestoreItem(
	id, orderID, productID kernel.UUID,
	quantity int,
	unitPrice, subtotal float64,
	quantityPicked, quantityPacked int,
	notes string,
) (*Item, error) {
	item := &Item{
		orderID:        orderID,
		subtotal:       subtotal,
		quantityPicked: quantityPicked,
		quantityPacked: quantityPacked,
		notes:          notes,
		isConstructed:  true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through a
// factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
// Returns the zero UUID for items not yet attached to an order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the ordered product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered amount.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the agreed price per unit.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity * unitPrice as computed at construction.
func (i *Item) Subtotal() float64 {
	return i.subtotal
}

// QuantityPicked returns how many units have been picked so far.
func (i *Item) QuantityPicked() int {
	return i.quantityPicked
}

// QuantityPacked returns how many units have been packed so far.
func (i *Item) QuantityPacked() int {
	return i.quantityPacked
}

// Notes returns the optional free-form remarks for the line.
func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, math.MaxFloat64)
	}
	i.unitPrice = unitPrice
	return nil
}

// attachTo binds the item to its owning order. Called by the Order aggregate
// when the order is created.
func (i *Item) attachTo(orderID kernel.UUID) {
	i.orderID = orderID
}
