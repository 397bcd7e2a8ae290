package stock

import (
	"errors"
	"fmt"
	"math"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/errs"
)

// ErrMovementIsNotConstructed is returned when a Movement instance was not
// created through the NewMovement or RestoreMovement factory methods.
var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement or RestoreMovement constructor")

// ErrMovementHasNoLocation is returned when neither a source nor a destination
// location is given.
var ErrMovementHasNoLocation = errors.New("movement requires a source or a destination location")

// Reason classifies why stock moved. It is recorded verbatim in the movement
// journal.
type Reason string

const (
	PurchaseReceive  Reason = "PURCHASE_RECEIVE"
	Sale             Reason = "SALE"
	Waste            Reason = "WASTE"
	Damaged          Reason = "DAMAGED"
	Expired          Reason = "EXPIRED"
	CountCorrection  Reason = "COUNT_CORRECTION"
	ReturnFromClient Reason = "RETURN_FROM_CLIENT"
	ReturnToSupplier Reason = "RETURN_TO_SUPPLIER"
	InternalTransfer Reason = "INTERNAL_TRANSFER"
)

func validReasons() map[Reason]struct{} {
	return map[Reason]struct{}{
		PurchaseReceive:  {},
		Sale:             {},
		Waste:            {},
		Damaged:          {},
		Expired:          {},
		CountCorrection:  {},
		ReturnFromClient: {},
		ReturnToSupplier: {},
		InternalTransfer: {},
	}
}

// Validate checks if the Reason is one of the defined movement reasons.
func (r Reason) Validate() error {
	if _, ok := validReasons()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%q is not a valid movement reason", string(r)))
	}
	return nil
}

// String returns the wire representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// Movement is one row of the append-only stock movement journal. Movements
// are never updated or deleted; they record that a quantity of a product
// moved out of a source location, into a destination location, or both.
type Movement struct {
	id        kernel.UUID
	productID kernel.UUID

	// fromLocationID and toLocationID describe the direction of the
	// movement; at least one must be set
	fromLocationID *kernel.UUID
	toLocationID   *kernel.UUID

	// quantity is the moved amount (must be >= 1)
	quantity int

	reason Reason

	// orderID optionally links the movement to an order
	orderID *kernel.UUID

	// referenceNumber and notes carry optional free-form context
	referenceNumber string
	notes           string

	// costPerUnit optionally records the cost of the moved units
	costPerUnit *float64

	// userID references the user who recorded the movement
	userID kernel.UUID

	isConstructed bool
}

// NewMovement creates a journal row with validation. At least one of
// fromLocationID / toLocationID must be given and quantity must be positive.
func NewMovement(
	id, productID kernel.UUID,
	fromLocationID, toLocationID *kernel.UUID,
	quantity int,
	reason Reason,
	orderID *kernel.UUID,
	referenceNumber string,
	costPerUnit *float64,
	notes string,
	userID kernel.UUID,
) (*Movement, error) {
	m := &Movement{
		referenceNumber: referenceNumber,
		notes:           notes,
		isConstructed:   true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setProductID(productID),
		m.setLocations(fromLocationID, toLocationID),
		m.setQuantity(quantity),
		m.setReason(reason),
		m.setOrderID(orderID),
		m.setCostPerUnit(costPerUnit),
		m.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMovement reconstructs a journal row from persistence.
// Used by repositories only.
func RestoreMovement(
	id, productID kernel.UUID,
	fromLocationID, toLocationID *kernel.UUID,
	quantity int,
	reason Reason,
	orderID *kernel.UUID,
	referenceNumber string,
	costPerUnit *float64,
	notes string,
	userID kernel.UUID,
) (*Movement, error) {
	return NewMovement(id, productID, fromLocationID, toLocationID, quantity,
		reason, orderID, referenceNumber, costPerUnit, notes, userID)
}

// Validate ensures the Movement instance was properly constructed through a
// factory method.
func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

// ID returns the movement's unique identifier.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// ProductID returns the moved product's identifier.
func (m *Movement) ProductID() kernel.UUID {
	return m.productID
}

// FromLocationID returns the source location, or nil for pure inflows.
func (m *Movement) FromLocationID() *kernel.UUID {
	return m.fromLocationID
}

// ToLocationID returns the destination location, or nil for pure outflows.
func (m *Movement) ToLocationID() *kernel.UUID {
	return m.toLocationID
}

// Quantity returns the moved amount.
func (m *Movement) Quantity() int {
	return m.quantity
}

// Reason returns the movement classification.
func (m *Movement) Reason() Reason {
	return m.reason
}

// OrderID returns the optionally linked order, or nil.
func (m *Movement) OrderID() *kernel.UUID {
	return m.orderID
}

// ReferenceNumber returns the optional external reference.
func (m *Movement) ReferenceNumber() string {
	return m.referenceNumber
}

// CostPerUnit returns the optional cost of the moved units.
func (m *Movement) CostPerUnit() *float64 {
	return m.costPerUnit
}

// Notes returns the optional free-form remarks.
func (m *Movement) Notes() string {
	return m.notes
}

// UserID returns the recording user's identifier.
func (m *Movement) UserID() kernel.UUID {
	return m.userID
}

func (m *Movement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Movement) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	m.productID = productID
	return nil
}

func (m *Movement) setLocations(from, to *kernel.UUID) error {
	if from == nil && to == nil {
		return ErrMovementHasNoLocation
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
	m.fromLocationID = from
	m.toLocationID = to
	return nil
}

func (m *Movement) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	m.quantity = quantity
	return nil
}

func (m *Movement) setReason(reason Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	m.reason = reason
	return nil
}

func (m *Movement) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return err
		}
	}
	m.orderID = orderID
	return nil
}

func (m *Movement) setCostPerUnit(costPerUnit *float64) error {
	if costPerUnit != nil && *costPerUnit < 0 {
		return errs.NewValueIsOutOfRangeError("costPerUnit", *costPerUnit, 0, math.MaxFloat64)
	}
	m.costPerUnit = costPerUnit
	return nil
}

func (m *Movement) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	m.userID = userID
	return nil
}
