package stock

import (
	"errors"
	"fmt"
	"math"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through the NewRecord or RestoreRecord factory methods.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

// Record represents the stock on hand for one product at one location/area.
// It is the aggregate root of the stock ledger.
//
// Record follows these invariants:
//   - At most one record exists per (product, location, area) triple;
//     uniqueness is enforced by the ledger before creation and backed by a
//     database constraint
//   - Quantity is never negative. The local precondition check lives here;
//     the final word belongs to the repository's conditional write, which
//     re-checks the invariant atomically against concurrent adjusters
type Record struct {
	// id is the unique identifier for the stock record
	id kernel.UUID

	// productID references the stocked product (existence checked externally)
	productID kernel.UUID

	// locationID references the holding location
	locationID kernel.UUID

	// areaID optionally references an area within the location
	areaID *kernel.UUID

	// quantity is the stock on hand (must be >= 0)
	quantity int

	// batchNumber optionally identifies the received batch
	batchNumber string

	// expiryDate optionally marks when the batch expires
	expiryDate *time.Time

	// costPerUnit optionally records the acquisition cost (must be >= 0)
	costPerUnit *float64

	// receivedDate optionally records when the batch arrived
	receivedDate *time.Time

	// isConstructed ensures the record was created via a factory method
	isConstructed bool
}

// NewRecord creates a new stock record with validation.
//
// Parameters:
//   - id, productID, locationID: required identifiers
//   - areaID: optional area within the location (nil for location-level stock)
//   - quantity: initial stock on hand (must be >= 0)
//   - batchNumber, expiryDate, costPerUnit, receivedDate: optional batch details
//
// Returns an error if any identifier is invalid, quantity is negative or
// costPerUnit is negative.
func NewRecord(
	id, productID, locationID kernel.UUID,
	areaID *kernel.UUID,
	quantity int,
	batchNumber string,
	expiryDate *time.Time,
	costPerUnit *float64,
	receivedDate *time.Time,
) (*Record, error) {
	record := &Record{
		batchNumber:   batchNumber,
		expiryDate:    expiryDate,
		receivedDate:  receivedDate,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setProductID(productID),
		record.setLocationID(locationID),
		record.setAreaID(areaID),
		record.setQuantity(quantity),
		record.setCostPerUnit(costPerUnit),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a stock record from persistence.
// Used by repositories only.
func RestoreRecord(
	id, productID, locationID kernel.UUID,
	areaID *kernel.UUID,
	quantity int,
	batchNumber string,
	expiryDate *time.Time,
	costPerUnit *float64,
	receivedDate *time.Time,
) (*Record, error) {
	return NewRecord(id, productID, locationID, areaID, quantity,
		batchNumber, expiryDate, costPerUnit, receivedDate)
}

// Validate ensures the Record instance was properly constructed through a
// factory method.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// ProductID returns the stocked product's identifier.
func (r *Record) ProductID() kernel.UUID {
	return r.productID
}

// LocationID returns the holding location's identifier.
func (r *Record) LocationID() kernel.UUID {
	return r.locationID
}

// AreaID returns the optional area identifier, or nil for location-level stock.
func (r *Record) AreaID() *kernel.UUID {
	return r.areaID
}

// Quantity returns the stock on hand.
func (r *Record) Quantity() int {
	return r.quantity
}

// BatchNumber returns the optional batch identifier.
func (r *Record) BatchNumber() string {
	return r.batchNumber
}

// ExpiryDate returns the optional batch expiry date.
func (r *Record) ExpiryDate() *time.Time {
	return r.expiryDate
}

// CostPerUnit returns the optional acquisition cost per unit.
func (r *Record) CostPerUnit() *float64 {
	return r.costPerUnit
}

// ReceivedDate returns the optional arrival date.
func (r *Record) ReceivedDate() *time.Time {
	return r.receivedDate
}

// IsExpired reports whether the record carries an expiry date in the past
// relative to at.
func (r *Record) IsExpired(at time.Time) bool {
	return r.expiryDate != nil && r.expiryDate.Before(at)
}

// CheckAdjustment is the local fast-fail half of the two-phase adjustment
// guard. It rejects deltas that would take the quantity negative based on the
// value read from storage, without touching the write path.
//
// A nil result is no guarantee of success: a concurrent adjustment may commit
// between this check and the conditional write, in which case the write
// affects zero rows and the ledger reports a lost race.
func (r *Record) CheckAdjustment(delta int) error {
	if r.quantity+delta < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"adjustment",
			fmt.Errorf("cannot adjust quantity by %d, current quantity is %d", delta, r.quantity),
		)
	}
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	r.productID = productID
	return nil
}

func (r *Record) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	r.locationID = locationID
	return nil
}

func (r *Record) setAreaID(areaID *kernel.UUID) error {
	if areaID != nil {
		if err := areaID.Validate(); err != nil {
			return err
		}
	}
	r.areaID = areaID
	return nil
}

func (r *Record) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}
	r.quantity = quantity
	return nil
}

func (r *Record) setCostPerUnit(costPerUnit *float64) error {
	if costPerUnit != nil && *costPerUnit < 0 {
		return errs.NewValueIsOutOfRangeError("costPerUnit", *costPerUnit, 0, math.MaxFloat64)
	}
	r.costPerUnit = costPerUnit
	return nil
}
