package services

import (
	"context"
	"fmt"
	"time"
)

// OrderNumberCounter counts persisted orders whose order number starts with a
// given prefix. Implemented by the order repository.
type OrderNumberCounter interface {
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)
}

// OrderNumberAllocator is a domain service producing unique, human-readable,
// date-scoped order numbers of the form ORD-YYYYMMDD-NNNN.
//
// The allocation scheme counts existing orders with the current day's prefix
// and appends count+1 zero-padded to four digits. The count and the
// subsequent insert are NOT atomic: two allocations racing within the same
// day can produce the same number. The unique index on order_number turns
// that race into a storage conflict surfaced to the caller instead of a
// silent duplicate; no retry is attempted here.
type OrderNumberAllocator struct {
	// now is the clock used to derive the date prefix; overridable for tests
	now func() time.Time
}

// NewOrderNumberAllocator creates an allocator using the system clock.
func NewOrderNumberAllocator() OrderNumberAllocator {
	return OrderNumberAllocator{now: time.Now}
}

// NewOrderNumberAllocatorWithClock creates an allocator with a custom clock.
// Used by tests to pin the date prefix.
func NewOrderNumberAllocatorWithClock(now func() time.Time) OrderNumberAllocator {
	return OrderNumberAllocator{now: now}
}

// Next allocates the next order number for the current day.
//
// Parameters:
//   - counter: counts existing orders with the day's prefix, typically the
//     order repository bound to the creating transaction
//
// Returns:
//   - string: the allocated number, e.g. "ORD-20260831-0001"
//   - error: when counting fails
func (a OrderNumberAllocator) Next(ctx context.Context, counter OrderNumberCounter) (string, error) {
	prefix := a.Prefix()

	count, err := counter.CountByNumberPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%04d", prefix, count+1), nil
}

// Prefix returns the date-scoped prefix for the current day, e.g.
// "ORD-20260831".
func (a OrderNumberAllocator) Prefix() string {
	return a.now().Format("ORD-20060102")
}
