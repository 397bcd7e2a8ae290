package order

import (
	"fmt"

	"librestock/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed transition table so that
// orders can only move along the defined business workflow.
//
// State transitions:
//
//	DRAFT ──> CONFIRMED ──> SOURCING ──> PICKING ──> PACKED ──> SHIPPED ──> DELIVERED
//
// Every fulfillment status between CONFIRMED and PACKED can be suspended to
// ON_HOLD and resumed from there. Every non-terminal status except SHIPPED
// can also move to CANCELLED. DELIVERED and CANCELLED are terminal.
type Status string

const (
	// Draft is the initial status when an order is first created.
	// Only draft orders may be deleted.
	Draft Status = "DRAFT"

	// Confirmed indicates the client has committed to the order.
	// Entering this status stamps the confirmation time.
	Confirmed Status = "CONFIRMED"

	// Sourcing indicates products are being procured for the order.
	Sourcing Status = "SOURCING"

	// Picking indicates items are being collected from stock.
	Picking Status = "PICKING"

	// Packed indicates all items are packed and ready to ship.
	Packed Status = "PACKED"

	// Shipped indicates the order has left the warehouse.
	// Entering this status stamps the ship time.
	Shipped Status = "SHIPPED"

	// Delivered indicates the order reached its destination.
	// This is a terminal state; entering it stamps the delivery time.
	Delivered Status = "DELIVERED"

	// Cancelled indicates the order was abandoned. Terminal state.
	Cancelled Status = "CANCELLED"

	// OnHold suspends an in-progress order. The order resumes into any of
	// the fulfillment statuses or moves to Cancelled.
	OnHold Status = "ON_HOLD"
)

// validTransitions returns the adjacency map of the status state machine.
// A transition is legal iff the target appears in the source's slice.
func validTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:     {Confirmed, Cancelled},
		Confirmed: {Sourcing, OnHold, Cancelled},
		Sourcing:  {Picking, OnHold, Cancelled},
		Picking:   {Packed, OnHold, Cancelled},
		Packed:    {Shipped, OnHold, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
		OnHold:    {Confirmed, Sourcing, Picking, Packed, Cancelled},
	}
}

// Validate checks if the Status value is one of the defined statuses.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := validTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(validTransitions()[s]) == 0
}

// CanTransitionTo reports whether the (s, next) edge exists in the
// transition table. Unknown statuses have no outgoing edges.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition to next.
//
// Returns:
//   - (next, nil) when the edge exists in the transition table
//   - ("", error) naming both states when it does not
//
// This method is used by Order.ChangeStatus() to enforce state transitions.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}

	if !s.CanTransitionTo(next) {
		return "", errs.NewInvalidStateError(
			fmt.Sprintf("cannot transition from %s to %s", s, next),
		)
	}

	return next, nil
}
