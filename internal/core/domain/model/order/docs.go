// Package order provides domain entities and business logic for order
// management in the inventory system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the order's line items and lifecycle
//   - Item: An order line with a fixed subtotal computed at creation
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, order number, client and at least one item
//   - The total amount equals the sum of item subtotals at creation and is
//     never recomputed afterwards
//   - Status moves only along the fixed transition table; DELIVERED and
//     CANCELLED are terminal
//   - Confirmation, ship and delivery timestamps are stamped exactly once
//   - Only draft orders may be deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
