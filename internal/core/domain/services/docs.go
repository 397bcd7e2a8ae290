// Package services provides domain services that implement business logic
// not naturally belonging to a single aggregate root.
//
// The package includes:
//   - OrderNumberAllocator: A domain service producing date-scoped,
//     human-readable order numbers
package services
