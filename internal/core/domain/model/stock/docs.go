// Package stock provides domain entities and business logic for the stock
// ledger: the per-(product, location, area) quantity records and the
// append-only movement journal.
//
// The package includes:
//   - Record: The aggregate root for stock on hand, with the local half of
//     the two-phase non-negative quantity guard
//   - Movement: A journal row classifying why stock moved
//   - Reason: The fixed set of movement classifications
//
// Key business rules:
//   - At most one record exists per (product, location, area) triple
//   - Quantity never goes negative, even under concurrent adjustment; the
//     repository's conditional write is the authoritative enforcement point
//   - Movements are append-only and always name a source or destination
package stock
