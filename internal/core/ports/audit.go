package ports

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
)

// AuditAction classifies an audited mutation.
type AuditAction string

const (
	AuditCreate       AuditAction = "CREATE"
	AuditUpdate       AuditAction = "UPDATE"
	AuditDelete       AuditAction = "DELETE"
	AuditStatusChange AuditAction = "STATUS_CHANGE"
)

// Audited entity types.
const (
	AuditEntityOrder         = "ORDER"
	AuditEntityStockRecord   = "STOCK_RECORD"
	AuditEntityStockMovement = "STOCK_MOVEMENT"
)

// AuditPublisher is the fire-and-forget audit sink. Record is called after a
// successful commit; implementations log and swallow their own failures, so
// a lost audit record never rolls back or fails the business mutation.
type AuditPublisher interface {
	Record(ctx context.Context, action AuditAction, entityType string, entityID, actorID kernel.UUID)
}
