package commands

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/core/ports"
	"librestock/internal/pkg/errs"
)

// RecordStockMovementCommandHandler appends a row to the stock movement
// journal. Verifies the product and every given location endpoint exist.
// Emits a CREATE audit record after a successful commit. The journal does
// not touch stock quantities; quantity changes go through the adjustment
// command.
type RecordStockMovementCommandHandler struct {
	uowFactory StockUoWFactory
	products   ports.ProductCatalog
	locations  ports.LocationDirectory
	audit      ports.AuditPublisher
}

// NewRecordStockMovementCommandHandler creates a handler for journal appends.
func NewRecordStockMovementCommandHandler(
	uowFactory StockUoWFactory,
	products ports.ProductCatalog,
	locations ports.LocationDirectory,
	audit ports.AuditPublisher,
) RecordStockMovementCommandHandler {
	return RecordStockMovementCommandHandler{
		uowFactory: uowFactory,
		products:   products,
		locations:  locations,
		audit:      audit,
	}
}

// Handle processes the movement recording command.
// Returns a ValueIsInvalidError when the product or a referenced location
// does not exist.
func (h RecordStockMovementCommandHandler) Handle(
	ctx context.Context,
	cmd RecordStockMovementCommand,
) (*stock.Movement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.products.Exists(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("productId",
			errs.NewObjectNotFoundError("product", cmd.ProductID()))
	}

	for param, locationID := range map[string]*kernel.UUID{
		"fromLocationId": cmd.FromLocationID(),
		"toLocationId":   cmd.ToLocationID(),
	} {
		if locationID == nil {
			continue
		}
		exists, err = h.locations.Exists(ctx, *locationID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(param,
				errs.NewObjectNotFoundError("location", *locationID))
		}
	}

	movement, err := stock.NewMovement(
		kernel.NewUUID(),
		cmd.ProductID(),
		cmd.FromLocationID(),
		cmd.ToLocationID(),
		cmd.Quantity(),
		cmd.Reason(),
		cmd.OrderID(),
		cmd.ReferenceNumber(),
		cmd.CostPerUnit(),
		cmd.Notes(),
		cmd.ActorID(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockMovementRepository().Add(ctx, movement); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx, ports.AuditCreate, ports.AuditEntityStockMovement, movement.ID(), cmd.ActorID())

	return movement, nil
}
