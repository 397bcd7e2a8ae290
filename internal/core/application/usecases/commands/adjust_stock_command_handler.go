package commands

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/pkg/errs"
)

// AdjustStockCommandHandler changes a stock record's quantity with the
// two-phase non-negative guard. A local precheck on the freshly read record
// rejects obvious underflows cheaply; the conditional write in the repository
// is the authoritative guard. When the write affects zero rows even though
// the precheck passed, a concurrent adjustment won the race and the command
// fails without retrying; retrying is the caller's decision.
//
// The movement journal row describing the adjustment is written in the same
// transaction as the quantity change, so the journal never disagrees with the
// ledger. No audit record is emitted for adjustments.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock adjustment command.
// Returns an ObjectNotFoundError when the record is missing, a
// ValueIsInvalidError when the delta would drive the quantity negative, and
// an InvalidStateError when a concurrent adjustment invalidated a passing
// precheck. On success returns the re-read record with the new quantity.
func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*stock.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	movementRepo := uow.StockMovementRepository()

	record, err := stockRepo.Get(ctx, cmd.RecordID())
	if err != nil {
		return nil, err
	}

	if err = record.CheckAdjustment(cmd.Delta()); err != nil {
		return nil, err
	}

	affected, err := stockRepo.AdjustQuantity(ctx, record.ID(), cmd.Delta())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errs.NewInvalidStateError(
			"quantity adjustment failed, the resulting quantity would be negative",
		)
	}

	movement, err := newAdjustmentMovement(record, cmd)
	if err != nil {
		return nil, err
	}

	if err = movementRepo.Add(ctx, movement); err != nil {
		return nil, err
	}

	updated, err := stockRepo.Get(ctx, record.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// newAdjustmentMovement builds the journal row for an applied adjustment.
// Negative deltas leave the record's location, positive deltas arrive at it.
func newAdjustmentMovement(record *stock.Record, cmd AdjustStockCommand) (*stock.Movement, error) {
	var fromLocation, toLocation *kernel.UUID

	locationID := record.LocationID()
	quantity := cmd.Delta()
	if quantity < 0 {
		quantity = -quantity
		fromLocation = &locationID
	} else {
		toLocation = &locationID
	}

	return stock.NewMovement(
		kernel.NewUUID(),
		record.ProductID(),
		fromLocation,
		toLocation,
		quantity,
		cmd.Reason(),
		nil,
		"",
		record.CostPerUnit(),
		cmd.Notes(),
		cmd.ActorID(),
	)
}
