package commands

import (
	"context"
	"errors"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/core/ports"
	"librestock/internal/pkg/errs"
)

// CreateStockRecordCommandHandler opens a new stock ledger entry.
// Verifies the product and location exist, that a given area exists and
// belongs to the location, and that no entry already covers the same
// (product, location, area) triple. The unique index on the triple catches
// create/create races that slip past the lookup. Emits a CREATE audit record
// after a successful commit.
type CreateStockRecordCommandHandler struct {
	uowFactory StockUoWFactory
	products   ports.ProductCatalog
	locations  ports.LocationDirectory
	areas      ports.AreaDirectory
	audit      ports.AuditPublisher
}

// NewCreateStockRecordCommandHandler creates a handler for stock record creation.
func NewCreateStockRecordCommandHandler(
	uowFactory StockUoWFactory,
	products ports.ProductCatalog,
	locations ports.LocationDirectory,
	areas ports.AreaDirectory,
	audit ports.AuditPublisher,
) CreateStockRecordCommandHandler {
	return CreateStockRecordCommandHandler{
		uowFactory: uowFactory,
		products:   products,
		locations:  locations,
		areas:      areas,
		audit:      audit,
	}
}

// Handle processes the stock record creation command.
// Returns a ValueIsInvalidError for a missing product, location or area, or
// when the area belongs to a different location, and an InvalidStateError
// when the triple already has a record.
func (h CreateStockRecordCommandHandler) Handle(
	ctx context.Context,
	cmd CreateStockRecordCommand,
) (*stock.Record, error) {
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

	exists, err = h.locations.Exists(ctx, cmd.LocationID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("locationId",
			errs.NewObjectNotFoundError("location", cmd.LocationID()))
	}

	if areaID := cmd.AreaID(); areaID != nil {
		area, areaErr := h.areas.Find(ctx, *areaID)
		if areaErr != nil {
			if errors.Is(areaErr, errs.ErrObjectNotFound) {
				return nil, errs.NewValueIsInvalidErrorWithCause("areaId", areaErr)
			}
			return nil, areaErr
		}
		if !area.LocationID.IsEqual(cmd.LocationID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"areaId",
				errors.New("area must belong to the specified location"),
			)
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()

	_, err = stockRepo.FindByTriple(ctx, cmd.ProductID(), cmd.LocationID(), cmd.AreaID())
	if err == nil {
		return nil, errs.NewInvalidStateError(
			"stock record for this product, location and area already exists, use the adjust endpoint instead",
		)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	record, err := stock.NewRecord(
		kernel.NewUUID(),
		cmd.ProductID(),
		cmd.LocationID(),
		cmd.AreaID(),
		cmd.Quantity(),
		cmd.BatchNumber(),
		cmd.ExpiryDate(),
		cmd.CostPerUnit(),
		cmd.ReceivedDate(),
	)
	if err != nil {
		return nil, err
	}

	if err = stockRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx, ports.AuditCreate, ports.AuditEntityStockRecord, record.ID(), cmd.ActorID())

	return record, nil
}
