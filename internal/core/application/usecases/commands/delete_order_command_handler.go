package commands

import (
	"context"

	"librestock/internal/core/ports"
	"librestock/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes a draft order and its line items in one
// transaction. Orders that have left DRAFT are refused. Emits a DELETE audit
// record after a successful commit.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditPublisher,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the order deletion command.
// Returns an ObjectNotFoundError when the order is missing and an
// InvalidStateError when the order is no longer a draft.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsDraft() {
		return errs.NewInvalidStateError("only draft orders can be deleted")
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditDelete, ports.AuditEntityOrder, aggregate.ID(), cmd.ActorID())

	return nil
}
