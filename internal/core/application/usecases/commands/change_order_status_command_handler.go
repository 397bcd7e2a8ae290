package commands

import (
	"context"

	"librestock/internal/core/domain/model/order"
	"librestock/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a status transition to an order.
// The legality of the (current, next) pair is enforced by the aggregate;
// entering CONFIRMED, SHIPPED or DELIVERED stamps the matching timestamp.
// Emits a STATUS_CHANGE audit record after a successful commit.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the status change command.
// Returns an ObjectNotFoundError when the order is missing and an
// InvalidStateError naming both states when the transition is not allowed.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx, ports.AuditStatusChange, ports.AuditEntityOrder, aggregate.ID(), cmd.ActorID())

	return aggregate, nil
}
