package commands

import (
	"context"

	"librestock/internal/core/domain/model/order"
	"librestock/internal/core/ports"
)

// UpdateOrderCommandHandler applies a partial update to an order header.
// An empty patch returns the current state without writing or auditing.
// A non-empty patch is persisted in one transaction and followed by an
// UPDATE audit record.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the order update command.
// Returns an ObjectNotFoundError when the order is missing.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if cmd.IsEmpty() {
		return aggregate, nil
	}

	if address := cmd.DeliveryAddress(); address != nil {
		if err = aggregate.ChangeDeliveryAddress(*address); err != nil {
			return nil, err
		}
	}
	if deadline := cmd.DeliveryDeadline(); deadline != nil {
		aggregate.ChangeDeliveryDeadline(deadline)
	}
	if name := cmd.YachtName(); name != nil {
		aggregate.ChangeYachtName(*name)
	}
	if instructions := cmd.SpecialInstructions(); instructions != nil {
		aggregate.ChangeSpecialInstructions(*instructions)
	}
	if assignee, provided := cmd.AssignedTo(); provided {
		if err = aggregate.AssignTo(assignee); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx, ports.AuditUpdate, ports.AuditEntityOrder, aggregate.ID(), cmd.ActorID())

	return aggregate, nil
}
