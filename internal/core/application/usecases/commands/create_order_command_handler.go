package commands

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/order"
	"librestock/internal/core/domain/services"
	"librestock/internal/core/ports"
	"librestock/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the client and every product exist, allocates the order number,
// computes the total from the items and persists the header and items in a
// single transaction. Emits a CREATE audit record after a successful commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clients, products, allocator, audit)
//	cmd, _ := NewCreateOrderCommand(clientID, actorID, "Marina Port Vell, Berth 12", items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s created as %s", created.OrderNumber(), created.Status())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clients    ports.ClientDirectory
	products   ports.ProductCatalog
	allocator  services.OrderNumberAllocator
	audit      ports.AuditPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clients ports.ClientDirectory,
	products ports.ProductCatalog,
	allocator services.OrderNumberAllocator,
	audit ports.AuditPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clients:    clients,
		products:   products,
		allocator:  allocator,
		audit:      audit,
	}
}

// Handle processes the order creation command.
// A missing client or product is bad input naming a nonexistent reference, so
// it fails with a ValueIsInvalidError; the first missing product is the one
// named. The order starts in DRAFT status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.clients.Exists(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("clientId",
			errs.NewObjectNotFoundError("client", cmd.ClientID()))
	}

	for _, item := range cmd.Items() {
		exists, err = h.products.Exists(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("productId",
				errs.NewObjectNotFoundError("product", item.ProductID))
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderNumber, err := h.allocator.Next(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(kernel.NewUUID(), input.ProductID, input.Quantity, input.UnitPrice, input.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		cmd.ClientID(),
		cmd.CreatedBy(),
		cmd.DeliveryAddress(),
		items,
	)
	if err != nil {
		return nil, err
	}

	created.ChangeDeliveryDeadline(cmd.DeliveryDeadline())
	created.ChangeYachtName(cmd.YachtName())
	created.ChangeSpecialInstructions(cmd.SpecialInstructions())

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx, ports.AuditCreate, ports.AuditEntityOrder, created.ID(), cmd.CreatedBy())

	return created, nil
}
