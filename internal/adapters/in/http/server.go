// Package http exposes the order and stock use cases over a JSON REST API.
package http

import (
	"net/http"

	"librestock/internal/core/application/usecases/commands"
	"librestock/internal/core/application/usecases/queries"
	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/order"
	"librestock/internal/core/domain/model/stock"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the acting user's identifier on mutating requests.
// Resolving it from a verified session is the job of the gateway in front of
// this service.
const actorHeader = "X-User-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	createStockRecordHandler   commands.CreateStockRecordCommandHandler
	adjustStockHandler         commands.AdjustStockCommandHandler
	recordStockMovementHandler commands.RecordStockMovementCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getStockRecordHandler    queries.GetStockRecordQueryHandler
	getStockByProductHandler queries.GetStockByProductQueryHandler
	getStockMovementsHandler queries.GetStockMovementsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createStockRecordHandler commands.CreateStockRecordCommandHandler,
	adjustStockHandler commands.AdjustStockCommandHandler,
	recordStockMovementHandler commands.RecordStockMovementCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStockRecordHandler queries.GetStockRecordQueryHandler,
	getStockByProductHandler queries.GetStockByProductQueryHandler,
	getStockMovementsHandler queries.GetStockMovementsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		deleteOrderHandler:         deleteOrderHandler,
		createStockRecordHandler:   createStockRecordHandler,
		adjustStockHandler:         adjustStockHandler,
		recordStockMovementHandler: recordStockMovementHandler,
		getOrderHandler:            getOrderHandler,
		getStockRecordHandler:      getStockRecordHandler,
		getStockByProductHandler:   getStockByProductHandler,
		getStockMovementsHandler:   getStockMovementsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/stock", s.CreateStockRecord)
	api.GET("/stock/:id", s.GetStockRecord)
	api.POST("/stock/:id/adjust", s.AdjustStock)
	api.GET("/stock/product/:productId", s.GetStockByProduct)
	api.POST("/stock/movements", s.RecordStockMovement)
	api.GET("/stock/movements/product/:productId", s.GetStockMovements)
}

func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(actorHeader))
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func optionalUUIDParam(value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// CreateOrder handles POST /api/orders - registers a new provisioning order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "missing or invalid "+actorHeader+" header")
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return writeBadRequest(ctx, "invalid clientId")
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, parseErr := kernel.UUIDFromString(item.ProductID)
		if parseErr != nil {
			return writeBadRequest(ctx, "invalid productId: "+item.ProductID)
		}
		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Notes:     item.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(clientID, actor, req.DeliveryAddress, items)
	if err != nil {
		return writeError(ctx, err)
	}
	if req.DeliveryDeadline != nil {
		cmd = cmd.WithDeliveryDeadline(*req.DeliveryDeadline)
	}
	if req.YachtName != "" {
		cmd = cmd.WithYachtName(req.YachtName)
	}
	if req.SpecialInstructions != "" {
		cmd = cmd.WithSpecialInstructions(req.SpecialInstructions)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetOrder handles GET /api/orders/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(row))
}

// UpdateOrder handles PATCH /api/orders/:id - partially updates an order's
// mutable fields. An empty patch returns the order unchanged.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "missing or invalid "+actorHeader+" header")
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req updateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}
	if req.DeliveryAddress != nil {
		cmd = cmd.WithDeliveryAddress(*req.DeliveryAddress)
	}
	if req.DeliveryDeadline != nil {
		cmd = cmd.WithDeliveryDeadline(*req.DeliveryDeadline)
	}
	if req.YachtName != nil {
		cmd = cmd.WithYachtName(*req.YachtName)
	}
	if req.SpecialInstructions != nil {
		cmd = cmd.WithSpecialInstructions(*req.SpecialInstructions)
	}
	if req.AssignedToSet {
		assignedTo, parseErr := optionalUUIDParam(req.AssignedTo)
		if parseErr != nil {
			return writeBadRequest(ctx, "invalid assignedTo")
		}
		cmd = cmd.WithAssignedTo(assignedTo)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - moves an order
// along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "missing or invalid "+actorHeader+" header")
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req changeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status), actor)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/orders/:id - removes a draft order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "missing or invalid "+actorHeader+" header")
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateStockRecord handles POST /api/stock - opens a stock ledger entry for
// a product/location/area triple.
func (s *Server) CreateStockRecord(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "missing or invalid "+actorHeader+" header")
	}

	var req createStockRecordRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeBadRequest(ctx, "invalid productId")
	}
	locationID, err := kernel.UUIDFromString(req.LocationID)
	if err != nil {
		return writeBadRequest(ctx, "invalid locationId")
	}
	areaID, err := optionalUUIDParam(req.AreaID)
	if err != nil {
		return writeBadRequest(ctx, "invalid areaId")
	}

	cmd, err := commands.NewCreateStockRecordCommand(productID, locationID, areaID, req.Quantity, actor)
	if err != nil {
		return writeError(ctx, err)
	}
	if req.BatchNumber != "" {
		cmd = cmd.WithBatchNumber(req.BatchNumber)
	}
	if req.ExpiryDate != nil {
		cmd = cmd.WithExpiryDate(*req.ExpiryDate)
	}
	if req.CostPerUnit != nil {
		cmd = cmd.WithCostPerUnit(*req.CostPerUnit)
	}
	if req.ReceivedDate != nil {
		cmd = cmd.WithReceivedDate(*req.ReceivedDate)
	}

	created, err := s.createStockRecordHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, stockRecordResponseFromAggregate(created))
}

// GetStockRecord handles GET /api/stock/:id - retrieves one stock record.
func (s *Server) GetStockRecord(ctx echo.Context) error {
	recordID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid stock record id")
	}

	query, err := queries.NewGetStockRecordQuery(recordID)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getStockRecordHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stockRecordResponseFromQuery(row))
}

// AdjustStock handles POST /api/stock/:id/adjust - applies a signed quantity
// delta guarded against driving the quantity negative.
func (s *Server) AdjustStock(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "missing or invalid "+actorHeader+" header")
	}

	recordID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid stock record id")
	}

	var req adjustStockRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAdjustStockCommand(recordID, req.Delta, stock.Reason(req.Reason), actor)
	if err != nil {
		return writeError(ctx, err)
	}
	if req.Notes != "" {
		cmd = cmd.WithNotes(req.Notes)
	}

	adjusted, err := s.adjustStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stockRecordResponseFromAggregate(adjusted))
}

// GetStockByProduct handles GET /api/stock/product/:productId - lists all
// stock records of a product across locations.
func (s *Server) GetStockByProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeBadRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetStockByProductQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getStockByProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]stockRecordResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, stockRecordResponseFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordStockMovement handles POST /api/stock/movements - appends a row to
// the movement journal.
func (s *Server) RecordStockMovement(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "missing or invalid "+actorHeader+" header")
	}

	var req recordStockMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeBadRequest(ctx, "invalid productId")
	}
	fromLocationID, err := optionalUUIDParam(req.FromLocationID)
	if err != nil {
		return writeBadRequest(ctx, "invalid fromLocationId")
	}
	toLocationID, err := optionalUUIDParam(req.ToLocationID)
	if err != nil {
		return writeBadRequest(ctx, "invalid toLocationId")
	}

	cmd, err := commands.NewRecordStockMovementCommand(
		productID, fromLocationID, toLocationID, req.Quantity, stock.Reason(req.Reason), actor)
	if err != nil {
		return writeError(ctx, err)
	}
	if req.OrderID != nil {
		linkedOrderID, parseErr := kernel.UUIDFromString(*req.OrderID)
		if parseErr != nil {
			return writeBadRequest(ctx, "invalid orderId")
		}
		cmd = cmd.WithOrderID(linkedOrderID)
	}
	if req.ReferenceNumber != "" {
		cmd = cmd.WithReferenceNumber(req.ReferenceNumber)
	}
	if req.CostPerUnit != nil {
		cmd = cmd.WithCostPerUnit(*req.CostPerUnit)
	}
	if req.Notes != "" {
		cmd = cmd.WithNotes(req.Notes)
	}

	created, err := s.recordStockMovementHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, stockMovementResponseFromAggregate(created))
}

// GetStockMovements handles GET /api/stock/movements/product/:productId -
// lists a product's movement journal, newest first.
func (s *Server) GetStockMovements(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeBadRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetStockMovementsQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getStockMovementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]stockMovementResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, stockMovementResponseFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}
