package http

import (
	"encoding/json"
	"time"

	"librestock/internal/core/application/usecases/queries"
	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/order"
	"librestock/internal/core/domain/model/stock"
)

// Request bodies.

type createOrderRequest struct {
	ClientID            string                 `json:"clientId"`
	DeliveryAddress     string                 `json:"deliveryAddress"`
	DeliveryDeadline    *time.Time             `json:"deliveryDeadline,omitempty"`
	YachtName           string                 `json:"yachtName,omitempty"`
	SpecialInstructions string                 `json:"specialInstructions,omitempty"`
	Items               []createOrderItemInput `json:"items"`
}

type createOrderItemInput struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Notes     string  `json:"notes,omitempty"`
}

type updateOrderRequest struct {
	DeliveryAddress     *string    `json:"deliveryAddress,omitempty"`
	DeliveryDeadline    *time.Time `json:"deliveryDeadline,omitempty"`
	YachtName           *string    `json:"yachtName,omitempty"`
	SpecialInstructions *string    `json:"specialInstructions,omitempty"`

	// AssignedTo distinguishes "not in the patch" (field absent) from
	// "clear the assignment" (field present and null) via AssignedToSet.
	AssignedTo    *string `json:"assignedTo"`
	AssignedToSet bool    `json:"-"`
}

// UnmarshalJSON records whether the assignedTo key was present so that an
// explicit null clears the assignment while an absent key leaves it alone.
func (r *updateOrderRequest) UnmarshalJSON(data []byte) error {
	type alias updateOrderRequest
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = updateOrderRequest(decoded)
	_, r.AssignedToSet = keys["assignedTo"]
	return nil
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type createStockRecordRequest struct {
	ProductID    string     `json:"productId"`
	LocationID   string     `json:"locationId"`
	AreaID       *string    `json:"areaId,omitempty"`
	Quantity     int        `json:"quantity"`
	BatchNumber  string     `json:"batchNumber,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	CostPerUnit  *float64   `json:"costPerUnit,omitempty"`
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`
}

type adjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
	Notes  string `json:"notes,omitempty"`
}

type recordStockMovementRequest struct {
	ProductID       string   `json:"productId"`
	FromLocationID  *string  `json:"fromLocationId,omitempty"`
	ToLocationID    *string  `json:"toLocationId,omitempty"`
	Quantity        int      `json:"quantity"`
	Reason          string   `json:"reason"`
	OrderID         *string  `json:"orderId,omitempty"`
	ReferenceNumber string   `json:"referenceNumber,omitempty"`
	CostPerUnit     *float64 `json:"costPerUnit,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// Response bodies.

type orderResponse struct {
	ID                  string              `json:"id"`
	OrderNumber         string              `json:"orderNumber"`
	ClientID            string              `json:"clientId"`
	Status              string              `json:"status"`
	DeliveryAddress     string              `json:"deliveryAddress"`
	DeliveryDeadline    *time.Time          `json:"deliveryDeadline,omitempty"`
	YachtName           string              `json:"yachtName,omitempty"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	TotalAmount         float64             `json:"totalAmount"`
	AssignedTo          *string             `json:"assignedTo,omitempty"`
	CreatedBy           string              `json:"createdBy"`
	ConfirmedAt         *time.Time          `json:"confirmedAt,omitempty"`
	ShippedAt           *time.Time          `json:"shippedAt,omitempty"`
	DeliveredAt         *time.Time          `json:"deliveredAt,omitempty"`
	Items               []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"productId"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	Subtotal       float64 `json:"subtotal"`
	QuantityPicked int     `json:"quantityPicked"`
	QuantityPacked int     `json:"quantityPacked"`
	Notes          string  `json:"notes,omitempty"`
}

type stockRecordResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"productId"`
	LocationID   string     `json:"locationId"`
	AreaID       *string    `json:"areaId,omitempty"`
	Quantity     int        `json:"quantity"`
	BatchNumber  string     `json:"batchNumber,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	CostPerUnit  *float64   `json:"costPerUnit,omitempty"`
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`
}

type stockMovementResponse struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"productId"`
	FromLocationID  *string    `json:"fromLocationId,omitempty"`
	ToLocationID    *string    `json:"toLocationId,omitempty"`
	Quantity        int        `json:"quantity"`
	Reason          string     `json:"reason"`
	OrderID         *string    `json:"orderId,omitempty"`
	ReferenceNumber string     `json:"referenceNumber,omitempty"`
	CostPerUnit     *float64   `json:"costPerUnit,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	UserID          string     `json:"userId"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func orderResponseFromAggregate(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemResponse{
			ID:             item.ID().String(),
			ProductID:      item.ProductID().String(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice(),
			Subtotal:       item.Subtotal(),
			QuantityPicked: item.QuantityPicked(),
			QuantityPacked: item.QuantityPacked(),
			Notes:          item.Notes(),
		})
	}

	return orderResponse{
		ID:                  aggregate.ID().String(),
		OrderNumber:         aggregate.OrderNumber(),
		ClientID:            aggregate.ClientID().String(),
		Status:              aggregate.Status().String(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		DeliveryDeadline:    aggregate.DeliveryDeadline(),
		YachtName:           aggregate.YachtName(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		TotalAmount:         aggregate.TotalAmount(),
		AssignedTo:          optionalUUIDString(aggregate.AssignedTo()),
		CreatedBy:           aggregate.CreatedBy().String(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		ShippedAt:           aggregate.ShippedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		Items:               items,
	}
}

func orderResponseFromQuery(row queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(row.Items))
	for _, item := range row.Items {
		items = append(items, orderItemResponse{
			ID:             item.ID.String(),
			ProductID:      item.ProductID.String(),
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Subtotal:       item.Subtotal,
			QuantityPicked: item.QuantityPicked,
			QuantityPacked: item.QuantityPacked,
			Notes:          item.Notes,
		})
	}

	return orderResponse{
		ID:                  row.ID.String(),
		OrderNumber:         row.OrderNumber,
		ClientID:            row.ClientID.String(),
		Status:              row.Status,
		DeliveryAddress:     row.DeliveryAddress,
		DeliveryDeadline:    row.DeliveryDeadline,
		YachtName:           row.YachtName,
		SpecialInstructions: row.SpecialInstructions,
		TotalAmount:         row.TotalAmount,
		AssignedTo:          optionalUUIDString(row.AssignedTo),
		CreatedBy:           row.CreatedBy.String(),
		ConfirmedAt:         row.ConfirmedAt,
		ShippedAt:           row.ShippedAt,
		DeliveredAt:         row.DeliveredAt,
		Items:               items,
	}
}

func stockRecordResponseFromAggregate(record *stock.Record) stockRecordResponse {
	return stockRecordResponse{
		ID:           record.ID().String(),
		ProductID:    record.ProductID().String(),
		LocationID:   record.LocationID().String(),
		AreaID:       optionalUUIDString(record.AreaID()),
		Quantity:     record.Quantity(),
		BatchNumber:  record.BatchNumber(),
		ExpiryDate:   record.ExpiryDate(),
		CostPerUnit:  record.CostPerUnit(),
		ReceivedDate: record.ReceivedDate(),
	}
}

func stockRecordResponseFromQuery(row queries.StockRecordResponse) stockRecordResponse {
	return stockRecordResponse{
		ID:           row.ID.String(),
		ProductID:    row.ProductID.String(),
		LocationID:   row.LocationID.String(),
		AreaID:       optionalUUIDString(row.AreaID),
		Quantity:     row.Quantity,
		BatchNumber:  row.BatchNumber,
		ExpiryDate:   row.ExpiryDate,
		CostPerUnit:  row.CostPerUnit,
		ReceivedDate: row.ReceivedDate,
	}
}

func stockMovementResponseFromAggregate(movement *stock.Movement) stockMovementResponse {
	return stockMovementResponse{
		ID:              movement.ID().String(),
		ProductID:       movement.ProductID().String(),
		FromLocationID:  optionalUUIDString(movement.FromLocationID()),
		ToLocationID:    optionalUUIDString(movement.ToLocationID()),
		Quantity:        movement.Quantity(),
		Reason:          movement.Reason().String(),
		OrderID:         optionalUUIDString(movement.OrderID()),
		ReferenceNumber: movement.ReferenceNumber(),
		CostPerUnit:     movement.CostPerUnit(),
		Notes:           movement.Notes(),
		UserID:          movement.UserID().String(),
	}
}

func stockMovementResponseFromQuery(row queries.StockMovementResponse) stockMovementResponse {
	createdAt := row.CreatedAt
	return stockMovementResponse{
		ID:              row.ID.String(),
		ProductID:       row.ProductID.String(),
		FromLocationID:  optionalUUIDString(row.FromLocationID),
		ToLocationID:    optionalUUIDString(row.ToLocationID),
		Quantity:        row.Quantity,
		Reason:          row.Reason,
		OrderID:         optionalUUIDString(row.OrderID),
		ReferenceNumber: row.ReferenceNumber,
		CostPerUnit:     row.CostPerUnit,
		Notes:           row.Notes,
		UserID:          row.UserID.String(),
		CreatedAt:       &createdAt,
	}
}
