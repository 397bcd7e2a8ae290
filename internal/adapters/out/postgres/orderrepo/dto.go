// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The unique index on OrderNumber turns same-day allocation races into
// storage conflicts instead of silent duplicates.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber         string     `gorm:"uniqueIndex;not null"`
	ClientID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	Status              string     `gorm:"index;not null"`
	DeliveryAddress     string     `gorm:"not null"`
	DeliveryDeadline    *time.Time
	YachtName           string
	SpecialInstructions string
	TotalAmount         float64    `gorm:"type:decimal(12,2)"`
	AssignedTo          *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy           uuid.UUID  `gorm:"type:uuid"`
	ConfirmedAt         *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row belonging to an order.
// LineNumber preserves the insertion order of the items for display.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	LineNumber     int       `gorm:"not null"`
	ProductID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity       int       `gorm:"not null"`
	UnitPrice      float64   `gorm:"type:decimal(12,2)"`
	Subtotal       float64   `gorm:"type:decimal(12,2)"`
	QuantityPicked int
	QuantityPacked int
	Notes          string
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, line items included.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderNumber:         aggregate.OrderNumber(),
		ClientID:            aggregate.ClientID().Bytes(),
		Status:              aggregate.Status().String(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		DeliveryDeadline:    aggregate.DeliveryDeadline(),
		YachtName:           aggregate.YachtName(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		TotalAmount:         aggregate.TotalAmount(),
		AssignedTo:          assignedTo,
		CreatedBy:           aggregate.CreatedBy().Bytes(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		ShippedAt:           aggregate.ShippedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			LineNumber:     i + 1,
			ProductID:      item.ProductID().Bytes(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice(),
			Subtotal:       item.Subtotal(),
			QuantityPicked: item.QuantityPicked(),
			QuantityPacked: item.QuantityPacked(),
			Notes:          item.Notes(),
		})
	}

	return dto, items
}

// toDomain converts database rows back to an order domain aggregate using
// RestoreOrder, keeping stored totals and timestamps as-is.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		assignee, assignErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assignErr != nil {
			return nil, assignErr
		}
		assignedTo = &assignee
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		clientID,
		createdBy,
		order.Status(dto.Status),
		dto.DeliveryAddress,
		dto.DeliveryDeadline,
		dto.YachtName,
		dto.SpecialInstructions,
		dto.TotalAmount,
		assignedTo,
		dto.ConfirmedAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		orderID,
		productID,
		dto.Quantity,
		dto.UnitPrice,
		dto.Subtotal,
		dto.QuantityPicked,
		dto.QuantityPacked,
		dto.Notes,
	)
}
