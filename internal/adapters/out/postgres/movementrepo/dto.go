// Package movementrepo persists the append-only stock movement journal.
package movementrepo

import (
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockMovementDTO represents one journal row. Rows are inserted once and
// never updated.
type StockMovementDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	FromLocationID  *uuid.UUID `gorm:"type:uuid"`
	ToLocationID    *uuid.UUID `gorm:"type:uuid"`
	Quantity        int        `gorm:"not null"`
	Reason          string     `gorm:"not null"`
	OrderID         *uuid.UUID `gorm:"type:uuid;index"`
	ReferenceNumber string
	CostPerUnit     *float64 `gorm:"type:decimal(12,2)"`
	Notes           string
	UserID          uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for stock movements.
func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

// fromDomain converts a movement entity to its database representation.
func fromDomain(movement *stock.Movement) StockMovementDTO {
	return StockMovementDTO{
		ID:              movement.ID().Bytes(),
		ProductID:       movement.ProductID().Bytes(),
		FromLocationID:  optionalUUID(movement.FromLocationID()),
		ToLocationID:    optionalUUID(movement.ToLocationID()),
		Quantity:        movement.Quantity(),
		Reason:          movement.Reason().String(),
		OrderID:         optionalUUID(movement.OrderID()),
		ReferenceNumber: movement.ReferenceNumber(),
		CostPerUnit:     movement.CostPerUnit(),
		Notes:           movement.Notes(),
		UserID:          movement.UserID().Bytes(),
	}
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
