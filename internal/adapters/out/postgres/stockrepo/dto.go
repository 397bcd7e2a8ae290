// Package stockrepo provides data transfer objects and mapping functions for
// stock record persistence, including the conditional write that enforces the
// non-negative quantity invariant at the database level.
package stockrepo

import (
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockRecordDTO represents the database structure for persisting stock
// records. The composite unique index on (product, location, area) backs the
// one-record-per-triple rule against create/create races when an area is set.
// Postgres treats NULLs as distinct in unique indexes, so for records without
// an area the rule rests on the pre-insert lookup in the create handler.
type StockRecordDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_stock_triple;not null"`
	LocationID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_stock_triple;not null"`
	AreaID       *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_stock_triple"`
	Quantity     int       `gorm:"not null"`
	BatchNumber  string
	ExpiryDate   *time.Time `gorm:"index"`
	CostPerUnit  *float64   `gorm:"type:decimal(12,2)"`
	ReceivedDate *time.Time
}

// TableName specifies the database table name for stock records.
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

// fromDomain converts a stock record aggregate to its database representation.
func fromDomain(record *stock.Record) StockRecordDTO {
	var areaID *uuid.UUID
	if id := record.AreaID(); id != nil {
		raw := id.Bytes()
		areaID = &raw
	}

	return StockRecordDTO{
		ID:           record.ID().Bytes(),
		ProductID:    record.ProductID().Bytes(),
		LocationID:   record.LocationID().Bytes(),
		AreaID:       areaID,
		Quantity:     record.Quantity(),
		BatchNumber:  record.BatchNumber(),
		ExpiryDate:   record.ExpiryDate(),
		CostPerUnit:  record.CostPerUnit(),
		ReceivedDate: record.ReceivedDate(),
	}
}

// toDomain converts a database DTO back to a stock record aggregate.
func toDomain(dto StockRecordDTO) (*stock.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	var areaID *kernel.UUID
	if dto.AreaID != nil {
		area, areaErr := kernel.UUIDFromBytes((*dto.AreaID)[:])
		if areaErr != nil {
			return nil, areaErr
		}
		areaID = &area
	}

	return stock.RestoreRecord(
		id,
		productID,
		locationID,
		areaID,
		dto.Quantity,
		dto.BatchNumber,
		dto.ExpiryDate,
		dto.CostPerUnit,
		dto.ReceivedDate,
	)
}
