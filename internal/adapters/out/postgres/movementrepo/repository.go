package movementrepo

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"

	"gorm.io/gorm"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
type GormStockMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockMovementRepository creates a new GORM movement repository.
func NewGormStockMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormStockMovementRepository {
	return &GormStockMovementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a journal row.
func (r *GormStockMovementRepository) Add(ctx context.Context, movement *stock.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(movement)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(movement.ID(), movement)
	return nil
}
