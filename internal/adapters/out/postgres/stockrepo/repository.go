package stockrepo

import (
	"context"
	"errors"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock record. A concurrent create for the same
// (product, location, area) triple hits the composite unique index and
// surfaces as an InvalidStateError.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewInvalidStateErrorWithCause(
				"stock record for this product, location and area already exists, use the adjust endpoint instead",
				err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stock record by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockRecord", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByTriple retrieves the record for a (product, location, area) triple.
func (r *GormStockRepository) FindByTriple(
	ctx context.Context,
	productID, locationID kernel.UUID,
	areaID *kernel.UUID,
) (*stock.Record, error) {
	query := r.db.WithContext(ctx).
		Where("product_id = ?", productID.Bytes()).
		Where("location_id = ?", locationID.Bytes())
	if areaID != nil {
		query = query.Where("area_id = ?", areaID.Bytes())
	} else {
		query = query.Where("area_id IS NULL")
	}

	var dto StockRecordDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockRecord", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AdjustQuantity applies delta as a single conditional write. The WHERE
// clause re-checks the non-negative invariant atomically, so a concurrent
// adjustment that got there first makes this statement affect zero rows
// rather than driving the quantity negative.
func (r *GormStockRepository) AdjustQuantity(ctx context.Context, id kernel.UUID, delta int) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE stock_records
		SET quantity = quantity + ?
		WHERE id = ? AND quantity + ? >= 0
	`, delta, id.Bytes(), delta)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
