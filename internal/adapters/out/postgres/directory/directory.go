package directory

import (
	"context"
	"errors"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/ports"
	"librestock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientDirectory answers client existence checks against the clients
// table.
type GormClientDirectory struct {
	db *gorm.DB
}

// NewGormClientDirectory creates a client directory backed by GORM.
func NewGormClientDirectory(db *gorm.DB) *GormClientDirectory {
	return &GormClientDirectory{db: db}
}

// Exists reports whether a client with the given ID exists.
func (d *GormClientDirectory) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	return exists[ClientDTO](ctx, d.db, id)
}

// GormProductCatalog answers product existence checks against the products
// table.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a product catalog backed by GORM.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Exists reports whether a product with the given ID exists.
func (d *GormProductCatalog) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	return exists[ProductDTO](ctx, d.db, id)
}

// GormLocationDirectory answers location existence checks against the
// locations table.
type GormLocationDirectory struct {
	db *gorm.DB
}

// NewGormLocationDirectory creates a location directory backed by GORM.
func NewGormLocationDirectory(db *gorm.DB) *GormLocationDirectory {
	return &GormLocationDirectory{db: db}
}

// Exists reports whether a location with the given ID exists.
func (d *GormLocationDirectory) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	return exists[LocationDTO](ctx, d.db, id)
}

// GormAreaDirectory resolves storage areas against the areas table.
type GormAreaDirectory struct {
	db *gorm.DB
}

// NewGormAreaDirectory creates an area directory backed by GORM.
func NewGormAreaDirectory(db *gorm.DB) *GormAreaDirectory {
	return &GormAreaDirectory{db: db}
}

// Find resolves an area to its identity and owning location.
// Returns an ObjectNotFoundError when the area does not exist.
func (d *GormAreaDirectory) Find(ctx context.Context, id kernel.UUID) (ports.Area, error) {
	if err := id.Validate(); err != nil {
		return ports.Area{}, err
	}

	var dto AreaDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Area{}, errs.NewObjectNotFoundError("area", id.String())
		}
		return ports.Area{}, err
	}

	areaID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Area{}, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return ports.Area{}, err
	}

	return ports.Area{ID: areaID, LocationID: locationID}, nil
}

func exists[T any](ctx context.Context, db *gorm.DB, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	var model T
	err := db.WithContext(ctx).Model(&model).Where("id = ?", id.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
