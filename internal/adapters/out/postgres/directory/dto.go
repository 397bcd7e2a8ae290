// Package directory implements the existence checks and lookups the core
// needs for clients, products, locations and storage areas. These tables are
// owned by other parts of the platform; this package only reads them.
package directory

import (
	"github.com/google/uuid"
)

// ClientDTO is the minimal projection of the clients table.
type ClientDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for clients.
func (ClientDTO) TableName() string {
	return "clients"
}

// ProductDTO is the minimal projection of the products table.
type ProductDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// LocationDTO is the minimal projection of the locations table.
type LocationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for locations.
func (LocationDTO) TableName() string {
	return "locations"
}

// AreaDTO is the minimal projection of the storage areas table. LocationID
// ties the area to the location it belongs to.
type AreaDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string
}

// TableName specifies the database table name for storage areas.
func (AreaDTO) TableName() string {
	return "areas"
}
