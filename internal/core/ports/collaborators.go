package ports

import (
	"context"

	"librestock/internal/core/domain/model/kernel"
)

// External collaborators consumed by the core. Their internals are outside
// this core's scope; the core only needs existence checks and one lookup.
type (
	// ClientDirectory answers whether a client exists.
	ClientDirectory interface {
		Exists(ctx context.Context, id kernel.UUID) (bool, error)
	}

	// ProductCatalog answers whether a product exists.
	ProductCatalog interface {
		Exists(ctx context.Context, id kernel.UUID) (bool, error)
	}

	// LocationDirectory answers whether a location exists.
	LocationDirectory interface {
		Exists(ctx context.Context, id kernel.UUID) (bool, error)
	}

	// AreaDirectory resolves areas. Find returns an ObjectNotFoundError when
	// the area does not exist.
	AreaDirectory interface {
		Find(ctx context.Context, id kernel.UUID) (Area, error)
	}
)

// Area is the minimal projection of an area the core needs: its identity and
// the location it belongs to.
type Area struct {
	ID         kernel.UUID
	LocationID kernel.UUID
}
