package queries

import (
	"context"
	"database/sql"

	"librestock/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockMovementsQueryHandler reads a product's movement journal from the
// database, most recent movement first.
type GetStockMovementsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockMovementsQueryHandler creates a handler for movement history queries.
func NewGetStockMovementsQueryHandler(db *gorm.DB) GetStockMovementsQueryHandler {
	return GetStockMovementsQueryHandler{db: db}
}

// Handle executes the query. A product with no movements yields an empty
// slice, not an error.
func (h GetStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetStockMovementsQuery,
) ([]StockMovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movements := make([]StockMovementResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			from_location_id,
			to_location_id,
			quantity,
			reason,
			order_id,
			reference_number,
			cost_per_unit,
			notes,
			user_id,
			created_at
		FROM stock_movements
		WHERE product_id = ?
		ORDER BY created_at DESC
	`, query.ProductID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			movement  StockMovementResponse
			id        uuid.UUID
			productID uuid.UUID
			from      uuid.NullUUID
			to        uuid.NullUUID
			orderID   uuid.NullUUID
			userID    uuid.UUID
			reference sql.NullString
			cost      sql.NullFloat64
			notes     sql.NullString
		)

		err = rows.Scan(
			&id,
			&productID,
			&from,
			&to,
			&movement.Quantity,
			&movement.Reason,
			&orderID,
			&reference,
			&cost,
			&notes,
			&userID,
			&movement.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if movement.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if movement.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if movement.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if movement.FromLocationID, err = nullUUIDPtr(from); err != nil {
			return nil, err
		}
		if movement.ToLocationID, err = nullUUIDPtr(to); err != nil {
			return nil, err
		}
		if movement.OrderID, err = nullUUIDPtr(orderID); err != nil {
			return nil, err
		}
		movement.ReferenceNumber = reference.String
		movement.Notes = notes.String
		if cost.Valid {
			value := cost.Float64
			movement.CostPerUnit = &value
		}

		movements = append(movements, movement)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}

func nullUUIDPtr(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}

	value, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}

	return &value, nil
}
