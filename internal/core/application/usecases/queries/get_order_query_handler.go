package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its line items from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s has %d items\n", found.OrderNumber, len(found.Items))
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order has
// the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			client_id,
			status,
			delivery_address,
			delivery_deadline,
			yacht_name,
			special_instructions,
			total_amount,
			assigned_to,
			created_by,
			confirmed_at,
			shipped_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		response   GetOrderQueryResponse
		id         uuid.UUID
		clientID   uuid.UUID
		createdBy  uuid.UUID
		assignedTo uuid.NullUUID
		deadline   sql.NullTime
		yacht      sql.NullString
		notes      sql.NullString
		confirmed  sql.NullTime
		shipped    sql.NullTime
		delivered  sql.NullTime
	)

	err := row.Scan(
		&id,
		&response.OrderNumber,
		&clientID,
		&response.Status,
		&response.DeliveryAddress,
		&deadline,
		&yacht,
		&notes,
		&response.TotalAmount,
		&assignedTo,
		&createdBy,
		&confirmed,
		&shipped,
		&delivered,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if assignedTo.Valid {
		assignee, idErr := kernel.UUIDFromBytes(assignedTo.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.AssignedTo = &assignee
	}
	response.YachtName = yacht.String
	response.SpecialInstructions = notes.String
	response.DeliveryDeadline = nullTimePtr(deadline)
	response.ConfirmedAt = nullTimePtr(confirmed)
	response.ShippedAt = nullTimePtr(shipped)
	response.DeliveredAt = nullTimePtr(delivered)

	if response.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price,
			subtotal,
			quantity_picked,
			quantity_packed,
			notes
		FROM order_items
		WHERE order_id = ?
		ORDER BY line_number
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item      GetOrderItemResponse
			id        uuid.UUID
			productID uuid.UUID
			notes     sql.NullString
		)

		err = rows.Scan(
			&id,
			&productID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&item.QuantityPicked,
			&item.QuantityPacked,
			&notes,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		item.Notes = notes.String

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
