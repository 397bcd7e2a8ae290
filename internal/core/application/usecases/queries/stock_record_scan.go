package queries

import (
	"database/sql"

	"librestock/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const stockRecordSelect = `
	SELECT
		id,
		product_id,
		location_id,
		area_id,
		quantity,
		batch_number,
		expiry_date,
		cost_per_unit,
		received_date
	FROM stock_records`

// scanStockRecord maps one stock_records row onto a response. The scan
// argument abstracts over sql.Row and sql.Rows.
func scanStockRecord(scan func(dest ...any) error) (StockRecordResponse, error) {
	var (
		response StockRecordResponse
		id       uuid.UUID
		product  uuid.UUID
		location uuid.UUID
		area     uuid.NullUUID
		batch    sql.NullString
		expiry   sql.NullTime
		cost     sql.NullFloat64
		received sql.NullTime
	)

	err := scan(
		&id,
		&product,
		&location,
		&area,
		&response.Quantity,
		&batch,
		&expiry,
		&cost,
		&received,
	)
	if err != nil {
		return StockRecordResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return StockRecordResponse{}, err
	}
	if response.ProductID, err = kernel.UUIDFromBytes(product[:]); err != nil {
		return StockRecordResponse{}, err
	}
	if response.LocationID, err = kernel.UUIDFromBytes(location[:]); err != nil {
		return StockRecordResponse{}, err
	}
	if area.Valid {
		areaID, idErr := kernel.UUIDFromBytes(area.UUID[:])
		if idErr != nil {
			return StockRecordResponse{}, idErr
		}
		response.AreaID = &areaID
	}
	response.BatchNumber = batch.String
	response.ExpiryDate = nullTimePtr(expiry)
	response.ReceivedDate = nullTimePtr(received)
	if cost.Valid {
		value := cost.Float64
		response.CostPerUnit = &value
	}

	return response, nil
}
