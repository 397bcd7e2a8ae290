package stock_test

import (
	"fmt"
	"testing"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReason_Validate(t *testing.T) {
	t.Run("should validate all defined reasons", func(t *testing.T) {
		reasons := []stock.Reason{
			stock.PurchaseReceive,
			stock.Sale,
			stock.Waste,
			stock.Damaged,
			stock.Expired,
			stock.CountCorrection,
			stock.ReturnFromClient,
			stock.ReturnToSupplier,
			stock.InternalTransfer,
		}

		for _, reason := range reasons {
			t.Run(fmt.Sprintf("should validate %s", reason.String()), func(t *testing.T) {
				require.NoError(t, reason.Validate())
			})
		}
	})

	t.Run("should reject undefined reasons", func(t *testing.T) {
		for _, reason := range []stock.Reason{"", "sale", "THEFT"} {
			err := reason.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "is not a valid movement reason")
		}
	})
}

func TestNewMovement(t *testing.T) {
	t.Run("should create inflow movement", func(t *testing.T) {
		to := kernel.NewUUID()

		m, err := stock.NewMovement(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, &to, 25, stock.PurchaseReceive,
			nil, "PO-1138", nil, "", kernel.NewUUID(),
		)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Nil(t, m.FromLocationID())
		require.NotNil(t, m.ToLocationID())
		assert.Equal(t, 25, m.Quantity())
		assert.Equal(t, stock.PurchaseReceive, m.Reason())
		assert.Equal(t, "PO-1138", m.ReferenceNumber())
	})

	t.Run("should create transfer movement with order link", func(t *testing.T) {
		from := kernel.NewUUID()
		to := kernel.NewUUID()
		orderID := kernel.NewUUID()
		cost := 3.5

		m, err := stock.NewMovement(
			kernel.NewUUID(), kernel.NewUUID(),
			&from, &to, 4, stock.InternalTransfer,
			&orderID, "", &cost, "moved for provisioning", kernel.NewUUID(),
		)

		require.NoError(t, err)
		require.NotNil(t, m.OrderID())
		assert.True(t, m.OrderID().IsEqual(orderID))
		assert.Equal(t, &cost, m.CostPerUnit())
		assert.Equal(t, "moved for provisioning", m.Notes())
	})

	t.Run("should reject movement without any location", func(t *testing.T) {
		_, err := stock.NewMovement(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, 5, stock.Sale,
			nil, "", nil, "", kernel.NewUUID(),
		)

		require.ErrorIs(t, err, stock.ErrMovementHasNoLocation)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		from := kernel.NewUUID()
		for _, quantity := range []int{0, -5} {
			_, err := stock.NewMovement(
				kernel.NewUUID(), kernel.NewUUID(),
				&from, nil, quantity, stock.Sale,
				nil, "", nil, "", kernel.NewUUID(),
			)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject undefined reason", func(t *testing.T) {
		from := kernel.NewUUID()
		_, err := stock.NewMovement(
			kernel.NewUUID(), kernel.NewUUID(),
			&from, nil, 5, "THEFT",
			nil, "", nil, "", kernel.NewUUID(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value movement", func(t *testing.T) {
		var m stock.Movement
		require.ErrorIs(t, m.Validate(), stock.ErrMovementIsNotConstructed)
	})
}
