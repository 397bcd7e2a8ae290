package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"librestock/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_MapsErrorTaxonomyToStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "abc"), http.StatusNotFound},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", -1, 0, 100), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("deliveryAddress"), http.StatusBadRequest},
		{"invalid state", errs.NewInvalidStateError("only draft orders can be deleted"), http.StatusConflict},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(ctx, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, writeError(ctx, assert.AnError))

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, body.Message, assert.AnError.Error())
}

func TestUpdateOrderRequest_AssignedToPresence(t *testing.T) {
	t.Run("absent key leaves assignment untouched", func(t *testing.T) {
		var req updateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(`{"yachtName":"Odyssey"}`), &req))

		assert.False(t, req.AssignedToSet)
		require.NotNil(t, req.YachtName)
		assert.Equal(t, "Odyssey", *req.YachtName)
	})

	t.Run("explicit null clears assignment", func(t *testing.T) {
		var req updateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(`{"assignedTo":null}`), &req))

		assert.True(t, req.AssignedToSet)
		assert.Nil(t, req.AssignedTo)
	})

	t.Run("value assigns", func(t *testing.T) {
		var req updateOrderRequest
		require.NoError(t, json.Unmarshal(
			[]byte(`{"assignedTo":"550e8400-e29b-41d4-a716-446655440000"}`), &req))

		assert.True(t, req.AssignedToSet)
		require.NotNil(t, req.AssignedTo)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", *req.AssignedTo)
	})
}
