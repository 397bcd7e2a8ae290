package guard_test

import (
	"errors"
	"testing"

	"librestock/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_BlocksLiteralConstruction shows the pattern the domain
// model relies on: a struct built without its constructor fails validation.
func TestConstructorGuard_BlocksLiteralConstruction(t *testing.T) {
	var errRecordNotConstructed = errors.New("record must be created via its constructor")

	type record struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	newRecord := func(quantity int) (record, error) {
		if quantity < 0 {
			return record{}, errors.New("quantity cannot be negative")
		}
		return record{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_produces_valid_object", func(t *testing.T) {
		r, err := newRecord(10)

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRecordNotConstructed))
		assert.Equal(t, 10, r.quantity)
	})

	t.Run("literal_fails_validation", func(t *testing.T) {
		r := record{quantity: 10}

		err := r.guard.Validate(errRecordNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errRecordNotConstructed, err)
	})
}
