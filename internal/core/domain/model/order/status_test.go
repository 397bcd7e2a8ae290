package order_test

import (
	"fmt"
	"testing"

	"librestock/internal/core/domain/model/order"
	"librestock/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Draft,
		order.Confirmed,
		order.Sourcing,
		order.Picking,
		order.Packed,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
		order.OnHold,
	}
}

// transitionTable mirrors the legal edges of the status state machine.
// Kept in the test so that any change to the table breaks loudly.
func transitionTable() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.Draft:     {order.Confirmed, order.Cancelled},
		order.Confirmed: {order.Sourcing, order.OnHold, order.Cancelled},
		order.Sourcing:  {order.Picking, order.OnHold, order.Cancelled},
		order.Picking:   {order.Packed, order.OnHold, order.Cancelled},
		order.Packed:    {order.Shipped, order.OnHold, order.Cancelled},
		order.Shipped:   {order.Delivered},
		order.Delivered: {},
		order.Cancelled: {},
		order.OnHold:    {order.Confirmed, order.Sourcing, order.Picking, order.Packed, order.Cancelled},
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have wire representations", func(t *testing.T) {
		assert.Equal(t, "DRAFT", order.Draft.String())
		assert.Equal(t, "CONFIRMED", order.Confirmed.String())
		assert.Equal(t, "SOURCING", order.Sourcing.String())
		assert.Equal(t, "PICKING", order.Picking.String())
		assert.Equal(t, "PACKED", order.Packed.String())
		assert.Equal(t, "SHIPPED", order.Shipped.String())
		assert.Equal(t, "DELIVERED", order.Delivered.String())
		assert.Equal(t, "CANCELLED", order.Cancelled.String())
		assert.Equal(t, "ON_HOLD", order.OnHold.String())
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := allStatuses()
		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all defined statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject undefined status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			"",
			"UNKNOWN",
			"draft",
			"IN_PROGRESS",
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %q", string(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
				assert.Contains(t, err.Error(), "is not a valid status")
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark DELIVERED and CANCELLED as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should mark every other status as non-terminal", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.Delivered || status == order.Cancelled {
				continue
			}
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow exactly the edges of the transition table", func(t *testing.T) {
		table := transitionTable()

		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				allowed := false
				for _, next := range table[from] {
					if next == to {
						allowed = true
						break
					}
				}

				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					newStatus, err := from.TransitionTo(to)

					if allowed {
						require.NoError(t, err)
						assert.Equal(t, to, newStatus)
						assert.True(t, from.CanTransitionTo(to))
					} else {
						require.Error(t, err)
						assert.IsType(t, &errs.InvalidStateError{}, err)
						assert.Contains(t, err.Error(),
							fmt.Sprintf("cannot transition from %s to %s", from, to))
						assert.False(t, from.CanTransitionTo(to))
					}
				})
			}
		}
	})

	t.Run("should reject transition to an undefined status", func(t *testing.T) {
		_, err := order.Draft.TransitionTo("ARCHIVED")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject any transition out of an undefined status", func(t *testing.T) {
		_, err := order.Status("UNKNOWN").TransitionTo(order.Confirmed)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidStateError{}, err)
	})
}
