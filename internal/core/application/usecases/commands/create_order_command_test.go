package commands_test

import (
	"testing"
	"time"

	"librestock/internal/core/application/usecases/commands"
	"librestock/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	clientID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	items := []commands.OrderItemInput{
		{ProductID: kernel.NewUUID(), Quantity: 2, UnitPrice: 10},
	}

	cmd, err := commands.NewCreateOrderCommand(clientID, actorID, "Marina Port Vell, Berth 12", items)
	require.NoError(t, err)
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, actorID, cmd.CreatedBy())
	assert.Equal(t, "Marina Port Vell, Berth 12", cmd.DeliveryAddress())
	assert.Len(t, cmd.Items(), 1)
	assert.Nil(t, cmd.DeliveryDeadline())
}

func TestNewCreateOrderCommand_OptionalFields(t *testing.T) {
	deadline := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Quay 3",
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1, UnitPrice: 5}},
	)
	require.NoError(t, err)

	cmd = cmd.WithDeliveryDeadline(deadline).
		WithYachtName("M/Y Aurora").
		WithSpecialInstructions("refrigerated transport")

	require.NotNil(t, cmd.DeliveryDeadline())
	assert.Equal(t, deadline, *cmd.DeliveryDeadline())
	assert.Equal(t, "M/Y Aurora", cmd.YachtName())
	assert.Equal(t, "refrigerated transport", cmd.SpecialInstructions())
}

func TestNewCreateOrderCommand_InvalidClientID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), "Quay 3",
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1, UnitPrice: 5}},
	)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "",
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1, UnitPrice: 5}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Quay 3", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}
