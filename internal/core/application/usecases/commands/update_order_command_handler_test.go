package commands_test

import (
	"testing"

	"librestock/internal/core/application/usecases/commands"
	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_EmptyPatchIsNoOp(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)

	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)
	require.True(t, cmd.IsEmpty())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	audit := new(MockAuditPublisher)

	h := commands.NewUpdateOrderCommandHandler(factory, audit)
	current, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, aggregate, current)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_AppliesPatch(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	actorID := kernel.NewUUID()
	provisionerID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), actorID)
	require.NoError(t, err)
	cmd = cmd.WithDeliveryAddress("Marina Port Vell, Berth 14").
		WithYachtName("M/Y Aurora").
		WithAssignedTo(&provisionerID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	audit := new(MockAuditPublisher)
	audit.On("Record", ctx, ports.AuditUpdate, ports.AuditEntityOrder,
		aggregate.ID(), actorID).Return().Once()

	h := commands.NewUpdateOrderCommandHandler(factory, audit)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "Marina Port Vell, Berth 14", updated.DeliveryAddress())
	assert.Equal(t, "M/Y Aurora", updated.YachtName())
	require.NotNil(t, updated.AssignedTo())
	assert.True(t, updated.AssignedTo().IsEqual(provisionerID))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ClearsAssignment(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	provisionerID := kernel.NewUUID()
	require.NoError(t, aggregate.AssignTo(&provisionerID))

	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)
	cmd = cmd.WithAssignedTo(nil)
	require.False(t, cmd.IsEmpty())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	audit := new(MockAuditPublisher)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	h := commands.NewUpdateOrderCommandHandler(factory, audit)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Nil(t, updated.AssignedTo())
}
