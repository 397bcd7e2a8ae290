package commands_test

import (
	"testing"

	"librestock/internal/core/application/usecases/commands"
	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/order"
	"librestock/internal/core/ports"
	"librestock/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftOrder(t *testing.T) *order.Order {
	t.Helper()

	itemA, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, 10, "")
	require.NoError(t, err)
	itemB, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, 20, "")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-20260831-0001", kernel.NewUUID(), kernel.NewUUID(),
		"Marina Port Vell, Berth 12", []*order.Item{itemA, itemB})
	require.NoError(t, err)

	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_ConfirmStampsTimestamp(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	actorID := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, actorID)
	require.NoError(t, err)

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
	audit.On("Record", ctx, ports.AuditStatusChange, ports.AuditEntityOrder,
		aggregate.ID(), actorID).Return().Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, audit)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Confirmed, updated.Status())
	assert.NotNil(t, updated.ConfirmedAt())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	require.NoError(t, aggregate.ChangeStatus(order.Confirmed))

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Draft, kernel.NewUUID())
	require.NoError(t, err)

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

	h := commands.NewChangeOrderStatusCommandHandler(factory, audit)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Contains(t, err.Error(), "cannot transition from CONFIRMED to DRAFT")

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Confirmed, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, new(MockAuditPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Status("UNKNOWN"), kernel.NewUUID())
	require.Error(t, err)
}
