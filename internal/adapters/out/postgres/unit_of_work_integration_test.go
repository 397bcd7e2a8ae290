package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "librestock/internal/adapters/out/postgres"
	"librestock/internal/adapters/out/postgres/movementrepo"
	"librestock/internal/adapters/out/postgres/orderrepo"
	"librestock/internal/adapters/out/postgres/stockrepo"
	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/order"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/core/ports"
	"librestock/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&stockrepo.StockRecordDTO{},
		&movementrepo.StockMovementDTO{},
	))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, stock_records, stock_movements").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(orderNumber string) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, 10, "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, kernel.NewUUID(), kernel.NewUUID(),
		"Quay 3", []*order.Item{item})
	suite.Require().NoError(err)

	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesChangesVisible() {
	ctx := context.Background()
	aggregate := suite.newOrder("ORD-20260831-0001")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.OrderNumber(), loaded.OrderNumber())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	aggregate := suite.newOrder("ORD-20260831-0002")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStockAndMovement_ShareTransaction() {
	ctx := context.Background()

	record, err := stock.NewRecord(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		50, "", nil, nil, nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StockRepository().Add(ctx, record))

	affected, err := uow.StockRepository().AdjustQuantity(ctx, record.ID(), -10)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	locationID := record.LocationID()
	movement, err := stock.NewMovement(
		kernel.NewUUID(), record.ProductID(), &locationID, nil,
		10, stock.Sale, nil, "", nil, "", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.StockMovementRepository().Add(ctx, movement))

	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().StockRepository().Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(40, loaded.Quantity())

	var movementCount int64
	suite.Require().NoError(
		suite.db.Model(&movementrepo.StockMovementDTO{}).Count(&movementCount).Error)
	suite.Equal(int64(1), movementCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Rollback(context.Background()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
