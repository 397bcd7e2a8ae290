package stockrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"librestock/internal/adapters/out/postgres/stockrepo"
	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// StockRepositoryIntegrationTestSuite provides integration tests for
// StockRepository, in particular the conditional write guarding the
// non-negative quantity invariant.
type StockRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *stockrepo.GormStockRepository
	tracker    *MockAggregateTracker
}

func (suite *StockRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&stockrepo.StockRecordDTO{}))
}

func (suite *StockRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stock_records").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = stockrepo.NewGormStockRepository(suite.db, suite.tracker)
}

func (suite *StockRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StockRepositoryIntegrationTestSuite) createRecord(quantity int, areaID *kernel.UUID) *stock.Record {
	record, err := stock.NewRecord(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), areaID,
		quantity, "", nil, nil, nil)
	suite.Require().NoError(err)

	return record
}

func (suite *StockRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	areaID := kernel.NewUUID()
	record := suite.createRecord(50, &areaID)

	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(50, loaded.Quantity())
	suite.Require().NotNil(loaded.AreaID())
	suite.True(loaded.AreaID().IsEqual(areaID))
}

func (suite *StockRepositoryIntegrationTestSuite) TestAdd_DuplicateTriple_Conflict() {
	ctx := context.Background()
	record := suite.createRecord(10, nil)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	duplicate, err := stock.NewRecord(
		kernel.NewUUID(), record.ProductID(), record.LocationID(), nil,
		5, "", nil, nil, nil)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
	suite.Contains(err.Error(), "use the adjust endpoint instead")
}

func (suite *StockRepositoryIntegrationTestSuite) TestFindByTriple() {
	ctx := context.Background()
	record := suite.createRecord(25, nil)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	found, err := suite.repository.FindByTriple(ctx, record.ProductID(), record.LocationID(), nil)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(record.ID()))

	_, err = suite.repository.FindByTriple(ctx, record.ProductID(), kernel.NewUUID(), nil)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StockRepositoryIntegrationTestSuite) TestAdjustQuantity_AppliesDelta() {
	ctx := context.Background()
	record := suite.createRecord(50, nil)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	affected, err := suite.repository.AdjustQuantity(ctx, record.ID(), -10)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	loaded, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(40, loaded.Quantity())
}

func (suite *StockRepositoryIntegrationTestSuite) TestAdjustQuantity_RefusesUnderflow() {
	ctx := context.Background()
	record := suite.createRecord(50, nil)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	affected, err := suite.repository.AdjustQuantity(ctx, record.ID(), -60)
	suite.Require().NoError(err)
	suite.Zero(affected)

	loaded, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(50, loaded.Quantity())
}

// Two adjustments race for the same stock: -30 and -40 against quantity 50.
// Whichever commits first wins; the database guard must refuse the other.
func (suite *StockRepositoryIntegrationTestSuite) TestAdjustQuantity_ConcurrentRace_OneWins() {
	ctx := context.Background()
	record := suite.createRecord(50, nil)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	deltas := []int{-30, -40}
	results := make([]int64, len(deltas))

	var wg sync.WaitGroup
	for i, delta := range deltas {
		wg.Add(1)
		go func(i, delta int) {
			defer wg.Done()
			affected, err := suite.repository.AdjustQuantity(ctx, record.ID(), delta)
			suite.NoError(err)
			results[i] = affected
		}(i, delta)
	}
	wg.Wait()

	suite.Equal(int64(1), results[0]+results[1], "exactly one adjustment must win")

	loaded, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.GreaterOrEqual(loaded.Quantity(), 0)
	suite.Contains([]int{10, 20}, loaded.Quantity())
}

func TestStockRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepositoryIntegrationTestSuite))
}
