package cmd

import (
	"librestock/internal/adapters/out/postgres"
	"librestock/internal/adapters/out/postgres/directory"
	"librestock/internal/adapters/out/postgres/movementrepo"
	"librestock/internal/adapters/out/postgres/orderrepo"
	"librestock/internal/adapters/out/postgres/stockrepo"
	"librestock/internal/core/application/usecases/commands"
	"librestock/internal/core/application/usecases/queries"
	"librestock/internal/core/domain/services"
	"librestock/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clients    ports.ClientDirectory
	products   ports.ProductCatalog
	locations  ports.LocationDirectory
	areas      ports.AreaDirectory
	allocator  services.OrderNumberAllocator
	audit      ports.AuditPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, audit ports.AuditPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clients:    directory.NewGormClientDirectory(gormDB),
		products:   directory.NewGormProductCatalog(gormDB),
		locations:  directory.NewGormLocationDirectory(gormDB),
		areas:      directory.NewGormAreaDirectory(gormDB),
		allocator:  services.NewOrderNumberAllocator(),
		audit:      audit,
	}
}

// MigrateDatabase creates or updates the schema for every persisted type.
func MigrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&stockrepo.StockRecordDTO{},
		&movementrepo.StockMovementDTO{},
		&directory.ClientDTO{},
		&directory.ProductDTO{},
		&directory.LocationDTO{},
		&directory.AreaDTO{},
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.clients, c.products, c.allocator, c.audit)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateCreateStockRecordCommandHandler() commands.CreateStockRecordCommandHandler {
	return commands.NewCreateStockRecordCommandHandler(
		c.stockUoWFactory(), c.products, c.locations, c.areas, c.audit)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.stockUoWFactory())
}

func (c *CompositionRoot) CreateRecordStockMovementCommandHandler() commands.RecordStockMovementCommandHandler {
	return commands.NewRecordStockMovementCommandHandler(
		c.stockUoWFactory(), c.products, c.locations, c.audit)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockRecordQueryHandler() queries.GetStockRecordQueryHandler {
	return queries.NewGetStockRecordQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockByProductQueryHandler() queries.GetStockByProductQueryHandler {
	return queries.NewGetStockByProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockMovementsQueryHandler() queries.GetStockMovementsQueryHandler {
	return queries.NewGetStockMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpiredStockQueryHandler() queries.GetExpiredStockQueryHandler {
	return queries.NewGetExpiredStockQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}
