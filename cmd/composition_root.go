package cmd

import (
	adapterhttp "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Command handlers
// get a fresh unit of work per invocation; query handlers read from the
// shared connection directly.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateServer assembles the HTTP server over the full handler set.
func (c *CompositionRoot) CreateServer() *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		CreateBox:      c.CreateCreateBoxCommandHandler(),
		UpdateBox:      c.CreateUpdateBoxCommandHandler(),
		DeleteBox:      c.CreateDeleteBoxCommandHandler(),
		CreateShipment: c.CreateCreateShipmentCommandHandler(),
		RegisterUser:   c.CreateRegisterUserCommandHandler(),
		ObtainToken:    c.CreateObtainTokenCommandHandler(),

		GetOrders:    queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:     queries.NewGetOrderQueryHandler(c.gormDB),
		GetBoxes:     queries.NewGetBoxesQueryHandler(c.gormDB),
		GetBox:       queries.NewGetBoxQueryHandler(c.gormDB),
		GetShipments: queries.NewGetShipmentsQueryHandler(c.gormDB),
		GetShipment:  queries.NewGetShipmentQueryHandler(c.gormDB),
	})
}

// CreateAuthMiddleware builds the token authentication middleware.
func (c *CompositionRoot) CreateAuthMiddleware() adapterhttp.AuthMiddleware {
	return adapterhttp.NewAuthMiddleware(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateBoxCommandHandler() commands.CreateBoxCommandHandler {
	return commands.NewCreateBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateUpdateBoxCommandHandler() commands.UpdateBoxCommandHandler {
	return commands.NewUpdateBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateDeleteBoxCommandHandler() commands.DeleteBoxCommandHandler {
	return commands.NewDeleteBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateObtainTokenCommandHandler() commands.ObtainTokenCommandHandler {
	return commands.NewObtainTokenCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) boxUoWFactory() commands.BoxUoWFactory {
	return FuncBoxUoWFactory(func() commands.BoxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBoxUoWFactory func() commands.BoxUoW

func (f FuncBoxUoWFactory) Create() commands.BoxUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
