package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/accountrepo"
	"tracking/internal/adapters/out/postgres/boxrepo"
	"tracking/internal/adapters/out/postgres/eventrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/shipmentrepo"
	"tracking/internal/core/domain/model/box"
	"tracking/internal/core/domain/model/event"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/core/ports"

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

// SetupSuite initializes the PostgreSQL container and database connection and
// runs the schema migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&boxrepo.BoxDTO{},
		&shipmentrepo.ShipmentDTO{},
		&eventrepo.EventDTO{},
		&accountrepo.UserDTO{},
		&accountrepo.CompanyDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, boxes, shipments, events, users, companies").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated
// instances exposing all repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.BoxRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.EventRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.CompanyRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("CT-1001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_OrderCreationWorkflow verifies the order plus event write
// pattern used by the create order use case.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderCreationWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("CT-2001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	orderID := testOrder.ID()
	createdEvent, err := event.NewOrderCreated(&orderID, testOrder.UserID(), time.Now())
	suite.Require().NoError(err)

	err = uow.EventRepository().Add(ctx, createdEvent)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	events, err := newUow.EventRepository().GetAllForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal("NEW", events[0].Status())
	suite.Equal(orderID, *events[0].OrderID())
}

// TestUnitOfWork_ShipmentAssemblyWorkflow verifies the multi-repository
// transaction used by the create shipment use case.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentAssemblyWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("CT-3001")
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	testBox, err := box.NewBox(testOrder.ID(), "BX-3001", "L-3001", kernel.NoDimensions(), "")
	suite.Require().NoError(err)
	err = uow.BoxRepository().Add(ctx, testBox)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment("WB-3001", time.Now(), "", testOrder.UserID(), time.Now())
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = testBox.AttachToShipment(testShipment.ID())
	suite.Require().NoError(err)
	err = uow.BoxRepository().Update(ctx, testBox)
	suite.Require().NoError(err)

	waybillEvent, err := event.NewShipmentCreated(testShipment.WaybillNum(), testOrder.UserID(), time.Now())
	suite.Require().NoError(err)
	err = uow.EventRepository().Add(ctx, waybillEvent)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedBox, err := newUow.BoxRepository().Get(ctx, testBox.ID())
	suite.Require().NoError(err)
	suite.Equal(box.StatusSorting, retrievedBox.Status())
	suite.Equal(testShipment.ID(), *retrievedBox.ShipmentID())

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal("WB-3001", retrievedShipment.WaybillNum())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("CT-4001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	testBox, err := box.NewBox(testOrder.ID(), "BX-4001", "L-4001", kernel.NoDimensions(), "")
	suite.Require().NoError(err)
	err = uow.BoxRepository().Add(ctx, testBox)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.BoxRepository().Get(ctx, testBox.ID())
	suite.Require().Error(err, "Box should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained from
// different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder("CT-5001")
	order2 := suite.createTestOrder("CT-5002")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work without
// explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("CT-6001")

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_AccountRepositories verifies user and company persistence
// through the unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AccountRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	company, err := tenant.NewCompany("Sender LLC", false)
	suite.Require().NoError(err)
	err = uow.CompanyRepository().Add(ctx, company)
	suite.Require().NoError(err)

	companyID := company.ID()
	user, err := tenant.NewUser("alice", "Alice", "alice@example.com", "hash", "token-abc", &companyID)
	suite.Require().NoError(err)
	err = uow.UserRepository().Add(ctx, user)
	suite.Require().NoError(err)

	byUsername, err := uow.UserRepository().GetByUsername(ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal(user.ID(), byUsername.ID())
	suite.Equal(companyID, *byUsername.CompanyID())

	byToken, err := uow.UserRepository().GetByToken(ctx, "token-abc")
	suite.Require().NoError(err)
	suite.Equal(user.ID(), byToken.ID())

	retrievedCompany, err := uow.CompanyRepository().Get(ctx, companyID)
	suite.Require().NoError(err)
	suite.Equal("Sender LLC", retrievedCompany.Name())
	suite.False(retrievedCompany.IsTransportCompany())
}

// createTestOrder creates a valid order for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(clientTracking string) *order.Order {
	tracking, err := kernel.NewTrackingNumber(7)
	suite.Require().NoError(err)

	companyID := uint64(3)
	testOrder, err := order.NewOrder(
		7, &companyID, 5,
		clientTracking, "RO-1",
		tracking, order.Details{}, time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
