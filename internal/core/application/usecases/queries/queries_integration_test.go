package queries_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/accountrepo"
	"tracking/internal/adapters/out/postgres/boxrepo"
	"tracking/internal/adapters/out/postgres/eventrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/shipmentrepo"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite verifies the read side against a real
// PostgreSQL database, with a focus on tenant scoping and the derived order
// status.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&boxrepo.BoxDTO{},
		&shipmentrepo.ShipmentDTO{},
		&eventrepo.EventDTO{},
		&accountrepo.UserDTO{},
		&accountrepo.CompanyDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, boxes, shipments, events RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedTwoTenants writes two orders of company 3 with boxes, one order of
// company 8, and a shipment carrying one of company 3's boxes.
func (suite *QueriesIntegrationTestSuite) seedTwoTenants() {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	orders := []orderrepo.OrderDTO{
		{UserID: 7, CompanyID: uintPtr(3), RecipientCompanyID: 5, LogisticTracking: "100000000710", ClientTracking: "CT-1", ShippingMethod: "auto", UpdatedAt: now},
		{UserID: 7, CompanyID: uintPtr(3), RecipientCompanyID: 5, LogisticTracking: "100000000711", ClientTracking: "CT-2", ShippingMethod: "auto", UpdatedAt: now},
		{UserID: 9, CompanyID: uintPtr(8), RecipientCompanyID: 5, LogisticTracking: "100000000912", ClientTracking: "CT-1", ShippingMethod: "auto", UpdatedAt: now},
	}
	suite.Require().NoError(suite.db.Create(&orders).Error)

	boxes := []boxrepo.BoxDTO{
		{OrderID: uintPtr(1), ClientCode: "BX-1", Code: "L-1", Status: "NEW"},
		{OrderID: uintPtr(1), ClientCode: "BX-2", Code: "L-2", Status: "SORTING", ShipmentID: uintPtr(1)},
		{OrderID: uintPtr(1), ClientCode: "BX-3", Code: "L-3", Status: "NEW"},
		{OrderID: uintPtr(3), ClientCode: "BX-4", Code: "L-4", Status: "DELIVERING"},
		{ClientCode: "BX-5", Code: "L-5", Status: "NEW"}, // orphaned
	}
	suite.Require().NoError(suite.db.Create(&boxes).Error)

	shipments := []shipmentrepo.ShipmentDTO{
		{WaybillNum: "WB-1", WaybillDate: now, AuthorID: 9, CreatedAt: now},
		{WaybillNum: "WB-2", WaybillDate: now, AuthorID: 9, CreatedAt: now}, // carries no boxes
	}
	suite.Require().NoError(suite.db.Create(&shipments).Error)

	events := []eventrepo.EventDTO{
		{Status: "NEW", OrderID: uintPtr(1), AuthorID: 7, At: now},
		{Status: "READY_FOR_SHIPPING", Comments: "waybill WB-1", AuthorID: 9, At: now.Add(time.Hour)},
	}
	suite.Require().NoError(suite.db.Create(&events).Error)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_ScopedToOwnCompany() {
	suite.seedTwoTenants()

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(suite.actor(7, uintPtr(3), false), 1, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(int64(2), page.Count)
	suite.Require().Len(page.Results, 2)
	for _, o := range page.Results {
		suite.Equal(uint64(3), *o.CompanyID)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_DerivedStatusIsSortedSet() {
	suite.seedTwoTenants()

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(suite.actor(7, uintPtr(3), false), 1, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(page.Results, 2)

	// Order 1 has boxes NEW, SORTING, NEW; duplicates collapse and the set
	// comes back sorted.
	first := page.Results[0]
	suite.Equal(uint64(1), first.ID)
	suite.Equal([]string{"NEW", "SORTING"}, first.Status)
	suite.Equal([]uint64{1, 2, 3}, first.BoxIDs)

	// Order 2 has no boxes.
	second := page.Results[1]
	suite.Empty(second.Status)
	suite.Empty(second.BoxIDs)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_TransportCompanySeesAllTenants() {
	suite.seedTwoTenants()

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(suite.actor(11, uintPtr(2), true), 1, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), page.Count)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_ActorWithoutCompanySeesNothing() {
	suite.seedTwoTenants()

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(suite.actor(13, nil, false), 1, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(0), page.Count)
	suite.Empty(page.Results)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_Pagination() {
	suite.seedTwoTenants()

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(suite.actor(7, uintPtr(3), false), 2, 1)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(int64(2), page.Count, "Count covers the whole scoped set")
	suite.Require().Len(page.Results, 1)
	suite.Equal(uint64(2), page.Results[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ForeignOrderReadsAsMissing() {
	suite.seedTwoTenants()

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(suite.actor(7, uintPtr(3), false), 3)
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_IncludesEventHistory() {
	suite.seedTwoTenants()

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(suite.actor(7, uintPtr(3), false), 1)
	suite.Require().NoError(err)

	resp, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(uint64(1), resp.ID)
	suite.Require().Len(resp.Events, 1)
	suite.Equal("NEW", resp.Events[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetBoxes_OrphanedBoxesInvisibleToTenants() {
	suite.seedTwoTenants()

	handler := queries.NewGetBoxesQueryHandler(suite.db)
	query, err := queries.NewGetBoxesQuery(suite.actor(7, uintPtr(3), false), 1, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(int64(3), page.Count, "Only boxes of own orders are visible")
	for _, b := range page.Results {
		suite.NotNil(b.OrderID)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetBoxes_TransportCompanySeesOrphans() {
	suite.seedTwoTenants()

	handler := queries.NewGetBoxesQueryHandler(suite.db)
	query, err := queries.NewGetBoxesQuery(suite.actor(11, uintPtr(2), true), 1, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(5), page.Count)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipments_VisibleOnlyWithOwnBoxAboard() {
	suite.seedTwoTenants()

	handler := queries.NewGetShipmentsQueryHandler(suite.db)
	query, err := queries.NewGetShipmentsQuery(suite.actor(7, uintPtr(3), false), 1, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), page.Count)
	suite.Require().Len(page.Results, 1)
	suite.Equal("WB-1", page.Results[0].WaybillNum)
	suite.Equal([]uint64{2}, page.Results[0].BoxIDs)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_DetailIncludesBoxRows() {
	suite.seedTwoTenants()

	handler := queries.NewGetShipmentQueryHandler(suite.db)
	query, err := queries.NewGetShipmentQuery(suite.actor(11, uintPtr(2), true), 1)
	suite.Require().NoError(err)

	resp, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("WB-1", resp.WaybillNum)
	suite.Require().Len(resp.Boxes, 1)
	suite.Equal("BX-2", resp.Boxes[0].ClientCode)
	suite.Equal("SORTING", resp.Boxes[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_EmptyShipmentHiddenFromTenants() {
	suite.seedTwoTenants()

	handler := queries.NewGetShipmentQueryHandler(suite.db)
	query, err := queries.NewGetShipmentQuery(suite.actor(7, uintPtr(3), false), 2)
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_BlockedActorRejected() {
	suite.seedTwoTenants()

	actor, err := tenant.NewActor(7, uintPtr(3), false, true)
	suite.Require().NoError(err)

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(actor, 1, 10)
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, tenant.ErrUserBlocked)
}

func (suite *QueriesIntegrationTestSuite) actor(userID uint64, companyID *uint64, transport bool) tenant.Actor {
	actor, err := tenant.NewActor(userID, companyID, transport, false)
	suite.Require().NoError(err)
	return actor
}

func uintPtr(v uint64) *uint64 { return &v }

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
