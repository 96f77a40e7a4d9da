package queries_test

import (
	"context"
	"testing"
	"time"

	"shippinglabel/internal/adapters/out/postgres/orderrepo"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(string, any) {}

type GetPendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetPendingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, nopTracker{})
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_OnlyPendingOrders_OldestFirst() {
	ctx := context.Background()
	first := suite.addOrder("A-1", false)
	suite.addOrder("A-2", true)
	third := suite.addOrder("A-3", false)

	result, err := suite.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(third.ID(), result[1].ID)
	suite.True(first.Origin().IsEqual(result[0].Origin))
	suite.True(first.Shipping().IsEqual(result[0].Shipping))
	suite.False(result[0].CreatedAt.IsZero())
	suite.False(result[1].CreatedAt.Before(result[0].CreatedAt))
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPendingOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) addOrder(id string, labeled bool) *order.Order {
	origin := kernel.MustNewAddress(kernel.AddressFields{
		Company: "Northwind", Street1: "1 Harbour Way", City: "Toronto", Region: "ON", PostalCode: "M5V 2T6", Country: "CA",
	})
	shipping := kernel.MustNewAddress(kernel.AddressFields{
		Name: "Sam Poe", Street1: "77 Rue de Rivoli", City: "Paris", PostalCode: "75001", Country: "FR",
	})
	o, err := order.NewOrder(id, origin, shipping)
	suite.Require().NoError(err)
	if labeled {
		suite.Require().NoError(o.MarkLabeled())
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	time.Sleep(time.Millisecond)
	return o
}

func TestGetPendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingOrdersQueryHandlerTestSuite))
}
