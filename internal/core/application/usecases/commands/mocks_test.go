package commands_test

import (
	"context"
	"testing"
	"time"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/core/domain/model/order"
	"shippinglabel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	origin = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Warehouse 7", Street1: "12 Dock Rd", City: "Newark", Region: "NJ", PostalCode: "07102", Country: "US",
	})
	shipping = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Ada Lovelace", Street1: "5 Elm St", City: "Portland", Region: "OR", PostalCode: "97201", Country: "US",
	})
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderDataLoader struct{ mock.Mock }

func (m *MockOrderDataLoader) Load(ctx context.Context, orderID string) (kernel.Address, kernel.Address, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.Address), args.Get(1).(kernel.Address), args.Error(2)
}

type MockAddressValidator struct{ mock.Mock }

func (m *MockAddressValidator) Validate(ctx context.Context, a kernel.Address) (ports.ValidationResult, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(ports.ValidationResult), args.Error(1)
}

// newLoadedRegistry returns a registry whose loader always answers with
// origin and shipping.
func newLoadedRegistry(t *testing.T) *labelsession.Registry {
	t.Helper()
	loader := new(MockOrderDataLoader)
	loader.On("Load", mock.Anything, mock.Anything).Return(origin, shipping, nil)
	r := labelsession.NewRegistry(loader, new(MockAddressValidator))
	t.Cleanup(r.CloseAll)
	return r
}

func openWaiting(t *testing.T, r *labelsession.Registry, orderID string) *labelsession.Session {
	t.Helper()
	s, err := r.Open(orderID)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return s.View().State.Kind() == labelflow.KindWaitingForUser
	}, 2*time.Second, 5*time.Millisecond)
	return s
}
