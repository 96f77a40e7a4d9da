package labelsession_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	origin = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Warehouse 7", Street1: "12 Dock Rd", City: "Newark", Region: "NJ", PostalCode: "07102", Country: "US",
	})
	originFixed = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Warehouse 7", Street1: "12 Dock Rd", City: "Newark", Region: "NJ", PostalCode: "07102-4411", Country: "US",
	})
	shipping = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Ada Lovelace", Street1: "5 Elm St", City: "Portland", Region: "OR", PostalCode: "97201", Country: "US",
	})
)

type loaderMock struct{ mock.Mock }

func (m *loaderMock) Load(ctx context.Context, orderID string) (kernel.Address, kernel.Address, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.Address), args.Get(1).(kernel.Address), args.Error(2)
}

type validatorMock struct{ mock.Mock }

func (m *validatorMock) Validate(ctx context.Context, a kernel.Address) (ports.ValidationResult, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(ports.ValidationResult), args.Error(1)
}

// loaderFunc adapts a function to ports.OrderDataLoader.
type loaderFunc func(ctx context.Context, orderID string) (kernel.Address, kernel.Address, error)

func (f loaderFunc) Load(ctx context.Context, orderID string) (kernel.Address, kernel.Address, error) {
	return f(ctx, orderID)
}

func waitForState(t *testing.T, s *labelsession.Session, kind labelflow.StateKind) labelsession.View {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.View().State.Kind() == kind
	}, 2*time.Second, 5*time.Millisecond, "session never reached %s, last state %s", kind, s.View().State.Kind())
	return s.View()
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
