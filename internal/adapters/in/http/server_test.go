package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpadapter "shippinglabel/internal/adapters/in/http"
	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/core/domain/model/order"
	"shippinglabel/internal/core/domain/services"
	"shippinglabel/internal/core/ports"
	"shippinglabel/internal/pkg/errs"
	"shippinglabel/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderBody = `{
	"id": "1042",
	"origin": {"name": "Warehouse 7", "street1": "12 Dock Rd", "city": "Newark", "region": "NJ", "postalCode": "07102", "country": "US"},
	"shipping": {"name": "Ada Lovelace", "street1": "5 Elm St", "city": "Portland", "region": "OR", "postalCode": "97201", "country": "US"}
}`

// memoryOrders is an in-memory order store shared by every unit of work.
type memoryOrders struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func (m *memoryOrders) Create() commands.OrderUoW { return &memoryUoW{store: m} }

func (m *memoryOrders) Load(_ context.Context, orderID string) (kernel.Address, kernel.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return kernel.Address{}, kernel.Address{}, errs.NewObjectNotFoundError("order", orderID)
	}
	return o.Origin(), o.Shipping(), nil
}

func (m *memoryOrders) status(orderID string) order.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[orderID]; ok {
		return o.Status()
	}
	return order.Unknown
}

type memoryUoW struct{ store *memoryOrders }

func (u *memoryUoW) Begin(context.Context) error            { return nil }
func (u *memoryUoW) Commit(context.Context) error           { return nil }
func (u *memoryUoW) Rollback(context.Context) error         { return nil }
func (u *memoryUoW) OrderRepository() ports.OrderRepository { return (*memoryRepo)(u.store) }

type memoryRepo memoryOrders

func (r *memoryRepo) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = o
	return nil
}

func (r *memoryRepo) Update(ctx context.Context, o *order.Order) error { return r.Add(ctx, o) }

func (r *memoryRepo) Get(_ context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (r *memoryRepo) GetAllPending(context.Context) ([]*order.Order, error) {
	return nil, nil
}

type pendingFunc func() ([]queries.GetPendingOrdersQueryResponse, error)

func (f pendingFunc) Handle(context.Context, queries.GetPendingOrdersQuery) ([]queries.GetPendingOrdersQueryResponse, error) {
	return f()
}

type harness struct {
	e        *echo.Echo
	orders   *memoryOrders
	registry *labelsession.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := logging.Discard()
	orders := &memoryOrders{orders: map[string]*order.Order{}}
	registry := labelsession.NewRegistry(orders, services.NewRuleAddressValidator(),
		labelsession.WithRegistryLogger(logger))
	t.Cleanup(registry.CloseAll)

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder: commands.NewCreateOrderCommandHandler(orders),
		PendingOrders: pendingFunc(func() ([]queries.GetPendingOrdersQueryResponse, error) {
			return []queries.GetPendingOrdersQueryResponse{{
				ID:        "7",
				Origin:    kernel.MustNewAddress(kernel.AddressFields{City: "Oslo", Country: "NO"}),
				Shipping:  kernel.MustNewAddress(kernel.AddressFields{City: "Bergen", Country: "NO"}),
				CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			}}, nil
		}),
		StartLabelFlow: commands.NewStartLabelFlowCommandHandler(registry, logger),
		GetLabelFlow:   queries.NewGetLabelFlowQueryHandler(registry),
		LabelFlowEvent: commands.NewHandleLabelFlowEventCommandHandler(registry, orders, logger),
		Restart:        commands.NewRestartLabelFlowCommandHandler(registry),
		Close:          commands.NewCloseLabelFlowCommandHandler(registry),
	}, logger)

	e := echo.New()
	server.Register(e)
	return &harness{e: e, orders: orders, registry: registry}
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// startWaiting creates the order, starts a flow and waits until it is
// loaded.
func (h *harness) startWaiting(t *testing.T) string {
	t.Helper()
	require.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/api/v1/orders", orderBody).Code)

	rec := h.do(http.MethodPost, "/api/v1/labels", `{"orderId": "1042"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode[httpadapter.LabelFlow](t, rec).ID

	h.waitFor(t, id, labelflow.KindWaitingForUser)
	return id
}

func (h *harness) waitFor(t *testing.T, id string, kind labelflow.StateKind) httpadapter.LabelFlow {
	t.Helper()
	var flow httpadapter.LabelFlow
	require.Eventually(t, func() bool {
		rec := h.do(http.MethodGet, "/api/v1/labels/"+id, "")
		if rec.Code != http.StatusOK {
			return false
		}
		flow = decode[httpadapter.LabelFlow](t, rec)
		return flow.State == kind
	}, 2*time.Second, 5*time.Millisecond)
	return flow
}

func (h *harness) send(id, body string) *httptest.ResponseRecorder {
	return h.do(http.MethodPost, "/api/v1/labels/"+id+"/events", body)
}

func TestServer_Health(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_Orders(t *testing.T) {
	t.Run("should create an order", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodPost, "/api/v1/orders", orderBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, order.Pending, h.orders.status("1042"))
	})

	t.Run("should reject an order without addresses", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodPost, "/api/v1/orders", `{"id": "1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decode[httpadapter.Error](t, rec).Code)
	})

	t.Run("should list pending orders", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodGet, "/api/v1/orders/pending", "")

		require.Equal(t, http.StatusOK, rec.Code)
		pending := decode[[]httpadapter.PendingOrder](t, rec)
		require.Len(t, pending, 1)
		assert.Equal(t, "7", pending[0].ID)
		assert.Equal(t, "Bergen", pending[0].Shipping.City)
	})
}

func TestServer_StartLabelFlow(t *testing.T) {
	t.Run("should load the order and wait for the user", func(t *testing.T) {
		h := newHarness(t)

		id := h.startWaiting(t)
		flow := h.waitFor(t, id, labelflow.KindWaitingForUser)

		assert.Equal(t, "1042", flow.OrderID)
		require.NotNil(t, flow.Data)
		assert.Equal(t, "Newark", flow.Data.Origin.City)
		assert.Equal(t, []string{"ORIGIN_ADDRESS"}, flow.Data.StepsDone)
		assert.Equal(t, labelflow.EffectUpdateViewState, flow.Effect.Type)
		assert.Len(t, flow.AcceptedEvents, 12)
	})

	t.Run("should fail loading for an unknown order", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodPost, "/api/v1/labels", `{"orderId": "nope"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		flow := h.waitFor(t, decode[httpadapter.LabelFlow](t, rec).ID, labelflow.KindDataLoadingFailure)
		assert.Equal(t, labelflow.EffectShowError, flow.Effect.Type)
		assert.Equal(t, labelflow.ErrDataLoading.Error(), flow.Effect.Error)
		assert.Empty(t, flow.AcceptedEvents)
	})

	t.Run("should reject a blank order id", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodPost, "/api/v1/labels", `{"orderId": "  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_SendLabelFlowEvent(t *testing.T) {
	t.Run("should validate the origin address", func(t *testing.T) {
		h := newHarness(t)
		id := h.startWaiting(t)

		rec := h.send(id, `{"type": "OriginAddressValidationStarted"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())


		require.Eventually(t, func() bool {
			flow := decode[httpadapter.LabelFlow](t, h.do(http.MethodGet, "/api/v1/labels/"+id, ""))
			return flow.State == labelflow.KindWaitingForUser && len(flow.Data.StepsDone) == 2
		}, 2*time.Second, 5*time.Millisecond)
	})

	t.Run("should accept an address event", func(t *testing.T) {
		h := newHarness(t)
		id := h.startWaiting(t)
		require.Equal(t, http.StatusOK, h.send(id, `{"type": "EditOriginAddressRequested"}`).Code)

		rec := h.send(id, `{"type": "AddressUsedAsIs", "address": {"street1": "1 New Rd", "city": "Trenton", "country": "US"}}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		flow := decode[httpadapter.LabelFlow](t, rec)
		assert.Equal(t, labelflow.KindWaitingForUser, flow.State)
		assert.Equal(t, "Trenton", flow.Data.Origin.City)
	})

	t.Run("should answer 409 for an event the state does not accept", func(t *testing.T) {
		h := newHarness(t)
		id := h.startWaiting(t)

		rec := h.send(id, `{"type": "PaymentSelected"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		h.waitFor(t, id, labelflow.KindWaitingForUser)
	})

	t.Run("should answer 400 for malformed events", func(t *testing.T) {
		h := newHarness(t)
		id := h.startWaiting(t)

		for _, body := range []string{
			`not json`,
			`{}`,
			`{"type": 5}`,
			`{"type": "Teleported"}`,
			`{"type": "DataLoaded"}`,
			`{"type": "AddressValidated", "address": {"country": "US"}}`,
			`{"type": "AddressEditFinished"}`,
			`{"type": "AddressEditFinished", "address": {"city": "No Country"}}`,
		} {
			rec := h.send(id, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("should answer 404 for an unknown session", func(t *testing.T) {
		h := newHarness(t)

		rec := h.send(kernel.NewUUID().String(), `{"type": "PackagesSelected"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should answer 400 for a malformed session id", func(t *testing.T) {
		h := newHarness(t)

		rec := h.send("not-a-uuid", `{"type": "PackagesSelected"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should mark the order labeled when the flow completes", func(t *testing.T) {
		h := newHarness(t)
		id := h.startWaiting(t)

		require.Equal(t, http.StatusOK, h.send(id, `{"type": "PaymentSelectionStarted"}`).Code)
		rec := h.send(id, `{"type": "PaymentSelected"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, decode[httpadapter.LabelFlow](t, rec).Completed)
		assert.Equal(t, order.Labeled, h.orders.status("1042"))
	})
}

func TestServer_RestartAndClose(t *testing.T) {
	t.Run("should restart a flow from scratch", func(t *testing.T) {
		h := newHarness(t)
		id := h.startWaiting(t)
		require.Equal(t, http.StatusOK, h.send(id, `{"type": "PackageSelectionStarted"}`).Code)

		rec := h.do(http.MethodPost, "/api/v1/labels/"+id+"/restart", "")

		require.Equal(t, http.StatusOK, rec.Code)
		flow := h.waitFor(t, id, labelflow.KindWaitingForUser)
		assert.Equal(t, []string{"ORIGIN_ADDRESS"}, flow.Data.StepsDone)
	})

	t.Run("should close a flow", func(t *testing.T) {
		h := newHarness(t)
		id := h.startWaiting(t)

		assert.Equal(t, http.StatusNoContent, h.do(http.MethodDelete, "/api/v1/labels/"+id, "").Code)
		assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/api/v1/labels/"+id, "").Code)
		assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, "/api/v1/labels/"+id, "").Code)
		assert.Zero(t, h.registry.Len())
	})
}

func TestServer_APIDocument(t *testing.T) {
	t.Run("should serve a valid OpenAPI 3 document", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodGet, "/openapi.json", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		doc := decode[map[string]any](t, rec)
		assert.Contains(t, doc["openapi"], "3.")
	})

	t.Run("should describe every route", func(t *testing.T) {
		doc, err := httpadapter.OpenAPI3(context.Background())
		require.NoError(t, err)

		for _, path := range []string{
			"/health",
			"/api/v1/orders",
			"/api/v1/orders/pending",
			"/api/v1/labels",
			"/api/v1/labels/{id}",
			"/api/v1/labels/{id}/events",
			"/api/v1/labels/{id}/restart",
		} {
			assert.NotNil(t, doc.Paths.Find(path), path)
		}
	})
}
