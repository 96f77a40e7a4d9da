// Package http exposes the label flow over a JSON REST API served by echo.
package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelflow"
	"shippinglabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	PendingOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.GetPendingOrdersQueryResponse, error)
	}

	StartLabelFlowHandler interface {
		Handle(ctx context.Context, cmd commands.StartLabelFlowCommand) (labelsession.View, error)
	}

	GetLabelFlowHandler interface {
		Handle(ctx context.Context, query queries.GetLabelFlowQuery) (labelsession.View, error)
	}

	LabelFlowEventHandler interface {
		Handle(ctx context.Context, cmd commands.HandleLabelFlowEventCommand) (labelsession.View, error)
	}

	RestartLabelFlowHandler interface {
		Handle(ctx context.Context, cmd commands.RestartLabelFlowCommand) (labelsession.View, error)
	}

	CloseLabelFlowHandler interface {
		Handle(ctx context.Context, cmd commands.CloseLabelFlowCommand) error
	}
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateOrder    CreateOrderHandler
	PendingOrders  PendingOrdersHandler
	StartLabelFlow StartLabelFlowHandler
	GetLabelFlow   GetLabelFlowHandler
	LabelFlowEvent LabelFlowEventHandler
	Restart        RestartLabelFlowHandler
	Close          CloseLabelFlowHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", s.OpenAPI)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/pending", s.GetPendingOrders)
	v1.POST("/labels", s.StartLabelFlow)
	v1.GET("/labels/:id", s.GetLabelFlow)
	v1.DELETE("/labels/:id", s.CloseLabelFlow)
	v1.POST("/labels/:id/events", s.SendLabelFlowEvent)
	v1.POST("/labels/:id/restart", s.RestartLabelFlow)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenAPI handles GET /openapi.json - the API document in OpenAPI 3 form.
func (s *Server) OpenAPI(ctx echo.Context) error {
	doc, err := OpenAPI3(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, doc)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, originErr := body.Origin.toDomain()
	shipping, shippingErr := body.Shipping.toDomain()
	if err := errors.Join(
		wrapInvalid("origin", originErr),
		wrapInvalid("shipping", shippingErr),
	); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(body.ID, origin, shipping)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.handlers.PendingOrders.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]PendingOrder, len(orders))
	for i, o := range orders {
		response[i] = PendingOrder{
			ID:        o.ID,
			Origin:    addressFromDomain(o.Origin),
			Shipping:  addressFromDomain(o.Shipping),
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartLabelFlow handles POST /api/v1/labels.
func (s *Server) StartLabelFlow(ctx echo.Context) error {
	var body NewLabelFlow
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartLabelFlowCommand(body.OrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.StartLabelFlow.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, labelFlowFromView(view))
}

// GetLabelFlow handles GET /api/v1/labels/{id}.
func (s *Server) GetLabelFlow(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetLabelFlowQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.GetLabelFlow.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, labelFlowFromView(view))
}

// SendLabelFlowEvent handles POST /api/v1/labels/{id}/events.
func (s *Server) SendLabelFlowEvent(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	event, err := decodeEvent(body)
	if err != nil {
		return badRequest(ctx, "Invalid event: "+err.Error())
	}

	cmd, err := commands.NewHandleLabelFlowEventCommand(id, event)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.LabelFlowEvent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, labelFlowFromView(view))
}

// RestartLabelFlow handles POST /api/v1/labels/{id}/restart.
func (s *Server) RestartLabelFlow(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRestartLabelFlowCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.Restart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, labelFlowFromView(view))
}

// CloseLabelFlow handles DELETE /api/v1/labels/{id}.
func (s *Server) CloseLabelFlow(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCloseLabelFlowCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.Close.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func sessionID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, ctx.Param("id"), &raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromString(raw)
}

func wrapInvalid(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(param, err)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// fail maps a use case error to a status code.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError || code == http.StatusConflict {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Int("status", code),
			slog.Any("error", err))
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, labelflow.ErrProtocolViolation):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, labelsession.ErrSessionClosed):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
