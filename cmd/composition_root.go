package cmd

import (
	"log/slog"

	httpadapter "shippinglabel/internal/adapters/in/http"
	"shippinglabel/internal/adapters/out/postgres"
	"shippinglabel/internal/adapters/out/postgres/orderrepo"
	"shippinglabel/internal/core/application/labelsession"
	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/services"
	"shippinglabel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *labelsession.Registry
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := labelsession.NewRegistry(
		orderrepo.NewGormOrderDataLoader(gormDB),
		services.NewRuleAddressValidator(),
		labelsession.WithRegistryLogger(logger),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartLabelFlowCommandHandler() commands.StartLabelFlowCommandHandler {
	return commands.NewStartLabelFlowCommandHandler(c.registry, c.logger)
}

func (c *CompositionRoot) CreateHandleLabelFlowEventCommandHandler() commands.HandleLabelFlowEventCommandHandler {
	return commands.NewHandleLabelFlowEventCommandHandler(c.registry, c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRestartLabelFlowCommandHandler() commands.RestartLabelFlowCommandHandler {
	return commands.NewRestartLabelFlowCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateCloseLabelFlowCommandHandler() commands.CloseLabelFlowCommandHandler {
	return commands.NewCloseLabelFlowCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateReapLabelSessionsCommandHandler() commands.ReapLabelSessionsCommandHandler {
	return commands.NewReapLabelSessionsCommandHandler(c.registry, c.logger)
}

func (c *CompositionRoot) CreateGetLabelFlowQueryHandler() queries.GetLabelFlowQueryHandler {
	return queries.NewGetLabelFlowQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		PendingOrders:  c.CreateGetPendingOrdersQueryHandler(),
		StartLabelFlow: c.CreateStartLabelFlowCommandHandler(),
		GetLabelFlow:   c.CreateGetLabelFlowQueryHandler(),
		LabelFlowEvent: c.CreateHandleLabelFlowEventCommandHandler(),
		Restart:        c.CreateRestartLabelFlowCommandHandler(),
		Close:          c.CreateCloseLabelFlowCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	reaper, err := jobs.NewSessionReaperJob(
		c.CreateReapLabelSessionsCommandHandler(),
		c.config.SessionReapSchedule,
		c.config.SessionIdleTimeout,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(reaper), nil
}

// Close ends every open label session.
func (c *CompositionRoot) Close() {
	c.registry.CloseAll()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
