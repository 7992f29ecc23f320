package cmd

import (
	"context"
	"log/slog"

	httpin "kakanin/internal/adapters/in/http"
	"kakanin/internal/adapters/out/postgres"
	"kakanin/internal/core/application/usecases/commands"
	"kakanin/internal/core/application/usecases/queries"
	"kakanin/internal/core/ports"
	"kakanin/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateEnsureAdminUserCommandHandler() commands.EnsureAdminUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnsureAdminUserCommandHandler(f)
}

// CreateUnitOfWork gives maintenance tools direct repository access. Without
// Begin the repositories read and write outside a transaction.
func (c *CompositionRoot) CreateUnitOfWork() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDuePickupsQueryHandler() queries.GetDuePickupsQueryHandler {
	return queries.NewGetDuePickupsQueryHandler(c.gormDB)
}

// EnsureAdminUser creates the configured administrator on an empty users table.
func (c *CompositionRoot) EnsureAdminUser(ctx context.Context, logger *slog.Logger) error {
	cmd, err := commands.NewEnsureAdminUserCommand(c.config.AdminUsername, c.config.AdminPassword)
	if err != nil {
		return err
	}

	handler := c.CreateEnsureAdminUserCommandHandler()
	created, err := handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if created {
		logger.InfoContext(ctx, "Administrator created", "username", cmd.Username())
		if c.config.UsesDefaultAdminPassword() {
			logger.WarnContext(ctx, "Administrator uses the default password, set ADMIN_PASSWORD")
		}
	}
	return nil
}

// CreateRouter wires the HTTP server into an echo instance.
func (c *CompositionRoot) CreateRouter(logger *slog.Logger) (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateAuthenticateQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		logger,
	)
	return httpin.NewRouter(server, logger)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDuePickupsJob(c.CreateGetDuePickupsQueryHandler(), c.config.DuePickupsSchedule, logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
