package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-temple/internal/common/api"
	"go-temple/internal/config"
	"go-temple/internal/database"
	"go-temple/internal/features/activity"
	"go-temple/internal/features/asset"
	"go-temple/internal/features/auth"
	"go-temple/internal/features/donation"
	"go-temple/internal/features/event"
	"go-temple/internal/features/expense"
	"go-temple/internal/features/export"
	"go-temple/internal/features/inventory"
	"go-temple/internal/features/permission"
	"go-temple/internal/features/role"
	"go-temple/internal/features/superadmin"
	"go-temple/internal/features/system"
	"go-temple/internal/features/temple"
	"go-temple/internal/features/tenant"
	"go-temple/internal/features/user"
	"go-temple/internal/logger"
	"go-temple/internal/middleware"

	_ "go-temple/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// @title           Temple Management API
// @version         1.0
// @description     Multi-tenant temple management REST API with role based access control.

// @host            localhost:8000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Session tokens
			auth.NewTokenIssuer,

			// Live activity feed
			activity.NewHub,

			// Reporting warehouse
			export.NewWarehouse,
			export.NewScheduler,

			// Initialize Repository
			temple.NewTempleRepository,
			superadmin.NewSuperAdminRepository,
			user.NewUserRepository,
			role.NewRoleRepository,
			permission.NewPermissionRepository,
			donation.NewDonationRepository,
			expense.NewExpenseRepository,
			event.NewEventRepository,
			inventory.NewInventoryRepository,
			tenant.NewTenantRepository,
			asset.NewAssetRepository,

			temple.NewTempleService,
			superadmin.NewSuperAdminService,
			user.NewUserService,
			role.NewRoleService,
			permission.NewPermissionService,
			donation.NewDonationService,
			expense.NewExpenseService,
			event.NewEventService,
			inventory.NewInventoryService,
			tenant.NewTenantService,
			asset.NewAssetService,
			export.NewExportService,

			// Initialize Controller
			temple.NewTempleController,
			superadmin.NewSuperAdminController,
			user.NewUserController,
			role.NewRoleController,
			permission.NewPermissionController,
			donation.NewReportBuilder,
			donation.NewDonationController,
			expense.NewExpenseController,
			event.NewEventController,
			inventory.NewInventoryController,
			tenant.NewTenantController,
			asset.NewAssetController,
			export.NewExportController,
			activity.NewActivityController,

			// Initialize API Routes
			AsRoute(temple.NewTempleApi),
			AsRoute(superadmin.NewSuperAdminApi),
			AsRoute(user.NewUserApi),
			AsRoute(role.NewRoleApi),
			AsRoute(permission.NewPermissionApi),
			AsRoute(donation.NewDonationApi),
			AsRoute(expense.NewExpenseApi),
			AsRoute(event.NewEventApi),
			AsRoute(inventory.NewInventoryApi),
			AsRoute(tenant.NewTenantApi),
			AsRoute(asset.NewAssetApi),
			AsRoute(export.NewExportApi),
			AsRoute(activity.NewActivityApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,

			// Nightly warehouse export
			func(s *export.Scheduler) {},
		),
	)

	app.Run()
}
