package main

import (
	"context"

	common_models "go-temple/internal/common/models"
	"go-temple/internal/config"
	"go-temple/internal/database"
	"go-temple/internal/features/auth"
	"go-temple/internal/features/permission"
	"go-temple/internal/features/role"
	"go-temple/internal/features/superadmin"
	"go-temple/internal/features/temple"
	"go-temple/internal/features/user"
	"go-temple/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Seed creates a demo temple with its super admin, the full permission
// vocabulary, a staff role and one staff user. Safe to run against an
// empty database only.
func Seed(
	lc fx.Lifecycle,
	templeService temple.TempleService,
	superAdminService superadmin.SuperAdminService,
	permissionService permission.PermissionService,
	roleService role.RoleService,
	userService user.UserService,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Starting database seeding...")

				t, err := templeService.Create(ctx, temple.CreateTempleRequest{
					Name:     "Shree Ram Mandir",
					Location: "Anand, Gujarat",
				})
				if err != nil {
					logger.Error("seed temple", zap.Error(err))
					return
				}

				_, _, err = superAdminService.Create(ctx, superadmin.CreateSuperAdminRequest{
					TempleID: t.ID.Hex(),
					Username: "admin",
					Email:    "admin@temple.local",
					Password: "ChangeMe123",
				})
				if err != nil {
					logger.Error("seed super admin", zap.Error(err))
					return
				}

				allActions := []string{
					string(common_models.ActionCreate),
					string(common_models.ActionRead),
					string(common_models.ActionUpdate),
					string(common_models.ActionDelete),
				}

				permIDs := make([]string, 0, len(permission.ValidPermissionNames))
				for _, name := range permission.ValidPermissionNames {
					p, err := permissionService.Create(ctx, t.ID, permission.CreatePermissionRequest{
						PermissionName: name,
						Actions:        allActions,
					})
					if err != nil {
						logger.Error("seed permission", zap.String("name", name), zap.Error(err))
						return
					}
					permIDs = append(permIDs, p.ID.Hex())
				}

				r, err := roleService.Create(ctx, t.ID, role.CreateRoleRequest{
					Name:        "Donation Manager",
					Permissions: permIDs,
				})
				if err != nil {
					logger.Error("seed role", zap.Error(err))
					return
				}

				_, err = userService.Create(ctx, t.ID, user.CreateUserRequest{
					Username: "staff",
					Email:    "staff@temple.local",
					Password: "ChangeMe123",
					Roles:    []string{r.ID.Hex()},
				})
				if err != nil {
					logger.Error("seed user", zap.Error(err))
					return
				}

				logger.Info("Database seeding complete",
					zap.String("templeId", t.ID.Hex()))
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			auth.NewTokenIssuer,

			temple.NewTempleRepository,
			superadmin.NewSuperAdminRepository,
			permission.NewPermissionRepository,
			role.NewRoleRepository,
			user.NewUserRepository,

			temple.NewTempleService,
			superadmin.NewSuperAdminService,
			permission.NewPermissionService,
			role.NewRoleService,
			user.NewUserService,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
