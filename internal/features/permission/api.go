package permission

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PermissionApi struct {
	controller *PermissionController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewPermissionApi(controller *PermissionController, issuer *auth.TokenIssuer, cfg *config.Config) *PermissionApi {
	return &PermissionApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers permission routes. Managing permissions is a tenant-wide
// operation, so the whole group sits behind the admin gate.
func (h *PermissionApi) Setup(app *fiber.App) {
	perms := app.Group("/api/permission",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	perms.Post("/create/:templeId", h.controller.CreatePermission)
	perms.Get("/get/:templeId", h.controller.GetPermissions)
	perms.Put("/edit/:templeId/:permissionId", h.controller.UpdatePermission)
	perms.Delete("/delete/:templeId/:permissionId", h.controller.DeletePermission)
}
