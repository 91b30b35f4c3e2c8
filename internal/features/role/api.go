package role

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	controller *RoleController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewRoleApi(controller *RoleController, issuer *auth.TokenIssuer, cfg *config.Config) *RoleApi {
	return &RoleApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers role routes behind the admin gate.
func (h *RoleApi) Setup(app *fiber.App) {
	roles := app.Group("/api/role",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	roles.Post("/create/:templeId", h.controller.CreateRole)
	roles.Get("/get/:templeId", h.controller.GetRoles)
	roles.Put("/edit/:templeId/:roleId", h.controller.UpdateRole)
	roles.Delete("/delete/:templeId/:roleId", h.controller.DeleteRole)
}
