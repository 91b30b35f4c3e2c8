package tenant

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TenantApi struct {
	controller *TenantController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewTenantApi(controller *TenantController, issuer *auth.TokenIssuer, cfg *config.Config) *TenantApi {
	return &TenantApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers tenant routes behind the admin gate.
func (h *TenantApi) Setup(app *fiber.App) {
	tenants := app.Group("/api/tenant",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	tenants.Post("/create/:templeId", h.controller.CreateTenant)
	tenants.Get("/get/:templeId", h.controller.GetTenants)
	tenants.Put("/edit/:templeId/:id", h.controller.UpdateTenant)
	tenants.Delete("/delete/:templeId/:id", h.controller.DeleteTenant)
}
