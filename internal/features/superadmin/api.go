package superadmin

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SuperAdminApi struct {
	controller *SuperAdminController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewSuperAdminApi(controller *SuperAdminController, issuer *auth.TokenIssuer, cfg *config.Config) *SuperAdminApi {
	return &SuperAdminApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers super admin routes. Create and signin are entry points;
// edit requires an authenticated admin session.
func (h *SuperAdminApi) Setup(app *fiber.App) {
	admins := app.Group("/api/superadmin")

	admins.Post("/create", h.controller.CreateSuperAdmin)
	admins.Post("/signin", h.controller.SigninSuperAdmin)

	admins.Put("/edit",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireSuperAdmin(),
		h.controller.EditSuperAdmin,
	)
}
