package temple

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TempleApi struct {
	controller *TempleController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewTempleApi(controller *TempleController, issuer *auth.TokenIssuer, cfg *config.Config) *TempleApi {
	return &TempleApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers temple routes. Creation and reads are public (onboarding
// happens before any principal exists); edits are admin-only.
func (h *TempleApi) Setup(app *fiber.App) {
	temples := app.Group("/api/temple")

	temples.Post("/create", h.controller.CreateTemple)
	temples.Get("/all", h.controller.ListTemples)
	temples.Get("/get/:templeId", h.controller.GetTemple)

	temples.Put("/edit/:templeId",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
		h.controller.UpdateTemple,
	)
}
