package inventory

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InventoryApi struct {
	controller *InventoryController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewInventoryApi(controller *InventoryController, issuer *auth.TokenIssuer, cfg *config.Config) *InventoryApi {
	return &InventoryApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers inventory routes behind the admin gate.
func (h *InventoryApi) Setup(app *fiber.App) {
	items := app.Group("/api/inventory",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	items.Post("/create/:templeId", h.controller.CreateItem)
	items.Get("/get/:templeId", h.controller.GetItems)
	items.Put("/edit/:templeId/:id", h.controller.UpdateItem)
	items.Delete("/delete/:templeId/:id", h.controller.DeleteItem)
}
