package asset

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AssetApi struct {
	controller *AssetController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewAssetApi(controller *AssetController, issuer *auth.TokenIssuer, cfg *config.Config) *AssetApi {
	return &AssetApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers asset routes behind the admin gate.
func (h *AssetApi) Setup(app *fiber.App) {
	assets := app.Group("/api/asset",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	assets.Post("/create/:templeId", h.controller.CreateAsset)
	assets.Get("/get/:templeId", h.controller.GetAssets)
	assets.Put("/edit/:templeId/:id", h.controller.UpdateAsset)
	assets.Delete("/delete/:templeId/:id", h.controller.DeleteAsset)
}
