package export

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	controller *ExportController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewExportApi(controller *ExportController, issuer *auth.TokenIssuer, cfg *config.Config) *ExportApi {
	return &ExportApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers the export trigger behind the admin gate.
func (h *ExportApi) Setup(app *fiber.App) {
	exports := app.Group("/api/export",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	exports.Post("/run/:templeId", h.controller.RunExport)
}
