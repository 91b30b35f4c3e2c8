package activity

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type ActivityApi struct {
	Controller *ActivityController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewActivityApi(controller *ActivityController, issuer *auth.TokenIssuer, cfg *config.Config) *ActivityApi {
	return &ActivityApi{
		Controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers the feed route. The session cookie is verified during
// the upgrade handshake; the claims land in the connection locals.
func (h *ActivityApi) Setup(app *fiber.App) {
	app.Get("/api/ws/activity",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		websocket.New(h.Controller.HandleFeed),
	)
}
