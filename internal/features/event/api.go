package event

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type EventApi struct {
	controller *EventController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewEventApi(controller *EventController, issuer *auth.TokenIssuer, cfg *config.Config) *EventApi {
	return &EventApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers event routes behind the admin gate.
func (h *EventApi) Setup(app *fiber.App) {
	events := app.Group("/api/event",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	events.Post("/create/:templeId", h.controller.CreateEvent)
	events.Get("/get/:templeId", h.controller.GetEvents)
	events.Put("/edit/:templeId/:id", h.controller.UpdateEvent)
	events.Delete("/delete/:templeId/:id", h.controller.DeleteEvent)
}
