package donation

import (
	common_models "go-temple/internal/common/models"
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DonationApi struct {
	controller *DonationController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewDonationApi(controller *DonationController, issuer *auth.TokenIssuer, cfg *config.Config) *DonationApi {
	return &DonationApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers donation routes. Every route is action-gated against the
// caller's flattened permissions.
func (h *DonationApi) Setup(app *fiber.App) {
	donations := app.Group("/api/donation",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
	)

	donations.Post("/create/:templeId",
		middleware.RequireAction(common_models.ActionCreate), h.controller.CreateDonation)
	donations.Get("/get/:templeId",
		middleware.RequireAction(common_models.ActionRead), h.controller.ListDonations)
	donations.Get("/get/:templeId/:id",
		middleware.RequireAction(common_models.ActionRead), h.controller.GetDonation)
	donations.Get("/report/:templeId",
		middleware.RequireAction(common_models.ActionRead), h.controller.DownloadReport)
	donations.Put("/edit/:templeId/:id",
		middleware.RequireAction(common_models.ActionUpdate), h.controller.UpdateDonation)
	donations.Delete("/delete/:templeId/:id",
		middleware.RequireAction(common_models.ActionDelete), h.controller.DeleteDonation)
}
