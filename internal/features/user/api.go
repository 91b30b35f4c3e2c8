package user

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewUserApi(controller *UserController, issuer *auth.TokenIssuer, cfg *config.Config) *UserApi {
	return &UserApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers user routes. Signin is the entry point; management is
// admin-only, edit is self-or-admin (checked in the service).
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/user")

	users.Post("/signin", h.controller.SigninUser)

	authed := middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth)
	scoped := middleware.RequireTempleScope()
	adminOnly := middleware.RequireSuperAdmin()

	users.Put("/edit/:userId", authed, h.controller.EditUser)

	users.Post("/create/:templeId", authed, scoped, adminOnly, h.controller.CreateUser)
	users.Get("/get/:templeId", authed, scoped, adminOnly, h.controller.GetUsersByTemple)
	users.Delete("/delete/:userId", authed, adminOnly, h.controller.DeleteUser)
}
