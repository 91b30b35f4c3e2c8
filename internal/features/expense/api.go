package expense

import (
	"go-temple/internal/config"
	"go-temple/internal/features/auth"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExpenseApi struct {
	controller *ExpenseController
	issuer     *auth.TokenIssuer
	config     *config.Config
}

func NewExpenseApi(controller *ExpenseController, issuer *auth.TokenIssuer, cfg *config.Config) *ExpenseApi {
	return &ExpenseApi{
		controller: controller,
		issuer:     issuer,
		config:     cfg,
	}
}

// Setup registers expense routes behind the admin gate.
func (h *ExpenseApi) Setup(app *fiber.App) {
	expenses := app.Group("/api/expense",
		middleware.RequireAuth(h.issuer, h.config.CookieName, h.config.SkipAuth),
		middleware.RequireTempleScope(),
		middleware.RequireSuperAdmin(),
	)

	expenses.Post("/create/:templeId", h.controller.CreateExpense)
	expenses.Get("/get/:templeId", h.controller.GetExpenses)
	expenses.Put("/edit/:templeId/:id", h.controller.UpdateExpense)
	expenses.Delete("/delete/:templeId/:id", h.controller.DeleteExpense)
}
