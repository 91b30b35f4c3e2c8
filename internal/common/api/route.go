package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature API so main can collect them
// through an fx group and register them in one pass.
type Route interface {
	Setup(app *fiber.App)
}
