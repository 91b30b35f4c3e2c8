package middleware

import (
	common_models "go-temple/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAction checks the flattened action list baked into the caller's
// token. Super admins bypass the check. Must be chained after RequireAuth.
func RequireAction(action common_models.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required.",
			})
		}

		if !claims.Allows(action) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions.",
			})
		}

		return c.Next()
	}
}
