package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireTempleScope pins a request carrying a :templeId param to the
// caller's own temple. Super admins get no exception: every principal,
// admin included, belongs to exactly one temple. Must be chained after
// RequireAuth.
func RequireTempleScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required.",
			})
		}

		templeID := c.Params("templeId")
		if templeID != "" && templeID != claims.TempleID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied: Wrong temple.",
			})
		}

		return c.Next()
	}
}
