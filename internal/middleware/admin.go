package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireSuperAdmin is the admin-only gate used for tenant-wide management
// operations. It must be chained after RequireAuth.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required.",
			})
		}

		if !claims.SuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied: Super admin required.",
			})
		}

		return c.Next()
	}
}
