package api

import (
	"go-temple/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

// Error renders a service failure as the structured JSON body the client
// expects. Unclassified errors become a generic 500 so internals never leak.
func Error(c *fiber.Ctx, err error) error {
	code := apperr.StatusCode(err)
	msg := err.Error()
	if code == 500 {
		msg = "Some Error Occured"
	}
	return c.Status(code).JSON(fiber.Map{
		"error": msg,
	})
}
