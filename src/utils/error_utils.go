package utils

import (
	"SSAAM-Backend/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError writes the standard {message} error body.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Message: message,
	})
}
