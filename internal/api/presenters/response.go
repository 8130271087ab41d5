package presenters

import "github.com/gofiber/fiber/v2"

// SuccessResponse writes data as the raw response body. Listing routes return
// bare arrays and point lookups may return null; no envelope is added.
func SuccessResponse(c *fiber.Ctx, data interface{}, code int) error {
	return c.Status(code).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}
