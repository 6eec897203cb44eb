package routes

import "github.com/gofiber/fiber/v2"

// Catch-all for routes nothing above matched.
func RegisterErrorHandlers(g fiber.Router) {
	g.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(&fiber.Map{"error": []string{"The requested route does not exist."}})
	})
}
