package routes

import "github.com/gofiber/fiber/v2"

// The uptime probe deliberately skips the database: the site keeps serving
// through a storage outage, so a dead store must not fail the check.
func RegisterHealthCheckRoutes(g fiber.Router, appName string) {
	g.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(&fiber.Map{
			"healthy": true,
			"name":    appName,
		})
	}).Name("api.health")
}
