package routes

import (
	"github.com/artihcus-web/website-backend/controllers"
	"github.com/gofiber/fiber/v2"
)

func RegisterJobRoutes(g fiber.Router, j *controllers.Jobs) {
	g.Get("/", j.List).Name("api.jobs.index")
	g.Post("/", j.Create).Name("api.jobs.create")
	g.Put("/:id", j.Update).Name("api.jobs.update")
	g.Delete("/:id", j.Delete).Name("api.jobs.delete")
}
