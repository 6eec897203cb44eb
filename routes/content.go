package routes

import (
	"github.com/artihcus-web/website-backend/controllers"
	"github.com/gofiber/fiber/v2"
)

func RegisterContentRoutes(g fiber.Router, ct *controllers.Content) {
	g.Get("/:kind", ct.List).Name("api.content.index")
	g.Post("/:kind", ct.Create).Name("api.content.create")
	g.Put("/:kind/:id", ct.Update).Name("api.content.update")
	g.Delete("/:kind/:id", ct.Delete).Name("api.content.delete")
}
