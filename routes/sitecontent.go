package routes

import (
	"github.com/artihcus-web/website-backend/controllers"
	"github.com/gofiber/fiber/v2"
)

func RegisterSiteContentRoutes(g fiber.Router, sc *controllers.SiteContent) {
	g.Get("/", sc.Map).Name("api.sitecontent.map")
	g.Get("/list", sc.List).Name("api.sitecontent.index")
	g.Post("/", sc.Upsert).Name("api.sitecontent.upsert")
	g.Put("/:key", sc.Update).Name("api.sitecontent.update")
	g.Delete("/:key", sc.Delete).Name("api.sitecontent.delete")
}
