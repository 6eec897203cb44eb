package routes

import (
	"github.com/artihcus-web/website-backend/controllers"
	"github.com/gofiber/fiber/v2"
)

func RegisterMailRoutes(g fiber.Router, m *controllers.Mail) {
	g.Post("/career", m.Career).Name("mail.career")
	g.Post("/contacthome", m.Contact).Name("mail.contact")
}
