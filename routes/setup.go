package routes

import (
	"github.com/artihcus-web/website-backend/config"
	"github.com/artihcus-web/website-backend/controllers"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Deps holds everything the route handlers need, constructed once in main.
type Deps struct {
	Config      *config.Config
	Content     *controllers.Content
	Jobs        *controllers.Jobs
	SiteContent *controllers.SiteContent
	Mail        *controllers.Mail
}

func SetupRoutes(app *fiber.App, deps *Deps) {
	isDebug := deps.Config.Debug

	recoverConfig := recover.Config{
		EnableStackTrace: isDebug,
	}

	corsConfig := cors.Config{
		AllowOrigins: deps.Config.AllowedOrigins,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}

	loggerConfig := logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05 -07:00",
		TimeZone:   utils.DefaultTimeZone(),
	}

	if isDebug {
		corsConfig.AllowOrigins = "*"
	}

	app.Use(recover.New(recoverConfig))
	app.Use(cors.New(corsConfig))
	app.Use(requestid.New())
	app.Use(logger.New(loggerConfig))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Uploaded files, read-only
	app.Static("/uploads", deps.Config.UploadsDir)

	api := app.Group("/api")

	// Health check
	RegisterHealthCheckRoutes(api, deps.Config.AppName)

	// Jobs and site content must be registered before the kind-parameterized
	// content routes so /api/jobs and /api/site-content are not captured by
	// the :kind segment.
	RegisterJobRoutes(api.Group("/jobs"), deps.Jobs)
	RegisterSiteContentRoutes(api.Group("/site-content"), deps.SiteContent)
	RegisterContentRoutes(api, deps.Content)

	// Form relays
	RegisterMailRoutes(app.Group("/send-email"), deps.Mail)

	// Error handlers
	// Must be the last one!
	RegisterErrorHandlers(app)
}
