package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/artihcus-web/website-backend/app"
	"github.com/artihcus-web/website-backend/config"
	"github.com/artihcus-web/website-backend/controllers"
	"github.com/artihcus-web/website-backend/helpers"
	"github.com/artihcus-web/website-backend/routes"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Set default timezone
	time.Local = utils.DefaultLocation()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Warn(fmt.Sprintf("Could not load .env file: %v", err))
	}

	app.SetupSentry()

	cfg := config.Load()

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		slog.Error(fmt.Sprintf("Could not create uploads directory: %v", err))
		os.Exit(1)
	}

	// Infrastructure, constructed once and handed down
	store := app.NewStore(cfg.DB, cfg.Debug)
	app.SeedSiteContent(store, filepath.Join("defaults", "site_content.yaml"))

	cache := app.NewCache(cfg.Redis)

	smtp, err := app.NewSMTP(cfg.Email)
	if err != nil {
		slog.Error(fmt.Sprintf("Could not setup email client: %v", err))
		os.Exit(1)
	}

	intake := helpers.NewIntake(cfg.UploadsDir)
	mailer := helpers.NewMailer(smtp, cfg.Email, cfg.AppName)

	deps := &routes.Deps{
		Config:      cfg,
		Content:     controllers.NewContent(helpers.NewContentService(store), intake),
		Jobs:        controllers.NewJobs(helpers.NewJobService(store)),
		SiteContent: controllers.NewSiteContent(helpers.NewSiteContentService(store, cache), intake),
		Mail:        controllers.NewMail(mailer),
	}

	// Setup app
	srv := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		// Room for ten images at the per-file cap
		BodyLimit:   64 * 1024 * 1024,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error(fmt.Sprintf("Application error handler: %v", err))

			code := fiber.StatusInternalServerError
			msg := "The server has encountered an error that cannot be handled."

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(&fiber.Map{"error": []string{msg}})
		},
	})

	// Setup routes
	routes.SetupRoutes(srv, deps)

	// Setup server
	if err := srv.Listen(cfg.Address); err != nil {
		slog.Error(fmt.Sprintf("Could not setup server: %v", err))
		os.Exit(1)
	}
}
