package utils

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/artihcus-web/website-backend/errs"
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the single place service errors become HTTP responses.
// Nothing is allowed past the boundary unhandled: anything outside the
// taxonomy is reported and answered as an internal error.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var (
		validationErr *errs.ValidationError
		uploadErr     *errs.UploadError
		mailErr       *errs.MailDeliveryError
	)

	switch {
	case errors.Is(err, errs.ErrInvalidKind):
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{"error": []string{"Invalid content type."}})
	case errors.Is(err, errs.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(&fiber.Map{"error": []string{"The requested resource could not be found."}})
	case errors.Is(err, errs.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(&fiber.Map{"error": []string{"Database not connected."}})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{"error": []string{validationErr.Error()}})
	case errors.As(err, &uploadErr):
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{"error": []string{uploadErr.Error()}})
	case errors.As(err, &mailErr):
		sentry.CaptureException(err)
		slog.Error(fmt.Sprintf("Mail delivery failed: %v", err))
		return c.Status(fiber.StatusInternalServerError).JSON(&fiber.Map{"error": []string{mailErr.Error()}})
	default:
		sentry.CaptureException(err)
		slog.Error(fmt.Sprintf("Unhandled request error: %v", err))
		return c.Status(fiber.StatusInternalServerError).JSON(&fiber.Map{"error": []string{"The server has encountered an error that cannot be handled."}})
	}
}
