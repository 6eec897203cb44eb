package controllers

import (
	"fmt"
	"log/slog"

	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/helpers"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/gofiber/fiber/v2"
)

// Mail relays the two site forms. Validation happens before the sender is
// touched, so a rejected request never produces an email.
type Mail struct {
	sender helpers.MailSender
}

func NewMail(sender helpers.MailSender) *Mail {
	return &Mail{sender: sender}
}

func (m *Mail) Career(c *fiber.Ctx) error {
	application := helpers.CareerApplication{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		JobTitle: c.FormValue("jobTitle"),
	}

	if fh, err := c.FormFile("resume"); err == nil && fh != nil {
		application.Resume = fh
	}

	application.Clean()

	if missing := application.Missing(); len(missing) > 0 {
		return utils.ErrorResponse(c, &errs.ValidationError{Fields: missing})
	}

	if err := m.sender.SendCareerApplication(c.Context(), application); err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(&fiber.Map{"message": "Application submitted successfully."})
}

func (m *Mail) Contact(c *fiber.Ctx) error {
	inquiry := helpers.ContactInquiry{}
	if err := c.BodyParser(&inquiry); err != nil {
		slog.Error(fmt.Sprintf("Error parsing contact input: %v", err))
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{"error": []string{"Invalid request body."}})
	}

	inquiry.Clean()

	if missing := inquiry.Missing(); len(missing) > 0 {
		return utils.ErrorResponse(c, &errs.ValidationError{Fields: missing})
	}

	if err := m.sender.SendContactInquiry(c.Context(), inquiry); err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(&fiber.Map{"message": "Your message has been sent successfully!"})
}
