package controllers

import (
	"fmt"
	"log/slog"

	"github.com/artihcus-web/website-backend/helpers"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/gofiber/fiber/v2"
)

type SiteContent struct {
	svc    *helpers.SiteContentService
	intake *helpers.Intake
}

func NewSiteContent(svc *helpers.SiteContentService, intake *helpers.Intake) *SiteContent {
	return &SiteContent{svc: svc, intake: intake}
}

// Map answers the public site's single lookup for every named asset.
func (sc *SiteContent) Map(c *fiber.Ctx) error {
	flat, err := sc.svc.Map(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(flat)
}

func (sc *SiteContent) List(c *fiber.Ctx) error {
	entries, err := sc.svc.List(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

// Upsert creates or overwrites the entry addressed by the normalized key.
// An uploaded file becomes the value, overriding any literal one.
func (sc *SiteContent) Upsert(c *fiber.Ctx) error {
	in := helpers.SiteContentUpsert{
		Key:      c.FormValue("key"),
		Value:    c.FormValue("value"),
		Type:     c.FormValue("type"),
		Category: c.FormValue("category"),
		Label:    c.FormValue("label"),
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		ref, err := sc.intake.SaveOne(fh)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}

		in.Value = ref
	}

	entry, created, err := sc.svc.Upsert(c.Context(), in)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}

	return c.Status(status).JSON(entry)
}

func (sc *SiteContent) Update(c *fiber.Ctx) error {
	in := helpers.SiteContentUpdate{}
	if err := c.BodyParser(&in); err != nil {
		slog.Error(fmt.Sprintf("Error parsing site content input: %v", err))
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{"error": []string{"Invalid request body."}})
	}

	entry, err := sc.svc.UpdateByKey(c.Context(), c.Params("key"), in)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}

func (sc *SiteContent) Delete(c *fiber.Ctx) error {
	if err := sc.svc.DeleteByKey(c.Context(), c.Params("key")); err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(&fiber.Map{"message": "Deleted"})
}
