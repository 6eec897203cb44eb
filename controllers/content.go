package controllers

import (
	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/helpers"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Content serves the kind-parameterized CRUD routes. The kind is resolved
// once here and passed down as a value.
type Content struct {
	svc    *helpers.ContentService
	intake *helpers.Intake
}

func NewContent(svc *helpers.ContentService, intake *helpers.Intake) *Content {
	return &Content{svc: svc, intake: intake}
}

func (ct *Content) List(c *fiber.Ctx) error {
	kind, err := helpers.ResolveKind(c.Params("kind"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	items, err := ct.svc.List(c.Context(), kind)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (ct *Content) Create(c *fiber.Ctx) error {
	kind, err := helpers.ResolveKind(c.Params("kind"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	images, err := ct.saveImages(c)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	record, err := ct.svc.Create(c.Context(), kind, helpers.FieldsFromCtx(c), images)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (ct *Content) Update(c *fiber.Ctx) error {
	kind, err := helpers.ResolveKind(c.Params("kind"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, errs.ErrNotFound)
	}

	images, err := ct.saveImages(c)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	record, err := ct.svc.Update(c.Context(), kind, id, helpers.FieldsFromCtx(c), images)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

func (ct *Content) Delete(c *fiber.Ctx) error {
	kind, err := helpers.ResolveKind(c.Params("kind"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, errs.ErrNotFound)
	}

	if err := ct.svc.Delete(c.Context(), kind, id); err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(&fiber.Map{"message": "Deleted"})
}

func (ct *Content) saveImages(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return []string{}, nil
	}

	return ct.intake.SaveAll(form.File["images"])
}
