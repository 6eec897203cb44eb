package controllers

import (
	"fmt"
	"log/slog"

	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/helpers"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Jobs struct {
	svc *helpers.JobService
}

func NewJobs(svc *helpers.JobService) *Jobs {
	return &Jobs{svc: svc}
}

func (j *Jobs) List(c *fiber.Ctx) error {
	jobs, err := j.svc.List(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(jobs)
}

func (j *Jobs) Create(c *fiber.Ctx) error {
	in := helpers.JobInput{}
	if err := c.BodyParser(&in); err != nil {
		slog.Error(fmt.Sprintf("Error parsing job input: %v", err))
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{"error": []string{"Invalid request body."}})
	}

	job, err := j.svc.Create(c.Context(), in)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

func (j *Jobs) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, errs.ErrNotFound)
	}

	in := helpers.JobInput{}
	if err := c.BodyParser(&in); err != nil {
		slog.Error(fmt.Sprintf("Error parsing job input: %v", err))
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{"error": []string{"Invalid request body."}})
	}

	job, err := j.svc.Update(c.Context(), id, in)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(job)
}

func (j *Jobs) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, errs.ErrNotFound)
	}

	if err := j.svc.Delete(c.Context(), id); err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(&fiber.Map{"message": "Deleted"})
}
