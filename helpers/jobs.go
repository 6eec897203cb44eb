package helpers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/artihcus-web/website-backend/app"
	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/models"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobInput is the JSON body of job creates and updates. Pointer fields keep
// "omitted" distinguishable from "set to empty" on partial updates.
type JobInput struct {
	Title          *string `json:"title"`
	EmploymentType *string `json:"employmentType"`
	SalaryRange    *string `json:"salaryRange"`
	Location       *string `json:"location"`
	Description    *string `json:"description"`
	Date           *string `json:"date"`
}

type JobService struct {
	store *app.Store
}

func NewJobService(store *app.Store) *JobService {
	return &JobService{store: store}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}

	if !s.store.Alive() {
		slog.Warn("Job list: database not connected, returning empty list.")
		return jobs, nil
	}

	if err := s.store.DB().WithContext(ctx).Order("date DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}

func (s *JobService) Create(ctx context.Context, in JobInput) (*models.Job, error) {
	if in.Title == nil || len(*in.Title) < 1 {
		return nil, &errs.ValidationError{Fields: []string{"title"}}
	}

	if !s.store.Alive() {
		return nil, errs.ErrStorageUnavailable
	}

	job := models.Job{
		Title:          *in.Title,
		EmploymentType: "Full Time",
		Date:           time.Now(),
	}

	if in.EmploymentType != nil && len(*in.EmploymentType) > 0 {
		job.EmploymentType = *in.EmploymentType
	}

	if in.SalaryRange != nil {
		job.SalaryRange = *in.SalaryRange
	}

	if in.Location != nil {
		job.Location = *in.Location
	}

	if in.Description != nil {
		job.Description = *in.Description
	}

	if in.Date != nil {
		d, err := utils.ParseDate(*in.Date)
		if err != nil {
			return nil, &errs.ValidationError{Fields: []string{"date"}}
		}

		job.Date = d
	}

	if err := s.store.DB().WithContext(ctx).Create(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

func (s *JobService) Update(ctx context.Context, id uuid.UUID, in JobInput) (*models.Job, error) {
	if !s.store.Alive() {
		return nil, errs.ErrStorageUnavailable
	}

	db := s.store.DB().WithContext(ctx)

	job := models.Job{}
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}

		return nil, err
	}

	if in.Title != nil {
		job.Title = *in.Title
	}

	if in.EmploymentType != nil {
		job.EmploymentType = *in.EmploymentType
	}

	if in.SalaryRange != nil {
		job.SalaryRange = *in.SalaryRange
	}

	if in.Location != nil {
		job.Location = *in.Location
	}

	if in.Description != nil {
		job.Description = *in.Description
	}

	if in.Date != nil {
		d, err := utils.ParseDate(*in.Date)
		if err != nil {
			return nil, &errs.ValidationError{Fields: []string{"date"}}
		}

		job.Date = d
	}

	if err := db.Save(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.store.Alive() {
		return errs.ErrStorageUnavailable
	}

	res := s.store.DB().WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected < 1 {
		return errs.ErrNotFound
	}

	return nil
}
