package helpers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/artihcus-web/website-backend/app"
	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/models"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Fields holds the scalar values of a request body. Presence in the map is
// what separates "provided" from "omitted" on partial updates.
type Fields map[string]string

func (f Fields) Lookup(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// Missing reports every required key that is absent or empty.
func (f Fields) Missing(required ...string) []string {
	missing := []string{}

	for _, key := range required {
		if len(f[key]) < 1 {
			missing = append(missing, key)
		}
	}

	return missing
}

// FieldsFromCtx flattens a multipart form or JSON body into Fields. File
// parts are handled separately by the intake.
func FieldsFromCtx(c *fiber.Ctx) Fields {
	f := Fields{}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, values := range form.Value {
			if len(values) > 0 {
				f[key] = values[0]
			}
		}

		return f
	}

	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return f
	}

	for key, value := range body {
		switch v := value.(type) {
		case string:
			f[key] = v
		case float64:
			f[key] = fmt.Sprintf("%v", v)
		case bool:
			f[key] = fmt.Sprintf("%t", v)
		}
	}

	return f
}

// Kind is one of the closed set of content categories {blogs, news, events}.
// It is resolved exactly once at the HTTP boundary and carries its own
// required-field rules and typed storage operations, so nothing below the
// boundary dispatches on a type string again.
type Kind struct {
	slug     string
	required []string
	empty    func() any
	list     func(db *gorm.DB) (any, error)
	create   func(db *gorm.DB, f Fields, images []string) (any, error)
	update   func(db *gorm.DB, id uuid.UUID, f Fields, images []string) (any, error)
	remove   func(db *gorm.DB, id uuid.UUID) error
}

func (k Kind) Slug() string {
	return k.slug
}

func (k Kind) Validate(f Fields) error {
	if missing := f.Missing(k.required...); len(missing) > 0 {
		return &errs.ValidationError{Fields: missing}
	}

	return nil
}

var kinds = map[string]Kind{
	"blogs": articleKind[models.BlogPost]("blogs", func(r *models.BlogPost) *models.Article { return &r.Article }),
	"news":  articleKind[models.NewsItem]("news", func(r *models.NewsItem) *models.Article { return &r.Article }),
	"events": {
		slug:     "events",
		required: []string{"name", "description", "date"},
		empty:    func() any { return []models.Event{} },
		list:     listByDate[models.Event],
		create: func(db *gorm.DB, f Fields, images []string) (any, error) {
			item := models.Event{}
			if err := applyEvent(&item, f, images); err != nil {
				return nil, err
			}
			item.Images = pq.StringArray(images)

			if err := db.Create(&item).Error; err != nil {
				return nil, err
			}

			return &item, nil
		},
		update: func(db *gorm.DB, id uuid.UUID, f Fields, images []string) (any, error) {
			item, err := findByID[models.Event](db, id)
			if err != nil {
				return nil, err
			}

			if err := applyEvent(item, f, images); err != nil {
				return nil, err
			}

			if err := db.Save(item).Error; err != nil {
				return nil, err
			}

			return item, nil
		},
		remove: removeByID[models.Event],
	},
}

// ResolveKind maps a route parameter onto the closed kind set.
func ResolveKind(slug string) (Kind, error) {
	kind, ok := kinds[slug]
	if !ok {
		return Kind{}, errs.ErrInvalidKind
	}

	return kind, nil
}

func articleKind[T any](slug string, article func(*T) *models.Article) Kind {
	return Kind{
		slug:     slug,
		required: []string{"title", "category", "content", "date"},
		empty:    func() any { return []T{} },
		list:     listByDate[T],
		create: func(db *gorm.DB, f Fields, images []string) (any, error) {
			var item T

			a := article(&item)
			if err := applyArticle(a, f, images); err != nil {
				return nil, err
			}
			a.Images = pq.StringArray(images)

			if err := db.Create(&item).Error; err != nil {
				return nil, err
			}

			return &item, nil
		},
		update: func(db *gorm.DB, id uuid.UUID, f Fields, images []string) (any, error) {
			item, err := findByID[T](db, id)
			if err != nil {
				return nil, err
			}

			if err := applyArticle(article(item), f, images); err != nil {
				return nil, err
			}

			if err := db.Save(item).Error; err != nil {
				return nil, err
			}

			return item, nil
		},
		remove: removeByID[T],
	}
}

// applyArticle merges provided fields into the record: present keys
// overwrite, omitted keys keep their value, and a non-empty image set
// replaces the previous list entirely.
func applyArticle(a *models.Article, f Fields, images []string) error {
	if v, ok := f.Lookup("title"); ok {
		a.Title = v
	}

	if v, ok := f.Lookup("category"); ok {
		a.Category = v
	}

	if v, ok := f.Lookup("content"); ok {
		a.Content = v
	}

	if v, ok := f.Lookup("date"); ok {
		d, err := utils.ParseDate(v)
		if err != nil {
			return &errs.ValidationError{Fields: []string{"date"}}
		}

		a.Date = d
	}

	if len(images) > 0 {
		a.Images = pq.StringArray(images)
	}

	return nil
}

func applyEvent(e *models.Event, f Fields, images []string) error {
	if v, ok := f.Lookup("name"); ok {
		e.Name = v
	}

	if v, ok := f.Lookup("description"); ok {
		e.Description = v
	}

	if v, ok := f.Lookup("date"); ok {
		d, err := utils.ParseDate(v)
		if err != nil {
			return &errs.ValidationError{Fields: []string{"date"}}
		}

		e.Date = d
	}

	if len(images) > 0 {
		e.Images = pq.StringArray(images)
	}

	return nil
}

func listByDate[T any](db *gorm.DB) (any, error) {
	items := []T{}

	if err := db.Order("date DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func findByID[T any](db *gorm.DB, id uuid.UUID) (*T, error) {
	var item T

	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}

		return nil, err
	}

	return &item, nil
}

func removeByID[T any](db *gorm.DB, id uuid.UUID) error {
	res := db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected < 1 {
		return errs.ErrNotFound
	}

	return nil
}

// ContentService runs the kind-generic CRUD against the store.
type ContentService struct {
	store *app.Store
}

func NewContentService(store *app.Store) *ContentService {
	return &ContentService{store: store}
}

// List returns every record of the kind ordered by date descending. When the
// store is unreachable it returns an empty list instead of failing, so the
// site keeps rendering through a storage outage.
func (s *ContentService) List(ctx context.Context, kind Kind) (any, error) {
	if !s.store.Alive() {
		slog.Warn(fmt.Sprintf("Content list '%s': database not connected, returning empty list.", kind.slug))
		return kind.empty(), nil
	}

	return kind.list(s.store.DB().WithContext(ctx))
}

func (s *ContentService) Create(ctx context.Context, kind Kind, f Fields, images []string) (any, error) {
	if err := kind.Validate(f); err != nil {
		return nil, err
	}

	if !s.store.Alive() {
		return nil, errs.ErrStorageUnavailable
	}

	return kind.create(s.store.DB().WithContext(ctx), f, images)
}

func (s *ContentService) Update(ctx context.Context, kind Kind, id uuid.UUID, f Fields, images []string) (any, error) {
	if !s.store.Alive() {
		return nil, errs.ErrStorageUnavailable
	}

	return kind.update(s.store.DB().WithContext(ctx), id, f, images)
}

func (s *ContentService) Delete(ctx context.Context, kind Kind, id uuid.UUID) error {
	if !s.store.Alive() {
		return errs.ErrStorageUnavailable
	}

	return kind.remove(s.store.DB().WithContext(ctx), id)
}
