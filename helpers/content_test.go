package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/artihcus-web/website-backend/app"
	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestResolveKind(t *testing.T) {
	for _, slug := range []string{"blogs", "news", "events"} {
		kind, err := ResolveKind(slug)
		require.NoError(t, err)
		require.Equal(t, slug, kind.Slug())
	}

	_, err := ResolveKind("podcasts")
	require.ErrorIs(t, err, errs.ErrInvalidKind)
}

func TestKindValidate_ReportsEveryMissingField(t *testing.T) {
	kind, err := ResolveKind("events")
	require.NoError(t, err)

	verr := kind.Validate(Fields{"name": "Launch"})

	var validation *errs.ValidationError
	require.ErrorAs(t, verr, &validation)
	require.Equal(t, []string{"description", "date"}, validation.Fields)
}

func TestKindValidate_EmptyCountsAsMissing(t *testing.T) {
	kind, err := ResolveKind("blogs")
	require.NoError(t, err)

	verr := kind.Validate(Fields{"title": "", "category": "tech", "content": "body", "date": "2024-01-01"})

	var validation *errs.ValidationError
	require.ErrorAs(t, verr, &validation)
	require.Equal(t, []string{"title"}, validation.Fields)
}

func TestApplyArticle_MergesProvidedFieldsOnly(t *testing.T) {
	existing := models.Article{
		Title:    "Old title",
		Category: "tech",
		Content:  "old body",
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Images:   pq.StringArray{"/uploads/a.png"},
	}

	err := applyArticle(&existing, Fields{"title": "New title"}, nil)
	require.NoError(t, err)

	require.Equal(t, "New title", existing.Title)
	require.Equal(t, "tech", existing.Category)
	require.Equal(t, "old body", existing.Content)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), existing.Date)
	require.Equal(t, pq.StringArray{"/uploads/a.png"}, existing.Images)
}

func TestApplyArticle_ProvidedEmptyOverwrites(t *testing.T) {
	existing := models.Article{Category: "tech"}

	err := applyArticle(&existing, Fields{"category": ""}, nil)
	require.NoError(t, err)
	require.Equal(t, "", existing.Category)
}

func TestApplyArticle_NewImagesReplaceWholeList(t *testing.T) {
	existing := models.Article{Images: pq.StringArray{"/uploads/a.png", "/uploads/b.png"}}

	err := applyArticle(&existing, Fields{}, []string{"/uploads/c.png"})
	require.NoError(t, err)
	require.Equal(t, pq.StringArray{"/uploads/c.png"}, existing.Images)
}

func TestApplyArticle_InvalidDate(t *testing.T) {
	existing := models.Article{}

	err := applyArticle(&existing, Fields{"date": "not-a-date"}, nil)

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, []string{"date"}, validation.Fields)
}

func TestApplyEvent_MergesProvidedFieldsOnly(t *testing.T) {
	existing := models.Event{
		Name:        "Launch",
		Description: "Product launch",
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	err := applyEvent(&existing, Fields{"name": "Launch Day"}, nil)
	require.NoError(t, err)

	require.Equal(t, "Launch Day", existing.Name)
	require.Equal(t, "Product launch", existing.Description)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), existing.Date)
}

func TestFieldsMissing(t *testing.T) {
	f := Fields{"title": "x", "category": ""}

	require.Empty(t, f.Missing("title"))
	require.Equal(t, []string{"category", "content"}, f.Missing("title", "category", "content"))
}

func TestContentService_DegradedReadReturnsEmptyList(t *testing.T) {
	svc := NewContentService(&app.Store{})

	kind, err := ResolveKind("news")
	require.NoError(t, err)

	items, err := svc.List(context.Background(), kind)
	require.NoError(t, err)
	require.Equal(t, []models.NewsItem{}, items)
}

func TestContentService_CreateFailsFastWhenStoreDown(t *testing.T) {
	svc := NewContentService(&app.Store{})

	kind, err := ResolveKind("events")
	require.NoError(t, err)

	fields := Fields{"name": "Launch", "description": "Product launch", "date": "2024-01-01"}

	_, err = svc.Create(context.Background(), kind, fields, []string{})
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestContentService_CreateValidatesBeforeStoreCheck(t *testing.T) {
	svc := NewContentService(&app.Store{})

	kind, err := ResolveKind("events")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), kind, Fields{"name": "Launch"}, []string{})

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
}
