package helpers

import (
	"context"
	"testing"

	"github.com/artihcus-web/website-backend/app"
	"github.com/artihcus-web/website-backend/errs"
	"github.com/stretchr/testify/require"
)

func TestSiteContentMap_DegradesToEmptyMap(t *testing.T) {
	svc := NewSiteContentService(&app.Store{}, nil)

	flat, err := svc.Map(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]string{}, flat)
}

func TestSiteContentList_DegradesToEmptyList(t *testing.T) {
	svc := NewSiteContentService(&app.Store{}, nil)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSiteContentUpsert_RequiresKey(t *testing.T) {
	svc := NewSiteContentService(&app.Store{}, nil)

	_, _, err := svc.Upsert(context.Background(), SiteContentUpsert{Key: "   "})

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, []string{"key"}, validation.Fields)
}

func TestSiteContentUpsert_FailsFastWhenStoreDown(t *testing.T) {
	svc := NewSiteContentService(&app.Store{}, nil)

	_, _, err := svc.Upsert(context.Background(), SiteContentUpsert{Key: "Header Logo", Value: "x"})
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestSiteContentUpdateByKey_FailsFastWhenStoreDown(t *testing.T) {
	svc := NewSiteContentService(&app.Store{}, nil)

	_, err := svc.UpdateByKey(context.Background(), "header_logo", SiteContentUpdate{})
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)

	err = svc.DeleteByKey(context.Background(), "header_logo")
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}
