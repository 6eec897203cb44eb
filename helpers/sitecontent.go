package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/artihcus-web/website-backend/app"
	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/models"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/redis/rueidis"
	"gorm.io/gorm"
)

const (
	siteContentCacheKey = "site_content:map"
	siteContentCacheTTL = 5 * time.Minute
)

// SiteContentUpsert carries the resolved values of a create-or-update by
// key. Defaults are applied by the service, and an uploaded file reference
// always wins over a literal value.
type SiteContentUpsert struct {
	Key      string
	Value    string
	Type     string
	Category string
	Label    string
}

// SiteContentUpdate merges into an existing entry; nil means omitted.
type SiteContentUpdate struct {
	Value    *string `json:"value"`
	Type     *string `json:"type"`
	Category *string `json:"category"`
	Label    *string `json:"label"`
}

// SiteContentService addresses entries by their normalized key, never by the
// generated id. The flattened key→value map is the hot read path of the
// public site, so it is cached when a cache client is configured.
type SiteContentService struct {
	store *app.Store
	cache rueidis.Client
}

func NewSiteContentService(store *app.Store, cache rueidis.Client) *SiteContentService {
	return &SiteContentService{store: store, cache: cache}
}

// Map returns every entry flattened to key→value. Degrades to an empty map
// when the store is unreachable.
func (s *SiteContentService) Map(ctx context.Context) (map[string]string, error) {
	flat := map[string]string{}

	if s.cache != nil {
		cached, err := s.cache.DoCache(ctx, s.cache.B().Get().Key(siteContentCacheKey).Cache(), siteContentCacheTTL).ToString()
		if err != nil && !errors.Is(err, rueidis.Nil) {
			slog.Warn(fmt.Sprintf("Could not read cached site content map: %v", err))
		}

		if len(cached) > 0 {
			if err := json.Unmarshal([]byte(cached), &flat); err == nil {
				return flat, nil
			}

			slog.Warn("Discarding undecodable cached site content map.")
		}
	}

	if !s.store.Alive() {
		slog.Warn("Site content map: database not connected, returning empty map.")
		return flat, nil
	}

	entries := []models.SiteContent{}
	if err := s.store.DB().WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}

	for _, entry := range entries {
		flat[entry.Key] = entry.Value
	}

	s.cacheMap(ctx, flat)

	return flat, nil
}

// List returns full entries ordered by category then key, for the admin
// listing. Degrades to an empty list when the store is unreachable.
func (s *SiteContentService) List(ctx context.Context) ([]models.SiteContent, error) {
	entries := []models.SiteContent{}

	if !s.store.Alive() {
		slog.Warn("Site content list: database not connected, returning empty list.")
		return entries, nil
	}

	if err := s.store.DB().WithContext(ctx).Order("category ASC, key ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

// Upsert creates the entry when its normalized key is new and otherwise
// overwrites value, type, category and label. The second return reports
// whether a new entry was created.
func (s *SiteContentService) Upsert(ctx context.Context, in SiteContentUpsert) (*models.SiteContent, bool, error) {
	key := utils.NormalizeKey(in.Key)
	if len(key) < 1 {
		return nil, false, &errs.ValidationError{Fields: []string{"key"}}
	}

	if !s.store.Alive() {
		return nil, false, errs.ErrStorageUnavailable
	}

	if len(in.Type) < 1 {
		in.Type = "image"
	}

	if len(in.Category) < 1 {
		in.Category = "general"
	}

	if len(in.Label) < 1 {
		in.Label = key
	}

	db := s.store.DB().WithContext(ctx)

	entry := models.SiteContent{}
	err := db.Where(&models.SiteContent{Key: key}).First(&entry).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.SiteContent{Key: key, Value: in.Value, Type: in.Type, Category: in.Category, Label: in.Label}
		if err := db.Create(&entry).Error; err != nil {
			return nil, false, err
		}

		s.invalidate(ctx)

		return &entry, true, nil
	case err != nil:
		return nil, false, err
	}

	entry.Value = in.Value
	entry.Type = in.Type
	entry.Category = in.Category
	entry.Label = in.Label

	if err := db.Save(&entry).Error; err != nil {
		return nil, false, err
	}

	s.invalidate(ctx)

	return &entry, false, nil
}

// UpdateByKey merges the provided fields into an existing entry.
func (s *SiteContentService) UpdateByKey(ctx context.Context, key string, in SiteContentUpdate) (*models.SiteContent, error) {
	if !s.store.Alive() {
		return nil, errs.ErrStorageUnavailable
	}

	db := s.store.DB().WithContext(ctx)

	entry := models.SiteContent{}
	if err := db.Where(&models.SiteContent{Key: utils.NormalizeKey(key)}).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}

		return nil, err
	}

	if in.Value != nil {
		entry.Value = *in.Value
	}

	if in.Type != nil {
		entry.Type = *in.Type
	}

	if in.Category != nil {
		entry.Category = *in.Category
	}

	if in.Label != nil {
		entry.Label = *in.Label
	}

	if err := db.Save(&entry).Error; err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	return &entry, nil
}

// DeleteByKey removes an entry; files it referenced stay on disk.
func (s *SiteContentService) DeleteByKey(ctx context.Context, key string) error {
	if !s.store.Alive() {
		return errs.ErrStorageUnavailable
	}

	res := s.store.DB().WithContext(ctx).Where(&models.SiteContent{Key: utils.NormalizeKey(key)}).Delete(&models.SiteContent{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected < 1 {
		return errs.ErrNotFound
	}

	s.invalidate(ctx)

	return nil
}

func (s *SiteContentService) cacheMap(ctx context.Context, flat map[string]string) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(flat)
	if err != nil {
		slog.Error(fmt.Sprintf("Could not serialize site content map for cache: %v", err))
		return
	}

	if err := s.cache.Do(ctx, s.cache.B().Set().Key(siteContentCacheKey).Value(string(raw)).Ex(siteContentCacheTTL).Build()).Error(); err != nil {
		slog.Warn(fmt.Sprintf("Could not cache site content map: %v", err))
	}
}

func (s *SiteContentService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Do(ctx, s.cache.B().Del().Key(siteContentCacheKey).Build()).Error(); err != nil {
		slog.Warn(fmt.Sprintf("Could not invalidate site content cache: %v", err))
	}
}
