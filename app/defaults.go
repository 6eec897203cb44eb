package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/artihcus-web/website-backend/models"
	"github.com/artihcus-web/website-backend/utils"
	"gopkg.in/yaml.v3"
)

type siteContentDefault struct {
	Key      string `yaml:"key"`
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
	Label    string `yaml:"label"`
}

type siteContentDefaults struct {
	Entries []siteContentDefault `yaml:"entries"`
}

// SeedSiteContent creates any missing site-content key from the defaults
// manifest so a fresh deployment exposes every named asset slot the
// front-end expects. Existing entries are never touched.
func SeedSiteContent(store *Store, path string) {
	if !store.Alive() {
		slog.Warn("Skipping site content defaults: database not connected.")
		return
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		slog.Warn(fmt.Sprintf("Could not read site content defaults at %s: %v", path, err))
		return
	}

	defaults := siteContentDefaults{}
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		slog.Error(fmt.Sprintf("Could not decode site content defaults: %v", err))
		return
	}

	for _, d := range defaults.Entries {
		key := utils.NormalizeKey(d.Key)
		if len(key) < 1 {
			continue
		}

		label := d.Label
		if len(label) < 1 {
			label = key
		}

		entry := &models.SiteContent{
			Key:      key,
			Type:     d.Type,
			Category: d.Category,
			Label:    label,
		}

		if err := store.DB().Where(&models.SiteContent{Key: key}).FirstOrCreate(entry).Error; err != nil {
			slog.Error(fmt.Sprintf("Could not create default site content '%s': %v", key, err))
			continue
		}
	}
}
