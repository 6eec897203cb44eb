package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/artihcus-web/website-backend/config"
	"github.com/redis/rueidis"
)

// NewCache returns nil when no Redis host is configured; the site-content
// service treats a nil client as no caching.
func NewCache(cfg config.RedisConfig) rueidis.Client {
	if len(cfg.Host) < 1 {
		return nil
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Password:    cfg.Pass,
		SelectDB:    0,
	})
	if err != nil && !errors.Is(err, rueidis.Nil) {
		slog.Warn(fmt.Sprintf("Could not connect to Redis, caching disabled: %v", err))
		return nil
	}

	return client
}
