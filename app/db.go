package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/artihcus-web/website-backend/config"
	"github.com/artihcus-web/website-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the database handle. A failed connect leaves the handle nil and
// the process serving: list endpoints degrade to empty results and writes
// answer 503, so the public site keeps rendering through a storage outage.
type Store struct {
	db *gorm.DB
}

func NewStore(cfg config.DBConfig, debug bool) *Store {
	dsn := fmt.Sprintf(
		"postgres://%[4]s:%[5]s@%[1]s:%[2]d/%[3]s",
		cfg.Host,
		cfg.Port,
		cfg.Name,
		cfg.User,
		cfg.Pass,
	)

	logLevel := logger.Warn

	if debug {
		logLevel = logger.Info
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logLevel),
	})
	if err != nil {
		slog.Warn(fmt.Sprintf("Could not connect to PostgreSQL, serving degraded: %v", err))
		return &Store{}
	}

	if err := database.AutoMigrate(
		&models.BlogPost{},
		&models.NewsItem{},
		&models.Event{},
		&models.Job{},
		&models.SiteContent{},
	); err != nil {
		slog.Error(fmt.Sprintf("Could not migrate models: %v", err))
	}

	return &Store{db: database}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Alive reports whether the store can currently be reached.
func (s *Store) Alive() bool {
	if s == nil || s.db == nil {
		return false
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx) == nil
}
