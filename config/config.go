// Package config loads every environment-driven setting once at process
// start. Services never read the environment themselves; main constructs the
// infrastructure from this struct and hands it down.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/artihcus-web/website-backend/utils"
)

type Config struct {
	AppName string
	Address string
	Debug   bool

	// Comma-separated origins allowed by CORS.
	AllowedOrigins string

	// Flat directory holding every uploaded file, served under /uploads.
	UploadsDir string

	DB    DBConfig
	Redis RedisConfig
	Email EmailConfig
}

type DBConfig struct {
	Host string
	Port int
	Name string
	User string
	Pass string
}

type RedisConfig struct {
	Host string
	Port int
	Pass string
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool

	// From is the authenticated sender, To the fixed internal recipient of
	// the career and contact relays.
	From string
	To   string
}

func Load() *Config {
	cfg := &Config{
		AppName:        getEnv("APP_NAME", "Artihcus Website Backend"),
		Address:        getEnv("APP_ADDRESS", ":5000"),
		Debug:          utils.IsDebug(),
		AllowedOrigins: getEnv("APP_ALLOWED_ORIGINS", "https://www.artihcus.com,https://artihcus.com"),
		UploadsDir:     getEnv("UPLOADS_DIR", "uploads"),
		DB: DBConfig{
			Host: getEnv("DB_HOST", "localhost"),
			Port: getEnvInt("DB_PORT", 5432),
			Name: getEnv("DB_NAME", "artihcus_web"),
			User: os.Getenv("DB_USER"),
			Pass: os.Getenv("DB_PASS"),
		},
		Redis: RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: getEnvInt("REDIS_PORT", 6379),
			Pass: os.Getenv("REDIS_PASS"),
		},
		Email: EmailConfig{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     getEnvInt("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_USERNAME"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			UseTLS:   getEnvBool("EMAIL_TLS", true),
			From:     os.Getenv("EMAIL_FROM"),
			To:       getEnv("EMAIL_TO", "info@artihcus.com"),
		},
	}

	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		if _, err := utils.GetApexDomain(origin); err != nil && !cfg.Debug {
			slog.Warn(fmt.Sprintf("Could not validate allowed origin '%s': %v", origin, err))
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if len(v) < 1 {
		return fallback
	}

	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}
