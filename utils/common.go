package utils

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// Accepted layouts for client-supplied dates, checked in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

func CleanString(s string) string {
	c := strings.TrimSpace(s)

	if len(c) < 1 {
		return c
	}

	re := regexp.MustCompile(`([\s])+`)
	c = re.ReplaceAllString(c, `$1`)

	return c
}

func ToStringPtr(s string) *string {
	s = strings.TrimSpace(s)

	if len(s) < 1 {
		return nil
	}

	return &s
}

// NormalizeKey turns a human-readable site-content key into its stored form:
// trimmed, with every internal whitespace run collapsed to one underscore.
func NormalizeKey(key string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(key)), "_")
}

// StoredFilename names an uploaded file on disk. The uuid prefix keeps
// concurrent uploads of identically-named files from colliding; whitespace
// is replaced so the reference survives URL handling, and any client-supplied
// path is reduced to its base name.
func StoredFilename(original string) string {
	name := filepath.Base(strings.TrimSpace(original))

	if len(name) < 1 || name == "." || name == "/" {
		name = "file"
	}

	name = strings.Join(strings.Fields(name), "-")

	return fmt.Sprintf("%s-%s", uuid.NewString(), name)
}

// ParseDate parses a client-supplied date, accepting RFC 3339 or a bare
// YYYY-MM-DD day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if len(s) < 1 {
		return time.Time{}, errors.New("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %s", s)
}

func GetDomainHostname(d string) (string, error) {
	d = strings.TrimSpace(d)

	if len(d) < 1 {
		return "", errors.New("Invalid domain.")
	}

	if !strings.HasPrefix(d, "http") {
		d = "https://" + d
	}

	u, err := url.Parse(d)
	if err != nil {
		sentry.CaptureException(err)
		return "", fmt.Errorf("Could not parse URL: %w", err)
	}

	if len(u.Scheme) < 1 || len(u.Host) < 1 || len(u.Hostname()) < 1 {
		return "", fmt.Errorf("Invalid URL: %s", d)
	}

	return u.Hostname(), nil
}

func GetApexDomain(d string) (string, error) {
	h, err := GetDomainHostname(d)
	if err != nil {
		sentry.CaptureException(err)
		return "", err
	}

	return publicsuffix.EffectiveTLDPlusOne(h)
}
