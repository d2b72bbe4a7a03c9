package config

import (
	"fmt"
	"os"
	"strings"

	"tmdbkit/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizeTMDB(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTMDB() error {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	if !strings.HasSuffix(c.TMDB.BaseURL, "/") {
		c.TMDB.BaseURL += "/"
	}

	lang, err := language.Normalize(c.TMDB.Language)
	if err != nil {
		return fmt.Errorf("tmdb.language: %w", err)
	}
	c.TMDB.Language = lang

	region, err := language.NormalizeRegion(c.TMDB.Region)
	if err != nil {
		return fmt.Errorf("tmdb.region: %w", err)
	}
	c.TMDB.Region = region

	if c.TMDB.TimeoutSeconds <= 0 {
		c.TMDB.TimeoutSeconds = defaultTMDBTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
