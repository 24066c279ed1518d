package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	NewsAPIKey     string
	GeminiAPIKey   string
	GeminiModel    string
	SendGridAPIKey string
	RecipientEmail string
	FromEmail      string
	FromName       string
	Topic          string
	ArticleLimit   int
	RequestTimeout time.Duration
}

const (
	defaultTopic        = "Liverpool FC"
	defaultArticleLimit = 5
	defaultTimeout      = 30 * time.Second
	defaultGeminiModel  = "gemini-2.5-flash"
	defaultFromEmail    = "briefing@thekopai.com"
	defaultFromName     = "The Kop AI"
)

// Load builds a Config from environment variables, reading a .env file
// first when one is present. NEWS_API_KEY and GEMINI_API_KEY are
// required; email settings are optional and merely disable delivery
// when absent.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenvDefault("GEMINI_MODEL", defaultGeminiModel),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		RecipientEmail: os.Getenv("BRIEFING_RECIPIENT"),
		FromEmail:      getenvDefault("BRIEFING_FROM_EMAIL", defaultFromEmail),
		FromName:       getenvDefault("BRIEFING_FROM_NAME", defaultFromName),
		Topic:          getenvDefault("BRIEFING_TOPIC", defaultTopic),
		ArticleLimit:   parseIntDefault("ARTICLE_LIMIT", defaultArticleLimit),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
	}

	if cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("NEWS_API_KEY is required")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if cfg.ArticleLimit <= 0 {
		cfg.ArticleLimit = defaultArticleLimit
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

// EmailEnabled reports whether enough configuration is present to
// attempt an email send.
func (c *Config) EmailEnabled() bool {
	return c.SendGridAPIKey != "" && c.RecipientEmail != ""
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
