package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/zotoio/halt.sh/internal/cachekey"
)

type Config struct {
	Port         string
	Frequency    cachekey.Frequency
	PageSize     int
	PageCount    int
	SingleRandom bool
	CacheEnabled bool
	CategoryTTL  time.Duration
	CacheDir     string

	SharedSecret    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	NewsAPIKey      string
	LLMProvider     string

	CDNPurgeURL   string
	CDNPurgeToken string
	PrewarmURL    string
	FrontendURL   string
}

// Load reads configuration from the environment. OPENAI_API_KEY,
// NEWS_API_KEY and SHARED_SECRET are required; everything else has a
// default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getenv("PORT", "3000"),
		Frequency:    cachekey.Frequency(getenv("FREQUENCY", "daily")),
		PageSize:     getenvInt("PAGE_SIZE", 1),
		PageCount:    getenvInt("PAGE_COUNT", 1),
		SingleRandom: getenvBool("SINGLE_RANDOM", true),
		CacheEnabled: getenvBool("CACHE", true),
		CategoryTTL:  time.Duration(getenvInt("CATEGORY_HOURS", 1)) * time.Hour,
		CacheDir:     getenv("CACHE_DIR", "/var/lib/cache"),

		SharedSecret:    os.Getenv("SHARED_SECRET"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		NewsAPIKey:      os.Getenv("NEWS_API_KEY"),
		LLMProvider:     getenv("LLM_PROVIDER", "openai"),

		CDNPurgeURL:   os.Getenv("CDN_PURGE_URL"),
		CDNPurgeToken: os.Getenv("CDN_PURGE_TOKEN"),
		PrewarmURL:    os.Getenv("PREWARM_URL"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
	}

	if cfg.OpenAIAPIKey == "" || cfg.NewsAPIKey == "" || cfg.SharedSecret == "" {
		return nil, fmt.Errorf("required environment variables are missing")
	}
	if cfg.Frequency != cachekey.Daily && cfg.Frequency != cachekey.Hourly {
		return nil, fmt.Errorf("invalid FREQUENCY %q", cfg.Frequency)
	}
	if cfg.LLMProvider == "anthropic" && cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("LLM_PROVIDER=anthropic requires ANTHROPIC_API_KEY")
	}
	return cfg, nil
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getenvInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(name string, fallback bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	return v == "true"
}
