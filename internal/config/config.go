package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the configuration for the catalog service
type Config struct {
	Server   ServerConfig
	Snapshot SnapshotConfig
	Scrape   ScrapeConfig
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Port           string
	DefaultPerDay  int
	MaxSearchLimit int
	AllowedOrigin  string
}

// SnapshotConfig holds event-list cache configuration
type SnapshotConfig struct {
	OriginURL    string // JSON origin; takes precedence over FilePath
	FilePath     string // local JSON event list
	TTL          time.Duration
	RefreshCron  string // empty disables background refresh
	FetchTimeout time.Duration
	PresetsFile  string // optional YAML overriding topics/synonyms
}

// ScrapeConfig holds schedule scraper configuration
type ScrapeConfig struct {
	Pages             []string
	RequestTimeout    time.Duration
	UserAgent         string
	EnableRobotsCheck bool
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           GetStringEnv("SERVER_PORT", ":8080"),
			DefaultPerDay:  GetIntEnv("SERVER_DEFAULT_PER_DAY", 3),
			MaxSearchLimit: GetIntEnv("SERVER_MAX_SEARCH_LIMIT", 100),
			AllowedOrigin:  GetStringEnv("SERVER_ALLOWED_ORIGIN", "*"),
		},
		Snapshot: SnapshotConfig{
			OriginURL:    GetStringEnv("SNAPSHOT_ORIGIN_URL", ""),
			FilePath:     GetStringEnv("SNAPSHOT_FILE_PATH", "./data/events.json"),
			TTL:          GetDurationEnv("SNAPSHOT_TTL", 10*time.Minute),
			RefreshCron:  GetStringEnv("SNAPSHOT_REFRESH_CRON", ""),
			FetchTimeout: GetDurationEnv("SNAPSHOT_FETCH_TIMEOUT", 30*time.Second),
			PresetsFile:  GetStringEnv("SNAPSHOT_PRESETS_FILE", ""),
		},
		Scrape: ScrapeConfig{
			Pages:             GetListEnv("SCRAPE_PAGES", nil),
			RequestTimeout:    GetDurationEnv("SCRAPE_REQUEST_TIMEOUT", 30*time.Second),
			UserAgent:         GetStringEnv("SCRAPE_USER_AGENT", "SXSW-Agents-Catalog/1.0"),
			EnableRobotsCheck: GetBoolEnv("SCRAPE_ENABLE_ROBOTS_CHECK", true),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func GetListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
