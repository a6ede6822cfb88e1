package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Log       LogConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Scraper   ScraperConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
	Mode string // gin mode: debug, release or test
}

// DBConfig holds the listing store location.
type DBConfig struct {
	Path string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// AdminConfig holds the bcrypt hash of the admin key. An empty hash disables
// the admin endpoints.
type AdminConfig struct {
	KeyHash string
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// ScraperConfig holds settings for fetching listing pages.
type ScraperConfig struct {
	Timeout     time.Duration
	ChromeBin   string
	MinInterval time.Duration // minimum gap between fetches from one client
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables with the LISTINGS_ prefix.
// Callers load any .env file before calling Load.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LISTINGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("db.path", "data/listings.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("admin.key_hash", "")

	v.SetDefault("ratelimit.rps", 10)
	v.SetDefault("ratelimit.burst", 20)

	v.SetDefault("scraper.timeout", "20s")
	v.SetDefault("scraper.chrome_bin", "")
	v.SetDefault("scraper.min_interval", "1m")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:8080")

	envBindings := map[string]string{
		"server.port":          "LISTINGS_SERVER_PORT",
		"server.mode":          "LISTINGS_SERVER_MODE",
		"db.path":              "LISTINGS_DB_PATH",
		"log.level":            "LISTINGS_LOG_LEVEL",
		"log.format":           "LISTINGS_LOG_FORMAT",
		"admin.key_hash":       "LISTINGS_ADMIN_KEY_HASH",
		"ratelimit.rps":        "LISTINGS_RATELIMIT_RPS",
		"ratelimit.burst":      "LISTINGS_RATELIMIT_BURST",
		"scraper.timeout":      "LISTINGS_SCRAPER_TIMEOUT",
		"scraper.chrome_bin":   "LISTINGS_SCRAPER_CHROME_BIN",
		"scraper.min_interval": "LISTINGS_SCRAPER_MIN_INTERVAL",
		"cors.allowed_origins": "LISTINGS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT; honour it unless the prefixed variable is set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LISTINGS_SERVER_PORT") == "" {
		serverPort = port
	}
	cfg.Server = ServerConfig{
		Port: serverPort,
		Mode: v.GetString("server.mode"),
	}

	cfg.DB = DBConfig{Path: v.GetString("db.path")}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Admin = AdminConfig{KeyHash: v.GetString("admin.key_hash")}
	cfg.RateLimit = RateLimitConfig{
		RPS:   v.GetFloat64("ratelimit.rps"),
		Burst: v.GetInt("ratelimit.burst"),
	}

	// Fall back to the Chrome location the container images export.
	chromeBin := v.GetString("scraper.chrome_bin")
	if chromeBin == "" {
		chromeBin = os.Getenv("CHROME_BIN")
	}
	cfg.Scraper = ScraperConfig{
		Timeout:     v.GetDuration("scraper.timeout"),
		ChromeBin:   chromeBin,
		MinInterval: v.GetDuration("scraper.min_interval"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("ratelimit.rps and ratelimit.burst must be positive, got %v/%d", c.RateLimit.RPS, c.RateLimit.Burst)
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper.timeout must be positive, got %s", c.Scraper.Timeout)
	}
	return nil
}
