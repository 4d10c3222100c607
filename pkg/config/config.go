package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 所有環境變數只在這裡讀取
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Redis (optional, shared outbound rate limiting)
	Redis RedisConfig

	// External feeds
	TWSE  TWSEConfig
	Yahoo YahooConfig

	// ETF catalog
	Catalog CatalogConfig

	// Simulation defaults file (YAML, optional)
	SimDefaultsPath string

	// Logging
	LogLevel  string
	LogFormat string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// TWSEConfig holds Taiwan Stock Exchange endpoint configuration
type TWSEConfig struct {
	BaseURL     string
	ISINBaseURL string // listed-securities page used for the ETF catalog
	Timeout     time.Duration
	RateLimit   int // requests per second against twse.com.tw
}

// YahooConfig holds Yahoo Finance chart API configuration
type YahooConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit int
}

// CatalogConfig holds ETF catalog configuration
type CatalogConfig struct {
	SeedPath        string // optional CSV overriding the embedded seed
	RefreshEnabled  bool
	RefreshSchedule string // cron expression (with seconds)
}

// Load reads configuration from environment variables
// ⭐ SSOT: 只有這個函式呼叫 os.Getenv()
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		// External feeds
		TWSE: TWSEConfig{
			BaseURL:     getEnv("TWSE_BASE_URL", "https://www.twse.com.tw"),
			ISINBaseURL: getEnv("TWSE_ISIN_BASE_URL", "https://isin.twse.com.tw"),
			Timeout:     getEnvAsDuration("TWSE_TIMEOUT", "30s"),
			RateLimit:   getEnvAsInt("TWSE_RATE_LIMIT", 3),
		},

		Yahoo: YahooConfig{
			BaseURL:   getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout:   getEnvAsDuration("YAHOO_TIMEOUT", "30s"),
			RateLimit: getEnvAsInt("YAHOO_RATE_LIMIT", 5),
		},

		// ETF catalog
		Catalog: CatalogConfig{
			SeedPath:        getEnv("CATALOG_SEED_PATH", ""),
			RefreshEnabled:  getEnvAsBool("CATALOG_REFRESH_ENABLED", true),
			RefreshSchedule: getEnv("CATALOG_REFRESH_SCHEDULE", "0 0 7 * * *"), // 07:00 daily, before market open
		},

		SimDefaultsPath: getEnv("SIM_DEFAULTS_PATH", ""),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.TWSE.BaseURL == "" {
		return fmt.Errorf("TWSE_BASE_URL is required")
	}

	if c.Yahoo.BaseURL == "" {
		return fmt.Errorf("YAHOO_BASE_URL is required")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
			filepath.Join(exeDir, "..", "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
