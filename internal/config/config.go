package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidValue             = errors.New("invalid configuration value")
)

const (
	AIProviderOpenAI = "openai"
	AIProviderGemini = "gemini"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Services   ServicesConfig
	Gmail      GmailConfig
	Redis      RedisConfig
	Automation AutomationConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	OpenAIAPIKey       string
	GoogleAIAPIKey     string
	AIProvider         string
	AIModel            string
}

// GmailConfig holds the OAuth client used for connected mailboxes
type GmailConfig struct {
	ClientID     string
	ClientSecret string
}

// RedisConfig holds the connection used for scheduler run locks
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AutomationConfig holds engine timeouts and job schedules
type AutomationConfig struct {
	AITimeout          time.Duration
	MailTimeout        time.Duration
	ProcessedCacheSize int
	InboundBatchSize   int64
	Timezone           string
	DraftRetention     time.Duration
	LockTTL            time.Duration
	Schedules          ScheduleConfig
}

// ScheduleConfig holds cron specs for the scheduled jobs
type ScheduleConfig struct {
	DueTomorrow string
	Daily       string
	Weekly      string
	Monthly     string
	InboundSync string
	Cleanup     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	cfg.Services.AIProvider = strings.ToLower(getEnvWithDefault("AI_PROVIDER", AIProviderOpenAI))
	switch cfg.Services.AIProvider {
	case AIProviderOpenAI:
		if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
			return nil, err
		}
		cfg.Services.AIModel = getEnvWithDefault("AI_MODEL", "gpt-4o-mini")
	case AIProviderGemini:
		if cfg.Services.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
			return nil, err
		}
		cfg.Services.AIModel = getEnvWithDefault("AI_MODEL", "gemini-1.5-flash")
	default:
		return nil, fmt.Errorf("AI_PROVIDER %q: %w", cfg.Services.AIProvider, ErrInvalidValue)
	}

	// Gmail configuration
	if cfg.Gmail.ClientID, err = requireEnv("GOOGLE_CLIENT_ID"); err != nil {
		return nil, err
	}
	if cfg.Gmail.ClientSecret, err = requireEnv("GOOGLE_CLIENT_SECRET"); err != nil {
		return nil, err
	}

	// Redis configuration
	if cfg.Redis.Enabled, err = getBool("REDIS_ENABLED", false); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Automation configuration
	if cfg.Automation.AITimeout, err = getDuration("AI_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Automation.MailTimeout, err = getDuration("MAIL_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Automation.ProcessedCacheSize, err = getInt("PROCESSED_EMAIL_CACHE_SIZE", 5000); err != nil {
		return nil, err
	}
	inboundBatch, err := getInt("INBOUND_SYNC_BATCH_SIZE", 50)
	if err != nil {
		return nil, err
	}
	cfg.Automation.InboundBatchSize = int64(inboundBatch)
	if cfg.Automation.DraftRetention, err = getDuration("DRAFT_RETENTION", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Automation.LockTTL, err = getDuration("JOB_LOCK_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	cfg.Automation.Timezone = getEnvWithDefault("AUTOMATION_TIMEZONE", "UTC")
	if _, err := time.LoadLocation(cfg.Automation.Timezone); err != nil {
		return nil, fmt.Errorf("AUTOMATION_TIMEZONE %q: %w", cfg.Automation.Timezone, ErrInvalidValue)
	}
	cfg.Automation.Schedules = ScheduleConfig{
		DueTomorrow: getEnvWithDefault("SCHEDULE_DUE_TOMORROW", "0 8 * * *"),
		Daily:       getEnvWithDefault("SCHEDULE_DAILY", "0 9 * * *"),
		Weekly:      getEnvWithDefault("SCHEDULE_WEEKLY", "0 9 * * 1"),
		Monthly:     getEnvWithDefault("SCHEDULE_MONTHLY", "0 9 1 * *"),
		InboundSync: getEnvWithDefault("SCHEDULE_INBOUND_SYNC", "*/5 * * * *"),
		Cleanup:     getEnvWithDefault("SCHEDULE_CLEANUP", "0 * * * *"),
	}

	// Server configuration
	if cfg.Server.Port, err = getInt("SERVER_PORT", 8080); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the host:port pair for the Redis client
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AutomationConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
