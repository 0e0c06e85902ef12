package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string `validate:"oneof=development production"`
	Port      int    `validate:"min=1,max=65535"`
	APIPrefix string

	Upstream  UpstreamConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	ActionLog ActionLogConfig
	RateLimit RateLimitConfig
	Export    ExportConfig
}

// UpstreamConfig points the aggregation layer at the SAS analytics backend.
type UpstreamConfig struct {
	BaseURL string        `validate:"required,url"`
	Token   string        `validate:"required"`
	Timeout time.Duration `validate:"gte=0"`
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string `validate:"omitempty,oneof=json console"`
	// File enables a rotating file sink in addition to stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ActionLogConfig toggles the Postgres-backed audit trail of ETL trigger calls.
type ActionLogConfig struct {
	Enabled     bool
	AutoMigrate bool
	// Workers > 0 writes records from a background pool instead of the request goroutine.
	Workers int `validate:"gte=0"`
}

// RateLimitConfig throttles ETL trigger endpoints per client and action.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           `validate:"gte=0"`
	Window  time.Duration `validate:"gte=0"`
}

// ExportConfig tunes summary exports.
type ExportConfig struct {
	Locale  string `validate:"omitempty,oneof=id-ID en-US"`
	MaxRows int    `validate:"gte=0"`
}

// ErrMissingToken is returned when no upstream credential was configured.
var ErrMissingToken = errors.New("SAS_AUTH_TOKEN must be set")

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("SAS_BASE_URL")), "/"),
		Token:   strings.TrimSpace(v.GetString("SAS_AUTH_TOKEN")),
		Timeout: parseDuration(v.GetString("SAS_TIMEOUT"), 30*time.Second),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:      v.GetString("LOG_LEVEL"),
		Format:     v.GetString("LOG_FORMAT"),
		File:       v.GetString("LOG_FILE"),
		MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
		MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
		MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
	}

	cfg.ActionLog = ActionLogConfig{
		Enabled:     v.GetBool("ENABLE_ACTION_LOG"),
		AutoMigrate: v.GetBool("ACTION_LOG_AUTO_MIGRATE"),
		Workers:     v.GetInt("ACTION_LOG_WORKERS"),
	}

	cfg.RateLimit = RateLimitConfig{
		Enabled: v.GetBool("ENABLE_RATE_LIMIT"),
		Limit:   v.GetInt("ETL_TRIGGER_LIMIT"),
		Window:  parseDuration(v.GetString("ETL_TRIGGER_WINDOW"), time.Minute),
	}

	cfg.Export = ExportConfig{
		Locale:  v.GetString("EXPORT_LOCALE"),
		MaxRows: v.GetInt("EXPORT_MAX_ROWS"),
	}

	return cfg
}

// Validate enforces required settings. The upstream credential has no default.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Upstream.Token == "" {
		return ErrMissingToken
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("SAS_BASE_URL", "http://localhost:3001")
	v.SetDefault("SAS_AUTH_TOKEN", "")
	v.SetDefault("SAS_TIMEOUT", "30s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "monev")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)

	v.SetDefault("ENABLE_ACTION_LOG", false)
	v.SetDefault("ACTION_LOG_AUTO_MIGRATE", true)
	v.SetDefault("ACTION_LOG_WORKERS", 2)

	v.SetDefault("ENABLE_RATE_LIMIT", false)
	v.SetDefault("ETL_TRIGGER_LIMIT", 5)
	v.SetDefault("ETL_TRIGGER_WINDOW", "1m")

	v.SetDefault("EXPORT_LOCALE", "id-ID")
	v.SetDefault("EXPORT_MAX_ROWS", 5000)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
