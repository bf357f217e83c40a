package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	MinIO     MinIOConfig
	Sentry    SentryConfig

	// StrictIDMatch makes every resource reject updates whose payload id
	// differs from the path id, movies included.
	StrictIDMatch bool
	// SeedReset drops the catalog collections before cmd/seed inserts.
	SeedReset bool
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StoreTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Region    string
	URLTTL    time.Duration
}

type SentryConfig struct {
	DSN     string
	Release string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_TIMEOUT", "5s")
	viper.SetDefault("MONGODB_DATABASE", "jazflix")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("MINIO_BUCKET", "jazflix-videos")
	viper.SetDefault("MINIO_REGION", "us-east-1")
	viper.SetDefault("MEDIA_URL_TTL", "15m")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			LogLevel:     viper.GetString("LOG_LEVEL"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			StoreTimeout: viper.GetDuration("STORE_TIMEOUT"),
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       0,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			Region:    viper.GetString("MINIO_REGION"),
			URLTTL:    viper.GetDuration("MEDIA_URL_TTL"),
		},
		Sentry: SentryConfig{
			DSN:     viper.GetString("SENTRY_DSN"),
			Release: viper.GetString("SENTRY_RELEASE"),
		},
		StrictIDMatch: viper.GetBool("STRICT_ID_MATCH"),
		SeedReset:     viper.GetBool("SEED_RESET"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if p, err := strconv.Atoi(c.Server.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %q", c.Server.Port)
	}
	if c.Server.StoreTimeout < 0 {
		return fmt.Errorf("invalid STORE_TIMEOUT %s", c.Server.StoreTimeout)
	}
	if c.MongoDB.URI != "" && c.MongoDB.Timeout <= 0 {
		return fmt.Errorf("invalid MONGODB_TIMEOUT %s", c.MongoDB.Timeout)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RPS < 0 {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %v", c.RateLimit.RPS)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %d", c.RateLimit.Burst)
		}
		if c.RateLimit.UseRedis && c.RateLimit.WindowSeconds < 1 {
			return fmt.Errorf("invalid RATE_LIMIT_WINDOW_SECONDS %d", c.RateLimit.WindowSeconds)
		}
	}
	if c.MinIO.Endpoint != "" && c.MinIO.URLTTL <= 0 {
		return fmt.Errorf("invalid MEDIA_URL_TTL %s", c.MinIO.URLTTL)
	}
	return nil
}
