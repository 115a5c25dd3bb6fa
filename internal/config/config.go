package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Tracking TrackingConfig
	Log      LogConfig
	Admin    AdminSeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	MaxOpenConns int
	MaxIdleConns int
	ConnLifetime time.Duration
}

// JWTConfig holds admin token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// CookieConfig controls the admin token cookie
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// TrackingConfig sizes the background writer and the live session registry
type TrackingConfig struct {
	Workers      int
	QueueSize    int
	WriteTimeout time.Duration
	SessionTTL   time.Duration
	SweepSpec    string // cron spec for the idle session sweep
	RateLimit    int    // beacons per minute per IP
}

// LogConfig controls application logging
type LogConfig struct {
	Level string
	File  string
	JSON  bool
}

// AdminSeedConfig is the account created when admin_users is empty
type AdminSeedConfig struct {
	Username string
	Password string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// .env is optional in production
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	tracking, err := loadTrackingConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie: CookieConfig{
			Secure:   getBool("COOKIE_SECURE", appMode == "prod"),
			SameSite: getEnv("COOKIE_SAMESITE", "Lax"),
			Domain:   getEnv("COOKIE_DOMAIN", ""),
		},
		Tracking: tracking,
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", defaultLogLevel(appMode)),
			File:  getEnv("LOG_FILE", ""),
			JSON:  getBool("LOG_JSON", appMode == "prod"),
		},
		Admin: AdminSeedConfig{
			Username: getEnv("ADMIN_SEED_USERNAME", "admin"),
			Password: getEnv("ADMIN_SEED_PASSWORD", ""),
		},
	}

	if cfg.IsProd() && cfg.JWT.Secret == "default_secret" {
		return nil, fmt.Errorf("PROD_JWT_SECRET must be set in prod mode")
	}

	return cfg, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "finz"),

		MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 50),
		MaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 10),
		ConnLifetime: time.Duration(getInt("DB_CONN_LIFETIME_MINUTES", 60)) * time.Minute,
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	return JWTConfig{
		Secret:          getEnv(modePrefix(mode)+"JWT_SECRET", "default_secret"),
		AccessTokenMins: getInt("ACCESS_TOKEN_MINUTES", 8*60),
	}
}

func loadTrackingConfig() (TrackingConfig, error) {
	cfg := TrackingConfig{
		Workers:      getInt("TRACKING_WORKERS", 4),
		QueueSize:    getInt("TRACKING_QUEUE_SIZE", 1024),
		WriteTimeout: 5 * time.Second,
		SessionTTL:   time.Duration(getInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		SweepSpec:    getEnv("SESSION_SWEEP_SPEC", "@every 5m"),
		RateLimit:    getInt("TRACKING_RATE_LIMIT", 120),
	}

	if v := os.Getenv("TRACKING_WRITE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return TrackingConfig{}, fmt.Errorf("invalid TRACKING_WRITE_TIMEOUT: %w", err)
		}
		cfg.WriteTimeout = d
	}

	if cfg.Workers < 1 {
		return TrackingConfig{}, fmt.Errorf("TRACKING_WORKERS must be positive, got %d", cfg.Workers)
	}

	return cfg, nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

func defaultLogLevel(mode string) string {
	if mode == "prod" {
		return "info"
	}
	return "debug"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://finz.vn"
	}
	return origins
}
