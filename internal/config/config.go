package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries every runtime setting. Secrets are explicit fields
// handed to constructors; nothing reads the environment after Load.
type Config struct {
	Port          string
	UploadDir     string
	MaxUploadSize int64

	// Store selects the catalog backend: "sql" or "file".
	Store     string
	StorePath string

	// SQL backend settings (sqlite default, postgres optional).
	DBType     string
	DBPath     string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// Auth Gate settings.
	AdminUser string
	AdminPass string
	JWTSecret string
	TokenTTL  time.Duration

	// DefaultPublished controls whether reference inserts are
	// immediately public or wait for an explicit publish.
	DefaultPublished bool
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		Store:     getEnv("STORE", "sql"),
		StorePath: getEnv("STORE_PATH", "./videos.json"),
		DBType:    getEnv("DB_TYPE", "sqlite"),
		DBPath:    getEnv("DB_PATH", "./baluflix.db"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBUser:    getEnv("DB_USER", "baluflix"),
		DBName:    getEnv("DB_NAME", "baluflix"),

		AdminUser: os.Getenv("ADMIN_USER"),
		AdminPass: os.Getenv("ADMIN_PASS"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	cfg.DBPassword = os.Getenv("DB_PASSWORD")

	var err error

	cfg.MaxUploadSize, err = getEnvInt64("MAX_UPLOAD_SIZE", 5<<30)
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE: %w", err)
	}

	cfg.DBPort, err = getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("DB_PORT: %w", err)
	}

	cfg.TokenTTL, err = getEnvDuration("TOKEN_TTL", 12*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	cfg.DefaultPublished, err = getEnvBool("DEFAULT_PUBLISHED", false)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_PUBLISHED: %w", err)
	}

	if cfg.Store != "sql" && cfg.Store != "file" {
		return nil, fmt.Errorf("STORE: unsupported store %q, expected sql or file", cfg.Store)
	}

	if cfg.AdminUser == "" || cfg.AdminPass == "" || cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ADMIN_USER, ADMIN_PASS and JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", val)
	}
	return n, nil
}

func getEnvInt64(key string, defaultVal int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", val)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", val)
	}
	return d, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", val)
	}
	return b, nil
}
