// Package config loads FitFusion's runtime configuration from environment
// variables. Every problem found while loading is collected, so a single
// startup failure reports all missing or malformed settings at once.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported storage engines.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// PoolConfig represents configuration for a PostgreSQL connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// DatabaseConfig selects the storage engine and carries its settings.
// Postgres is only populated when Driver is DriverPostgres.
type DatabaseConfig struct {
	Driver      string
	SQLitePath  string
	Postgres    *PoolConfig
	AutoMigrate bool
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret           string        // HMAC key for signing access tokens
	AccessTokenDuration time.Duration // validity window of an access token
	Issuer              string
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level string
	Env   string
}

// IsProduction reports whether logs should be machine-readable JSON.
func (c *LogConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Database *DatabaseConfig
	Auth     *AuthConfig
	Server   *ServerConfig
	Log      *LogConfig
}

func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration accepts anything time.ParseDuration does, e.g. "720h".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	if valueDuration <= 0 {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: duration must be positive, got '%s'", key, valueStr))
		return defaultValue
	}
	return valueDuration
}

func getOptionalEnvBool(key string, defaultValue bool, errors *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected boolean, got '%s'", key, valueStr))
		return defaultValue
	}
	return valueBool
}

// parseAndValidatePoolSize converts the pool size and clamps it to [1, 100].
func parseAndValidatePoolSize(valueStr string, varName string, errors *[]string) int {
	size, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid pool size for %s: expected integer, got '%s': %v", varName, valueStr, err))
		return 1
	}
	if size < 1 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is less than minimum 1", varName, size))
		return 1
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100", varName, size))
		return 100
	}
	return size
}

func loadPostgres(errors *[]string) *PoolConfig {
	cfg := &PoolConfig{
		User:     getRequiredEnv("DB_USER", errors),
		Password: getRequiredEnv("DB_PASSWORD", errors),
		DBName:   getRequiredEnv("DB_NAME", errors),
		Host:     getOptionalEnv("DB_HOST", "localhost"),
		Port:     getOptionalEnvInt("DB_PORT", 5432, errors),
		MaxSize:  10,
	}
	if poolSize := getRequiredEnv("DB_POOL_SIZE", errors); poolSize != "" {
		cfg.MaxSize = parseAndValidatePoolSize(poolSize, "DB_POOL_SIZE", errors)
	}
	return cfg
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadConfig reads and validates the environment. It returns one error
// listing every problem, or a fully populated AppConfig.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	dbConfig := &DatabaseConfig{
		Driver:      strings.ToLower(getOptionalEnv("DB_DRIVER", DriverSQLite)),
		SQLitePath:  getOptionalEnv("SQLITE_PATH", "app.db"),
		AutoMigrate: getOptionalEnvBool("DB_AUTO_MIGRATE", true, &errors),
	}
	switch dbConfig.Driver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		dbConfig.Postgres = loadPostgres(&errors)
	default:
		errors = append(errors, fmt.Sprintf("invalid value for DB_DRIVER: expected one of sqlite, postgres, memory, got '%s'", dbConfig.Driver))
	}

	authConfig := &AuthConfig{
		JWTSecret:           getRequiredEnv("JWT_SECRET", &errors),
		AccessTokenDuration: getOptionalEnvDuration("JWT_ACCESS_TOKEN_DURATION", 30*24*time.Hour, &errors),
		Issuer:              getOptionalEnv("JWT_ISSUER", "fitfusion"),
	}

	serverConfig := &ServerConfig{
		Port:           getOptionalEnv("PORT", "5555"),
		AllowedOrigins: splitList(getOptionalEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	logConfig := &LogConfig{
		Level: strings.ToLower(getOptionalEnv("LOG_LEVEL", "info")),
		Env:   getOptionalEnv("APP_ENV", "development"),
	}
	switch logConfig.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		errors = append(errors, fmt.Sprintf("invalid value for LOG_LEVEL: '%s'", logConfig.Level))
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Database: dbConfig,
		Auth:     authConfig,
		Server:   serverConfig,
		Log:      logConfig,
	}, nil
}
