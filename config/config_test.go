package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_DRIVER", "SQLITE_PATH", "DB_AUTO_MIGRATE", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_HOST", "DB_PORT", "DB_POOL_SIZE", "JWT_SECRET",
		"JWT_ACCESS_TOKEN_DURATION", "JWT_ISSUER", "PORT", "CORS_ALLOWED_ORIGINS",
		"LOG_LEVEL", "APP_ENV",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "app.db", cfg.Database.SQLitePath)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Nil(t, cfg.Database.Postgres)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, "fitfusion", cfg.Auth.Issuer)
	assert.Equal(t, "5555", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.IsProduction())
}

func TestLoadConfig_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "fit")
	t.Setenv("DB_PASSWORD", "fusion")
	t.Setenv("DB_NAME", "fitfusion")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_POOL_SIZE", "20")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Database.Postgres)

	assert.Equal(t, &PoolConfig{
		Host:     "db.internal",
		Port:     6543,
		User:     "fit",
		Password: "fusion",
		DBName:   "fitfusion",
		MaxSize:  20,
	}, cfg.Database.Postgres)
	assert.True(t, cfg.Log.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_CollectsAllErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "forever")
	t.Setenv("DB_AUTO_MIGRATE", "maybe")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)

	msg := err.Error()
	assert.Contains(t, msg, "JWT_SECRET")
	assert.Contains(t, msg, "DB_USER")
	assert.Contains(t, msg, "DB_PASSWORD")
	assert.Contains(t, msg, "DB_NAME")
	assert.Contains(t, msg, "DB_POOL_SIZE")
	assert.Contains(t, msg, "DB_PORT")
	assert.Contains(t, msg, "JWT_ACCESS_TOKEN_DURATION")
	assert.Contains(t, msg, "DB_AUTO_MIGRATE")
}

func TestLoadConfig_RejectsUnknownDriverAndLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestParseAndValidatePoolSize(t *testing.T) {
	var errs []string
	assert.Equal(t, 1, parseAndValidatePoolSize("0", "X", &errs))
	assert.Equal(t, 100, parseAndValidatePoolSize("500", "X", &errs))
	assert.Equal(t, 7, parseAndValidatePoolSize("7", "X", &errs))
	assert.Len(t, errs, 2)
}
