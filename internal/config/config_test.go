package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "PORT", "DATABASE_DRIVER", "DATABASE_URL", "MARITACA_API_KEY", "AI_BASE_URL", "AI_MODEL", "REDIS_HOST", "APP_TIMEZONE"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, DefaultAIBaseURL, cfg.AI.BaseURL)
	assert.Equal(t, DefaultAIModel, cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 50, cfg.App.DefaultPageSize)
	assert.Equal(t, 100, cfg.App.MaxPageSize)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadYAMLAndEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	t.Setenv("MARITACA_API_KEY", "key-from-env")
	t.Setenv("PORT", "9090")

	path := writeConfig(t, `
environment: production
server:
  port: 8080
database:
  driver: mysql
  host: db
  user: app
  password: ${TEST_DB_PASSWORD}
  name: reviews
ai:
  model: sabia-3.1
  timeout: 5s
  temperature: 0.2
cors:
  allow_origins: "https://a.example, https://b.example"
app:
  timezone: America/Sao_Paulo
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "app:s3cret@tcp(db:3306)/reviews?charset=utf8mb4&parseTime=True&loc=Local", cfg.Database.GetDSN())
	assert.Equal(t, "key-from-env", cfg.AI.APIKey)
	assert.Equal(t, "sabia-3.1", cfg.AI.Model)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins())

	loc, err := cfg.Location()
	if err == nil {
		assert.Equal(t, "America/Sao_Paulo", loc.String())
	}
}

func TestDatabaseURLOverridesDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:reviews.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:reviews.db", cfg.Database.GetDSN())
}

func TestSQLiteDefaultDSN(t *testing.T) {
	d := DatabaseConfig{Driver: DriverSQLite}
	assert.Equal(t, "reviews.db", d.GetDSN())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "database:\n  driver: oracle\n"},
		{"bad temperature", "ai:\n  temperature: 3\n"},
		{"bad timezone", "app:\n  timezone: Mars/Olympus\n"},
		{"page size over max", "app:\n  default_page_size: 200\n  max_page_size: 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}
