package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "studyflow.db", cfg.Database.Filename)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model.Name)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, "database.driver"},
		{"mongo without uri", func(c *Config) { c.Database.Driver = DriverMongo }, "database.mongo_uri"},
		{"empty filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"empty model name", func(c *Config) { c.Model.Name = "" }, "model.name"},
		{"unknown time zone", func(c *Config) { c.Interpreter.Timezone = "Mars/Olympus" }, "interpreter.timezone"},
		{"title limit zero", func(c *Config) { c.Validation.TitleMaxLength = 0 }, "validation.title_max_length"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestConfig_MemoryDatabaseNeedsNoDir(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = ""
	cfg.Database.Filename = ":memory:"

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ":memory:", cfg.GetDatabasePath())
}

func TestConfig_Location(t *testing.T) {
	cfg := NewConfig()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Interpreter.Timezone = "Asia/Kolkata"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestConfig_Redacted(t *testing.T) {
	cfg := NewConfig()
	cfg.Model.APIKey = "secret-key"
	cfg.Auth.DevToken = "dev-token-123"

	redacted := cfg.Redacted()
	assert.Equal(t, "********", redacted.Model.APIKey)
	assert.Equal(t, "********", redacted.Auth.DevToken)
	assert.Equal(t, "secret-key", cfg.Model.APIKey, "original must be untouched")
}

func TestLoader_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Model.Timeout)
}

func TestLoader_Environment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDYFLOW_SERVER_PORT", "8081")
	t.Setenv("STUDYFLOW_MODEL_TIMEOUT", "45s")
	t.Setenv("STUDYFLOW_LOG_FORMAT", "console")
	t.Setenv("GEMINI_API_KEY", "from-legacy-name")
	t.Setenv("NODE_ENV", "production")

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Model.Timeout)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "from-legacy-name", cfg.Model.APIKey)
	assert.True(t, cfg.IsProduction())
}

func TestLoader_PrefixedNameWinsOverLegacy(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PORT", "7000")
	t.Setenv("STUDYFLOW_SERVER_PORT", "7001")

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestLoader_ConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "studyflow.toml")
	content := `
[server]
port = 9000

[interpreter]
timezone = "Asia/Kolkata"

[database]
driver = "sqlite"
filename = ":memory:"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loader := NewLoader(path)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.Interpreter.Timezone)
	assert.Equal(t, ":memory:", cfg.GetDatabasePath())
	assert.Equal(t, path, loader.ConfigFileUsed())
}

func TestLoader_InvalidEnvironmentRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDYFLOW_DATABASE_DRIVER", "postgres")

	_, err := NewLoader("").Load()
	assert.Error(t, err)
}

func TestLoader_Overrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	port := 6000
	level := "debug"
	tz := "UTC"

	cfg, err := NewLoader("").LoadWithOverrides(&ConfigOverrides{Port: &port, LogLevel: &level, Timezone: &tz})
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "UTC", cfg.Interpreter.Timezone)

	bad := 0
	_, err = NewLoader("").LoadWithOverrides(&ConfigOverrides{Port: &bad})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	cfg := NewConfig()
	cfg.Model.APIKey = "secret-key"

	for _, format := range []string{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			out, err := Render(cfg, format)
			require.NoError(t, err)
			text := string(out)
			assert.Contains(t, text, "gemini-1.5-flash")
			assert.NotContains(t, text, "secret-key")
			assert.True(t, strings.Contains(text, "5000"))
		})
	}

	_, err := Render(cfg, "ini")
	assert.Error(t, err)
}
