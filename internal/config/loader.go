package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "studyflow"
	envPrefix  = "STUDYFLOW"
)

// legacyEnv maps keys onto the unprefixed environment variable names
// existing .env files use.
var legacyEnv = map[string]string{
	"server.port":           "PORT",
	"server.frontend_url":   "FRONTEND_URL",
	"database.mongo_uri":    "MONGODB_URI",
	"auth.google_client_id": "GOOGLE_CLIENT_ID",
	"model.api_key":         "GEMINI_API_KEY",
	"application.env":       "NODE_ENV",
}

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader. An empty configFile searches
// the working directory and $HOME/.studyflow for studyflow.{toml,yaml,json}.
func NewLoader(configFile string) *Loader {
	return &Loader{
		v:          viper.New(),
		configFile: configFile,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if any
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	defaults := NewConfig()
	l.setDefaults(defaults)

	l.v.SetEnvPrefix(envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := l.v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(configName)
		l.v.AddConfigPath(".")
		l.v.AddConfigPath("$HOME/.studyflow")
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigFileUsed reports the file the configuration was read from, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) setDefaults(c *Config) {
	v := l.v
	v.SetDefault("server.host", c.Server.Host)
	v.SetDefault("server.port", c.Server.Port)
	v.SetDefault("server.frontend_url", c.Server.FrontendURL)
	v.SetDefault("server.read_timeout", c.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", c.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)

	v.SetDefault("database.driver", c.Database.Driver)
	v.SetDefault("database.dir", c.Database.Dir)
	v.SetDefault("database.filename", c.Database.Filename)
	v.SetDefault("database.mongo_uri", c.Database.MongoURI)
	v.SetDefault("database.mongo_database", c.Database.MongoDatabase)
	v.SetDefault("database.query_timeout", c.Database.QueryTimeout)
	v.SetDefault("database.write_timeout", c.Database.WriteTimeout)
	v.SetDefault("database.dir_permissions", c.Database.DirPermissions)

	v.SetDefault("auth.google_client_id", c.Auth.GoogleClientID)
	v.SetDefault("auth.dev_token", c.Auth.DevToken)

	v.SetDefault("model.api_key", c.Model.APIKey)
	v.SetDefault("model.name", c.Model.Name)
	v.SetDefault("model.timeout", c.Model.Timeout)

	v.SetDefault("interpreter.timezone", c.Interpreter.Timezone)

	v.SetDefault("validation.title_max_length", c.Validation.TitleMaxLength)
	v.SetDefault("validation.content_max_length", c.Validation.ContentMaxLength)
	v.SetDefault("validation.max_study_duration", c.Validation.MaxStudyDuration)

	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)

	v.SetDefault("application.env", c.Application.Env)
	v.SetDefault("application.verbose", c.Application.Verbose)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Port         *int
	DBDriver     *string
	DBDir        *string
	DBFilename   *string
	MongoURI     *string
	ModelName    *string
	ModelTimeout *time.Duration
	Timezone     *string
	LogLevel     *string
	LogFormat    *string
	Verbose      *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Port != nil {
		config.Server.Port = *overrides.Port
	}
	if overrides.DBDriver != nil {
		config.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.MongoURI != nil {
		config.Database.MongoURI = *overrides.MongoURI
	}
	if overrides.ModelName != nil {
		config.Model.Name = *overrides.ModelName
	}
	if overrides.ModelTimeout != nil {
		config.Model.Timeout = *overrides.ModelTimeout
	}
	if overrides.Timezone != nil {
		config.Interpreter.Timezone = *overrides.Timezone
	}
	if overrides.LogLevel != nil {
		config.Log.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Log.Format = *overrides.LogFormat
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
