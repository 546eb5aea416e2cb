package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the StudyFlow service
type Config struct {
	Server      ServerConfig      `mapstructure:"server" toml:"server" yaml:"server"`
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" yaml:"database"`
	Auth        AuthConfig        `mapstructure:"auth" toml:"auth" yaml:"auth"`
	Model       ModelConfig       `mapstructure:"model" toml:"model" yaml:"model"`
	Interpreter InterpreterConfig `mapstructure:"interpreter" toml:"interpreter" yaml:"interpreter"`
	Validation  ValidationConfig  `mapstructure:"validation" toml:"validation" yaml:"validation"`
	Log         LogConfig         `mapstructure:"log" toml:"log" yaml:"log"`
	Application ApplicationConfig `mapstructure:"application" toml:"application" yaml:"application"`
}

// ServerConfig holds HTTP listener configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host" toml:"host" yaml:"host"`
	Port            int           `mapstructure:"port" toml:"port" yaml:"port"`
	FrontendURL     string        `mapstructure:"frontend_url" toml:"frontend_url" yaml:"frontend_url"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DatabaseConfig holds document store configuration
type DatabaseConfig struct {
	Driver         string        `mapstructure:"driver" toml:"driver" yaml:"driver"`
	Dir            string        `mapstructure:"dir" toml:"dir" yaml:"dir"`
	Filename       string        `mapstructure:"filename" toml:"filename" yaml:"filename"`
	MongoURI       string        `mapstructure:"mongo_uri" toml:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase  string        `mapstructure:"mongo_database" toml:"mongo_database" yaml:"mongo_database"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout" toml:"query_timeout" yaml:"query_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" toml:"write_timeout" yaml:"write_timeout"`
	DirPermissions uint32        `mapstructure:"dir_permissions" toml:"dir_permissions" yaml:"dir_permissions"`
}

// AuthConfig holds identity provider configuration
type AuthConfig struct {
	GoogleClientID string `mapstructure:"google_client_id" toml:"google_client_id" yaml:"google_client_id"`
	DevToken       string `mapstructure:"dev_token" toml:"dev_token" yaml:"dev_token"`
}

// ModelConfig holds generative model configuration
type ModelConfig struct {
	APIKey  string        `mapstructure:"api_key" toml:"api_key" yaml:"api_key"`
	Name    string        `mapstructure:"name" toml:"name" yaml:"name"`
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout" yaml:"timeout"`
}

// InterpreterConfig holds command interpreter configuration
type InterpreterConfig struct {
	Timezone string `mapstructure:"timezone" toml:"timezone" yaml:"timezone"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength   int           `mapstructure:"title_max_length" toml:"title_max_length" yaml:"title_max_length"`
	ContentMaxLength int           `mapstructure:"content_max_length" toml:"content_max_length" yaml:"content_max_length"`
	MaxStudyDuration time.Duration `mapstructure:"max_study_duration" toml:"max_study_duration" yaml:"max_study_duration"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level" yaml:"level"`
	Format string `mapstructure:"format" toml:"format" yaml:"format"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Env     string `mapstructure:"env" toml:"env" yaml:"env"`
	Verbose bool   `mapstructure:"verbose" toml:"verbose" yaml:"verbose"`
}

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	DefaultModelName = "gemini-1.5-flash"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".studyflow")

	return &Config{
		Server: ServerConfig{
			Port:            5000,
			FrontendURL:     "*",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:         DriverSQLite,
			Dir:            defaultDBDir,
			Filename:       "studyflow.db",
			MongoDatabase:  "studyflow",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Model: ModelConfig{
			Name:    DefaultModelName,
			Timeout: 30 * time.Second,
		},
		Interpreter: InterpreterConfig{
			Timezone: "Local",
		},
		Validation: ValidationConfig{
			TitleMaxLength:   255,
			ContentMaxLength: 100000,
			MaxStudyDuration: 24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Application: ApplicationConfig{
			Env: "development",
		},
	}
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == ":memory:" {
		return c.Database.Filename
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Location resolves the interpreter's fallback time zone
func (c *Config) Location() (*time.Location, error) {
	if c.Interpreter.Timezone == "" || c.Interpreter.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Interpreter.Timezone)
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Application.Env == "production"
}

// Redacted returns a copy with secrets masked, for display
func (c *Config) Redacted() *Config {
	out := *c
	if out.Model.APIKey != "" {
		out.Model.APIKey = "********"
	}
	if out.Auth.DevToken != "" {
		out.Auth.DevToken = "********"
	}
	return &out
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
		if c.Database.Dir == "" && c.Database.Filename != ":memory:" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
	case DriverMongo:
		if c.Database.MongoURI == "" {
			return &ConfigError{Field: "database.mongo_uri", Message: "mongo uri is required for the mongo driver"}
		}
		if c.Database.MongoDatabase == "" {
			return &ConfigError{Field: "database.mongo_database", Message: "mongo database name cannot be empty"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: "driver must be sqlite or mongo"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Model.Name == "" {
		return &ConfigError{Field: "model.name", Message: "model name cannot be empty"}
	}
	if c.Model.Timeout <= 0 {
		return &ConfigError{Field: "model.timeout", Message: "model timeout must be positive"}
	}

	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "interpreter.timezone", Message: "unknown time zone " + c.Interpreter.Timezone}
	}

	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.ContentMaxLength < c.Validation.TitleMaxLength {
		return &ConfigError{Field: "validation.content_max_length", Message: "content maximum length must not be below the title maximum"}
	}
	if c.Validation.MaxStudyDuration <= 0 {
		return &ConfigError{Field: "validation.max_study_duration", Message: "max study duration must be positive"}
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be json or console"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
