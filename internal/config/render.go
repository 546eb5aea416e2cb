package config

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported output formats for Render.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Render serializes the configuration with secrets masked.
func Render(cfg *Config, format string) ([]byte, error) {
	redacted := cfg.Redacted()
	switch format {
	case FormatTOML, "":
		return toml.Marshal(redacted)
	case FormatYAML:
		return yaml.Marshal(redacted)
	case FormatJSON:
		return json.MarshalIndent(redacted, "", "  ")
	default:
		return nil, &ConfigError{Field: "format", Message: fmt.Sprintf("unsupported format %q", format)}
	}
}
