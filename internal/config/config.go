package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/SAP/page-url-manager/internal/template"
)

type Config struct {
	BaseURL      string `envconfig:"base_url"`
	PathTemplate string `envconfig:"path_template"`
	EscapeAmp    bool   `envconfig:"escape_amp"`
	MaxURLLength int64  `envconfig:"max_url_length"`
}

// Default returns the configuration used when no environment variable is set
func Default() Config {
	return Config{
		PathTemplate: template.DefaultPathTemplate,
		EscapeAmp:    true,
		MaxURLLength: 8192,
	}
}

// Load reads the environment on top of the defaults
func Load() (Config, error) {
	c := Default()
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if c.MaxURLLength <= 0 {
		return Config{}, fmt.Errorf("MAX_URL_LENGTH must be a positive number of bytes, got %d", c.MaxURLLength)
	}
	return c, nil
}
