package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/archive"
)

const defaultTimeoutMS = 60000

// Load reads and validates the configuration file at path, applying defaults
// for the archive endpoint and timeout.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Archive.BaseURL == "" {
		cfg.Archive.BaseURL = archive.DefaultBaseURL
	}
	if cfg.Archive.TimeoutMS == 0 {
		cfg.Archive.TimeoutMS = defaultTimeoutMS
	}
}
