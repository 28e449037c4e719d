package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adkpi/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the dashboard API server. Environment
	// variables prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Report holds the dashboard defaults: spend threshold, focus
	// countries and ranking size (REPORT_ prefix).
	Report configs.Report `envPrefix:"REPORT_"`

	// Catalog points at the YAML file listing the exports (CATALOG_
	// prefix).
	Catalog configs.Catalog `envPrefix:"CATALOG_"`
}

// Load reads an optional .env file from the working directory and then
// parses environment variables into a Config. Variables already present
// in the environment win over the .env file.
func Load() (Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit .env path. A missing file is not an
// error.
func LoadFrom(dotenv string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Report.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
