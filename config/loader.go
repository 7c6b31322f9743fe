package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tracklab/location2gpx/generator"
)

// DefaultFileName is the config file looked up in the working directory
// and in the user's home directory.
const DefaultFileName = ".loc2gpx.yaml"

// Load reads the configuration from the first readable candidate: the
// provided path (may be empty), ./.loc2gpx.yaml, then $HOME/.loc2gpx.yaml.
// When none exists the defaults are returned. Unset values in a loaded
// file keep their defaults.
func Load(path string) (Config, error) {
	var data []byte
	var found string
	for _, candidate := range candidatePaths(path) {
		b, err := os.ReadFile(candidate)
		if err == nil {
			data, found = b, candidate
			break
		}
	}
	if found == "" {
		return Default(), nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", found, err)
	}
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", found, err)
	}
	return cfg, nil
}

func candidatePaths(provided string) []string {
	var paths []string
	if provided != "" {
		paths = append(paths, provided)
	}
	paths = append(paths, DefaultFileName)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, DefaultFileName))
	}
	return paths
}

// applyDefaults fills values a file left empty. A `fields:` or
// `segments:` key with a null value zeroes the section, so every string
// is re-defaulted individually.
func applyDefaults(cfg *Config) {
	defaults := DefaultFields()
	if cfg.Fields.DeviceID == "" {
		cfg.Fields.DeviceID = defaults.DeviceID
	}
	if cfg.Fields.Time == "" {
		cfg.Fields.Time = defaults.Time
	}
	if cfg.Fields.Coordinates == "" {
		cfg.Fields.Coordinates = defaults.Coordinates
	}
	if cfg.Fields.Route == "" {
		cfg.Fields.Route = defaults.Route
	}
	if cfg.Fields.Speed == "" {
		cfg.Fields.Speed = defaults.Speed
	}
	if cfg.Fields.Elevation == "" {
		cfg.Fields.Elevation = defaults.Elevation
	}
	if cfg.Segments.MaxDuration == 0 {
		cfg.Segments.MaxDuration = generator.DefaultMaxDuration
	}
}
