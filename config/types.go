package config

import (
	"github.com/tracklab/location2gpx/generator"
)

// Fields names the columns/fields a position source reads from its rows
// or documents. FlipCoordinates swaps the coordinate pair order for
// sources that store latitude first.
type Fields struct {
	DeviceID        string `yaml:"device_id" validate:"required"`
	Time            string `yaml:"time" validate:"required"`
	Coordinates     string `yaml:"coordinates" validate:"required"`
	Route           string `yaml:"route" validate:"required"`
	Speed           string `yaml:"speed" validate:"required"`
	Elevation       string `yaml:"elevation" validate:"required"`
	FlipCoordinates bool   `yaml:"flip_coordinates"`
}

// DefaultFields returns the documented field-name defaults.
func DefaultFields() Fields {
	return Fields{
		DeviceID:    "device",
		Time:        "time",
		Coordinates: "coordinates",
		Route:       "route",
		Speed:       "speed",
		Elevation:   "elevation",
	}
}

// Config is the root configuration structure.
type Config struct {
	Fields   Fields                        `yaml:"fields"`
	Segments generator.TrackSegmentOptions `yaml:"segments"`
}

// Default returns the configuration used when no config file is found.
func Default() Config {
	return Config{
		Fields:   DefaultFields(),
		Segments: generator.TrackSegmentOptions{MaxDuration: generator.DefaultMaxDuration},
	}
}
