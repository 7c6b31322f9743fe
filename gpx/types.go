package gpx

import (
	"time"

	"github.com/paulmach/orb"
)

const (
	// Version is the GPX schema version this package emits.
	Version = "1.1"
	// Creator identifies the generating application in the gpx element.
	Creator = "location2gpx"
)

// GPX is the root of an exportable document.
type GPX struct {
	Version string
	Creator string
	Tracks  []Track
}

// Track is a named collection of segments belonging to one device and one
// route or calendar day.
type Track struct {
	Name        string
	Description string
	Source      string
	Segments    []TrackSegment
}

// TrackSegment is an ordered run of waypoints. Waypoint times are
// non-decreasing within a segment.
type TrackSegment struct {
	Points []Waypoint
}

// Waypoint is one exported point.
type Waypoint struct {
	Point     orb.Point
	Time      *time.Time
	Elevation *float64
	Speed     *float64
}

// NewDocument returns an empty document with version and creator set.
func NewDocument() *GPX {
	return &GPX{Version: Version, Creator: Creator}
}
