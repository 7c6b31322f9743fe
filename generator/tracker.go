package generator

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/tracklab/location2gpx/gpx"
)

// Tracker assembles one track for a single device and track name. Fill the
// fields and call Build; Source and Options are optional.
type Tracker struct {
	// Device name or number the positions belong to.
	Device string
	// Name of the route/track/category, or a date string for unlabeled
	// groups.
	Name string
	// Source tags the originating application, e.g. a tracking app.
	Source string
	// Options controls segmentation and simplification.
	Options TrackSegmentOptions
}

// NewTracker returns a tracker for the given device and track name.
func NewTracker(device, name string) *Tracker {
	return &Tracker{Device: device, Name: name}
}

// Build produces the track for the supplied positions: metadata first,
// then time-bucket segmentation, then optional per-segment simplification.
// An empty position list yields a track with zero segments.
func (t *Tracker) Build(positions []RawPosition) gpx.Track {
	track := gpx.Track{
		Name:        t.Name,
		Description: fmt.Sprintf("Tracked by `%s`", t.Device),
		Source:      t.Source,
	}

	segments := splitSegments(positions, t.Options.maxDurationSeconds())
	tolerance, simplifyEnabled := t.Options.simplification()
	for _, seg := range segments {
		if simplifyEnabled {
			seg = reduceSegment(seg, tolerance)
		}
		track.Segments = append(track.Segments, seg)
	}
	return track
}

// reduceSegment rebuilds a segment keeping only the waypoints retained by
// the simplifier. Retained waypoints keep their original attributes and
// relative order; endpoints always survive.
func reduceSegment(seg gpx.TrackSegment, tolerance float64) gpx.TrackSegment {
	points := make([]orb.Point, len(seg.Points))
	for i, wp := range seg.Points {
		points[i] = wp.Point
	}

	kept := visvalingamIndices(points, tolerance)
	if len(kept) == len(seg.Points) {
		return seg
	}

	reduced := gpx.TrackSegment{Points: make([]gpx.Waypoint, 0, len(kept))}
	for _, idx := range kept {
		reduced.Points = append(reduced.Points, seg.Points[idx])
	}
	return reduced
}
