package generator

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
)

func TestTracker_SimpleTrack(t *testing.T) {
	p1 := NewRawPosition(orb.Point{-48.8702222, -26.31832}, time.Date(2021, 5, 24, 0, 0, 0, 0, time.UTC))
	p2 := NewRawPosition(orb.Point{-48.8619776, -26.3185919}, time.Date(2021, 5, 24, 0, 5, 0, 0, time.UTC))
	p3 := NewRawPosition(orb.Point{-48.8619871, -26.3185861}, time.Date(2021, 5, 24, 0, 10, 0, 0, time.UTC))

	tracker := NewTracker("my dev 1", "running in joinville")
	tracker.Source = "my app v0.1"
	tracker.Options = TrackSegmentOptions{MaxDuration: 3600}

	track := tracker.Build([]RawPosition{p1, p2, p3})

	if track.Name != "running in joinville" {
		t.Errorf("expected track name, got %q", track.Name)
	}
	if track.Description != "Tracked by `my dev 1`" {
		t.Errorf("expected description, got %q", track.Description)
	}
	if track.Source != "my app v0.1" {
		t.Errorf("expected source tag, got %q", track.Source)
	}
	if len(track.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(track.Segments))
	}

	pts := track.Segments[0].Points
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	for i, want := range []RawPosition{p1, p2, p3} {
		if pts[i].Point != want.Coordinates {
			t.Errorf("point %d: expected %v, got %v", i, want.Coordinates, pts[i].Point)
		}
		if pts[i].Time == nil || !pts[i].Time.Equal(want.Time) {
			t.Errorf("point %d: expected time %v, got %v", i, want.Time, pts[i].Time)
		}
	}
}

func TestTracker_ReversedInput(t *testing.T) {
	p1 := NewRawPosition(orb.Point{-48.8702222, -26.31832}, time.Date(2021, 5, 24, 0, 0, 0, 0, time.UTC))
	p2 := NewRawPosition(orb.Point{-48.8619776, -26.3185919}, time.Date(2021, 5, 24, 0, 5, 0, 0, time.UTC))
	p3 := NewRawPosition(orb.Point{-48.8619871, -26.3185861}, time.Date(2021, 5, 24, 0, 10, 0, 0, time.UTC))

	tracker := NewTracker("my dev 1", "running in joinville")
	tracker.Options = TrackSegmentOptions{MaxDuration: 3600}

	track := tracker.Build([]RawPosition{p3, p2, p1})

	if len(track.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(track.Segments))
	}
	pts := track.Segments[0].Points
	if pts[0].Point != p1.Coordinates || pts[2].Point != p3.Coordinates {
		t.Errorf("points should come back in time order regardless of input order")
	}
}

func TestTracker_EmptyPositions(t *testing.T) {
	track := NewTracker("dev1", "empty").Build(nil)

	if len(track.Segments) != 0 {
		t.Errorf("empty input should build a track with zero segments, got %d", len(track.Segments))
	}
	if track.Description != "Tracked by `dev1`" {
		t.Errorf("metadata should still be set, got %q", track.Description)
	}
}

func TestTracker_RoundTripSingleSegment(t *testing.T) {
	// Window wider than the whole span: every point in one segment,
	// in time order, untouched.
	base := time.Date(2022, 2, 7, 0, 0, 0, 0, time.UTC)
	positions := make([]RawPosition, 10)
	for i := range positions {
		positions[i] = NewRawPosition(orb.Point{float64(i), float64(i % 3)}, base.Add(time.Duration(i)*time.Minute))
	}

	tracker := NewTracker("dev1", "round trip")
	tracker.Options = TrackSegmentOptions{MaxDuration: 86400}
	track := tracker.Build(positions)

	if len(track.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(track.Segments))
	}
	pts := track.Segments[0].Points
	if len(pts) != len(positions) {
		t.Fatalf("expected %d points, got %d", len(positions), len(pts))
	}
	for i := range pts {
		if pts[i].Point != positions[i].Coordinates {
			t.Errorf("point %d altered: expected %v, got %v", i, positions[i].Coordinates, pts[i].Point)
		}
	}

	t.Logf("✓ no simplification, wide window: point-for-point round trip")
}

func TestTracker_SimplificationReducesSegment(t *testing.T) {
	base := time.Date(2022, 2, 7, 0, 0, 0, 0, time.UTC)
	speed := 1.5
	positions := make([]RawPosition, len(nearStraightThenSharp))
	for i, pt := range nearStraightThenSharp {
		positions[i] = NewRawPosition(pt, base.Add(time.Duration(i)*time.Second))
		positions[i].Speed = &speed
	}

	tolerance := 0.01
	tracker := NewTracker("dev1", "simplified")
	tracker.Options = TrackSegmentOptions{MaxDuration: 3600, VWTolerance: &tolerance}
	track := tracker.Build(positions)

	if len(track.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(track.Segments))
	}
	pts := track.Segments[0].Points
	if len(pts) != 4 {
		t.Fatalf("expected 4 retained points, got %d", len(pts))
	}
	if pts[0].Point != nearStraightThenSharp[0] {
		t.Errorf("first waypoint must survive simplification")
	}
	if pts[len(pts)-1].Point != nearStraightThenSharp[len(nearStraightThenSharp)-1] {
		t.Errorf("last waypoint must survive simplification")
	}
	for i, wp := range pts {
		if wp.Speed == nil || *wp.Speed != speed {
			t.Errorf("point %d: attributes must survive reduction", i)
		}
	}
}

func TestTracker_SimplificationOnLoopedTrack(t *testing.T) {
	// A loop back to the start coordinate collapses to its endpoints at a
	// large tolerance; the surviving last waypoint must be the one with the
	// latest timestamp, not a mid-track revisit of the start.
	loop := []orb.Point{
		{0, 0},
		{1, 0.5},
		{0, 0},
		{1, -0.5},
		{0, 0},
	}
	base := time.Date(2022, 2, 7, 0, 0, 0, 0, time.UTC)
	positions := make([]RawPosition, len(loop))
	for i, pt := range loop {
		positions[i] = NewRawPosition(pt, base.Add(time.Duration(i)*time.Second))
	}

	tolerance := 10.0
	tracker := NewTracker("dev1", "looped")
	tracker.Options = TrackSegmentOptions{MaxDuration: 3600, VWTolerance: &tolerance}
	track := tracker.Build(positions)

	if len(track.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(track.Segments))
	}
	pts := track.Segments[0].Points
	if len(pts) < 2 {
		t.Fatalf("endpoints must survive simplification, got %d points", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if first.Time == nil || !first.Time.Equal(positions[0].Time) {
		t.Errorf("first waypoint must be the earliest sample, got %v", first.Time)
	}
	if last.Time == nil || !last.Time.Equal(positions[len(positions)-1].Time) {
		t.Errorf("last waypoint must be the latest sample, got %v", last.Time)
	}
}

func TestTracker_SimplificationDisabledPassthrough(t *testing.T) {
	base := time.Date(2022, 2, 7, 0, 0, 0, 0, time.UTC)
	positions := make([]RawPosition, len(nearStraightThenSharp))
	for i, pt := range nearStraightThenSharp {
		positions[i] = NewRawPosition(pt, base.Add(time.Duration(i)*time.Second))
	}

	tracker := NewTracker("dev1", "untouched")
	tracker.Options = TrackSegmentOptions{MaxDuration: 3600}
	track := tracker.Build(positions)

	if len(track.Segments[0].Points) != len(positions) {
		t.Errorf("disabled simplification must pass segments through point-for-point")
	}
}

func TestTrackSegmentOptions_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		expected int64
	}{
		{"zero selects default", 0, 300},
		{"negative clamps to one", -10, 1},
		{"one stays one", 1, 1},
		{"explicit value kept", 600, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := TrackSegmentOptions{MaxDuration: tt.duration}
			if got := opts.maxDurationSeconds(); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTrackSegmentOptions_Simplification(t *testing.T) {
	var opts TrackSegmentOptions
	if _, on := opts.simplification(); on {
		t.Error("zero options should leave simplification off")
	}

	tolerance := 0.5
	opts.VWTolerance = &tolerance
	got, on := opts.simplification()
	if !on || got != tolerance {
		t.Errorf("expected enabled with tolerance %v, got %v (%v)", tolerance, got, on)
	}
}
