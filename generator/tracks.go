package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/tracklab/location2gpx/gpx"
)

// PositionsSource produces the device positions sampled inside a time
// window. Both bounds are inclusive. Implementations own their I/O policy
// (retries, timeouts, per-row tolerance); the engine invokes Fetch exactly
// once per build and treats any error as fatal.
type PositionsSource interface {
	Fetch(ctx context.Context, start, end time.Time) ([]DevicePosition, error)
}

// SourceToTracks fetches the window's positions from source and builds one
// track per (device, route-or-day) group, in ascending group-key order.
// A fetch failure aborts the whole build; no partial results are returned.
func SourceToTracks(ctx context.Context, source PositionsSource, start, end time.Time, opts TrackSegmentOptions) ([]gpx.Track, error) {
	batch, err := source.Fetch(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}

	groups := groupPositions(batch)
	tracks := make([]gpx.Track, 0, len(groups))
	for _, grp := range groups {
		tracker := Tracker{
			Device:  grp.deviceID,
			Name:    grp.routeKey,
			Source:  grp.sourceApp,
			Options: opts,
		}
		positions := make([]RawPosition, len(grp.members))
		for i, member := range grp.members {
			positions[i] = member.RawPosition
		}
		tracks = append(tracks, tracker.Build(positions))
	}
	return tracks, nil
}
