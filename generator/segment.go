package generator

import (
	"sort"

	"github.com/tracklab/location2gpx/gpx"
)

// splitSegments sorts one group's positions by time and splits them into
// fixed-width, epoch-aligned windows of maxDuration seconds. Each position
// lands in the segment owned by bucket = floor(unix/maxDuration)*maxDuration;
// segments come back in ascending bucket order. The sort is stable, so
// positions with equal timestamps keep their batch order.
func splitSegments(positions []RawPosition, maxDuration int64) []gpx.TrackSegment {
	sorted := make([]RawPosition, len(positions))
	copy(sorted, positions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	buckets := map[int64]*gpx.TrackSegment{}
	for _, pos := range sorted {
		key := bucketKey(pos.Time.Unix(), maxDuration)
		seg := buckets[key]
		if seg == nil {
			seg = &gpx.TrackSegment{}
			buckets[key] = seg
		}
		seg.Points = append(seg.Points, waypointFrom(pos))
	}

	keys := make([]int64, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	segments := make([]gpx.TrackSegment, 0, len(keys))
	for _, key := range keys {
		segments = append(segments, *buckets[key])
	}
	return segments
}

// bucketKey is floor(sec/width)*width with floored division, so pre-epoch
// timestamps bucket correctly too.
func bucketKey(sec, width int64) int64 {
	q := sec / width
	if sec%width != 0 && sec < 0 {
		q--
	}
	return q * width
}

// waypointFrom carries a position's values through unchanged; absent speed
// and altitude stay absent rather than defaulting to zero.
func waypointFrom(pos RawPosition) gpx.Waypoint {
	t := pos.Time
	return gpx.Waypoint{
		Point:     pos.Coordinates,
		Time:      &t,
		Elevation: pos.Altitude,
		Speed:     pos.Speed,
	}
}
