package sources

import (
	"context"
	"time"

	"github.com/tracklab/location2gpx/generator"
)

// MemorySource serves positions from a slice. Useful for tests and for
// callers that already hold their samples in memory.
type MemorySource struct {
	positions []generator.DevicePosition
}

// NewMemorySource copies the given positions into a source.
func NewMemorySource(positions ...generator.DevicePosition) *MemorySource {
	copied := make([]generator.DevicePosition, len(positions))
	copy(copied, positions)
	return &MemorySource{positions: copied}
}

// Fetch returns the held samples whose timestamp falls inside [start, end].
func (s *MemorySource) Fetch(_ context.Context, start, end time.Time) ([]generator.DevicePosition, error) {
	var selected []generator.DevicePosition
	for _, pos := range s.positions {
		if !pos.Time.Before(start) && !pos.Time.After(end) {
			selected = append(selected, pos)
		}
	}
	return selected, nil
}
