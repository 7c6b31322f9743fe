package generator

import (
	"time"

	"github.com/paulmach/orb"
)

// RawPosition is one sampled point: coordinates, a timezone-aware instant,
// and optional speed (m/s) and altitude (m). It carries no identity.
type RawPosition struct {
	Coordinates orb.Point
	Time        time.Time
	Speed       *float64
	Altitude    *float64
}

// NewRawPosition returns a position with only the required fields set.
func NewRawPosition(coordinates orb.Point, t time.Time) RawPosition {
	return RawPosition{Coordinates: coordinates, Time: t}
}

// DevicePosition is a RawPosition attributed to a device, with an optional
// route/category label and an optional originating-application tag.
// Empty strings mean "absent". Numeric device identifiers from a source
// must be coerced to their decimal string form before construction.
type DevicePosition struct {
	RawPosition
	DeviceID  string
	RouteName string
	SourceApp string
}

// NewDevicePosition returns a device-attributed position with only the
// required fields set.
func NewDevicePosition(deviceID string, coordinates orb.Point, t time.Time) DevicePosition {
	return DevicePosition{
		RawPosition: NewRawPosition(coordinates, t),
		DeviceID:    deviceID,
	}
}
