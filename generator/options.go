package generator

// DefaultMaxDuration is the segment window width, in seconds, used when
// TrackSegmentOptions leaves MaxDuration unset.
const DefaultMaxDuration = 300

// TrackSegmentOptions configures segmentation and optional simplification.
// It is a plain value: construct it once, pass it by value. The zero value
// means "default window, simplification off".
type TrackSegmentOptions struct {
	// MaxDuration is the segment window width in seconds. Zero selects
	// DefaultMaxDuration; values below 1 are clamped to 1 rather than
	// rejected.
	MaxDuration int `yaml:"max_duration" validate:"omitempty,gte=0"`
	// VWTolerance enables Visvalingam-Whyatt simplification when present.
	// The value is a triangle-area threshold in squared coordinate units.
	VWTolerance *float64 `yaml:"vw_tolerance" validate:"omitempty,gt=0"`
}

// maxDurationSeconds applies the default and the minimum clamp.
func (o TrackSegmentOptions) maxDurationSeconds() int64 {
	d := o.MaxDuration
	if d == 0 {
		d = DefaultMaxDuration
	}
	if d < 1 {
		d = 1
	}
	return int64(d)
}

// simplification reports whether simplification is enabled and at which
// tolerance.
func (o TrackSegmentOptions) simplification() (float64, bool) {
	if o.VWTolerance == nil || *o.VWTolerance <= 0 {
		return 0, false
	}
	return *o.VWTolerance, true
}
