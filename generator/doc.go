// Package generator is the track-construction engine: it turns a fetched
// batch of raw device positions into ordered GPX tracks.
//
// The pipeline runs strictly forward:
//
//	raw batch -> grouped by (device, route-or-day) -> split into
//	time-bucket segments -> optionally simplified -> assembled tracks
//
// Grouping keys are the device identifier plus the position's route label,
// falling back to its UTC calendar date when no label is set. Segments are
// fixed-width, epoch-aligned time windows of a configurable duration, not
// gap-based splits: two samples exactly one window apart land in different
// segments even when temporally adjacent, which keeps output deterministic
// and independent of traversal order.
//
// All stages after the fetch are pure functions over immutable inputs;
// output order is fully determined by the input batch.
package generator
