// Package gpx defines the GPX 1.1 output document model and its XML
// serialization.
//
// The model is the complete surface the track engine produces: a document
// holds tracks, a track holds time-bucketed segments, a segment holds
// waypoints. String fields use "" to mean "absent"; optional per-point
// values (time, elevation, speed) are pointers so that missing inputs stay
// missing in the output instead of defaulting to zero.
//
// Serialization is done manually for precise control over element order
// and presence.
package gpx
