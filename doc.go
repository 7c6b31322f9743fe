// Package location2gpx converts raw GPS position samples into GPX 1.1
// track documents. Positions come from pluggable sources (CSV files,
// MongoDB collections, in-memory slices), are grouped per device and
// route or day, split into time-bucketed segments, optionally simplified
// with Visvalingam-Whyatt, and rendered as GPX.
//
// The pipeline lives in the generator package, the output model in gpx,
// the source adapters in sources, and the YAML configuration in config.
// This root package only carries process-wide helpers shared by the CLI.
package location2gpx
