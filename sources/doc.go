// Package sources provides position-source adapters for the track
// engine: CSV files, MongoDB collections, and an in-memory slice. Every
// adapter implements generator.PositionsSource and honors the same field
// mapping (config.Fields).
//
// Malformed-sample policy differs by adapter and is documented on each
// type: the CSV adapter skips rows that structurally lack a device id or
// a coordinate pair and fails on corrupt values; the Mongo adapter fails on any
// matched document it cannot decode (its query already excludes documents
// without a two-element coordinate array).
package sources
