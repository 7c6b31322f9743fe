// Package config handles configuration loading and validation for the
// GPX generator.
//
// Configuration lives in a YAML file with two sections: `fields` maps the
// column/field names a position source reads, and `segments` holds the
// track segmentation options. The loader falls back through a path list
// (explicit path, ./.loc2gpx.yaml, $HOME/.loc2gpx.yaml); when no file is
// found the documented defaults apply. A file that exists but does not
// parse or validate is an error, not a silent fallback.
package config
