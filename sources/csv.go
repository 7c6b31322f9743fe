package sources

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/tracklab/location2gpx/config"
	"github.com/tracklab/location2gpx/generator"
)

// CSVSource reads device positions from a CSV stream. The first record is
// the header; device, coordinates and time columns are required, route,
// speed and elevation are optional. Coordinate cells hold a "lng,lat"
// pair split on comma, semicolon or space (order swapped when
// FlipCoordinates is set).
//
// Row policy: rows with fewer than three cells, a blank device cell, or a
// coordinate cell that does not split into exactly two parts are skipped
// silently; rows whose values are present but unparsable (bad number, bad
// RFC3339 time) fail the whole fetch.
type CSVSource struct {
	reader *csv.Reader
	fields config.Fields
}

// NewCSVSource wraps r in a position source. A nil fields mapping selects
// the defaults.
func NewCSVSource(r io.Reader, fields *config.Fields) *CSVSource {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1
	rdr.TrimLeadingSpace = true

	f := config.DefaultFields()
	if fields != nil {
		f = *fields
	}
	return &CSVSource{reader: rdr, fields: f}
}

// columnIndex maps the configured field names onto header positions.
type columnIndex struct {
	device      int
	coordinates int
	time        int
	route       int
	speed       int
	elevation   int
}

// Fetch reads the whole stream and returns the samples whose timestamp
// falls inside [start, end].
func (s *CSVSource) Fetch(ctx context.Context, start, end time.Time) ([]generator.DevicePosition, error) {
	header, err := s.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read the header: %w", err)
	}
	cols, err := parseHeader(s.fields, header)
	if err != nil {
		return nil, err
	}

	var positions []generator.DevicePosition
	for {
		row, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read a row: %w", err)
		}
		if len(row) < 3 {
			continue
		}

		pos, ok, err := parseRow(cols, s.fields, row)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", row, err)
		}
		if !ok {
			continue
		}
		if !pos.Time.Before(start) && !pos.Time.After(end) {
			positions = append(positions, pos)
		}
	}
	return positions, nil
}

func parseHeader(fields config.Fields, header []string) (columnIndex, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	cols := columnIndex{
		device:      find(fields.DeviceID),
		coordinates: find(fields.Coordinates),
		time:        find(fields.Time),
		route:       find(fields.Route),
		speed:       find(fields.Speed),
		elevation:   find(fields.Elevation),
	}
	if cols.device < 0 {
		return cols, errors.New("device header not found")
	}
	if cols.coordinates < 0 {
		return cols, errors.New("coordinates header not found")
	}
	if cols.time < 0 {
		return cols, errors.New("time header not found")
	}
	return cols, nil
}

// parseRow returns ok=false for rows skipped under the documented row
// policy.
func parseRow(cols columnIndex, fields config.Fields, row []string) (generator.DevicePosition, bool, error) {
	var none generator.DevicePosition

	deviceID := strings.TrimSpace(cell(row, cols.device))
	if deviceID == "" {
		return none, false, nil
	}

	rawCoordinates := strings.TrimSpace(cell(row, cols.coordinates))
	separator := " "
	switch {
	case strings.Contains(rawCoordinates, ","):
		separator = ","
	case strings.Contains(rawCoordinates, ";"):
		separator = ";"
	}
	parts := strings.Split(rawCoordinates, separator)
	if len(parts) != 2 {
		return none, false, nil
	}

	latIdx, lngIdx := 1, 0
	if fields.FlipCoordinates {
		latIdx, lngIdx = 0, 1
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[latIdx]), 64)
	if err != nil {
		return none, false, fmt.Errorf("invalid latitude format: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[lngIdx]), 64)
	if err != nil {
		return none, false, fmt.Errorf("invalid longitude format: %w", err)
	}

	sampledAt, err := time.Parse(time.RFC3339, strings.TrimSpace(cell(row, cols.time)))
	if err != nil {
		return none, false, fmt.Errorf("failed to parse the time: %w", err)
	}

	pos := generator.NewDevicePosition(deviceID, orb.Point{lng, lat}, sampledAt)
	if route := strings.TrimSpace(cell(row, cols.route)); route != "" {
		pos.RouteName = route
	}
	if speed, err := strconv.ParseFloat(strings.TrimSpace(cell(row, cols.speed)), 64); err == nil {
		pos.Speed = &speed
	}
	if elevation, err := strconv.ParseFloat(strings.TrimSpace(cell(row, cols.elevation)), 64); err == nil {
		pos.Altitude = &elevation
	}
	return pos, true, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
