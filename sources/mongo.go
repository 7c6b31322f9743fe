package sources

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tracklab/location2gpx/config"
	"github.com/tracklab/location2gpx/generator"
)

// MongoSource reads device positions from a MongoDB collection. Its query
// only matches documents whose time falls inside the window and whose
// coordinate array has exactly two elements; any matched document that
// still cannot be decoded fails the fetch with the document id in the
// error.
type MongoSource struct {
	collection *mongo.Collection
	fields     config.Fields
}

// NewMongoSource wraps a collection in a position source. A nil fields
// mapping selects the defaults.
func NewMongoSource(collection *mongo.Collection, fields *config.Fields) *MongoSource {
	f := config.DefaultFields()
	if fields != nil {
		f = *fields
	}
	return &MongoSource{collection: collection, fields: f}
}

// Fetch queries the collection for samples inside [start, end].
func (s *MongoSource) Fetch(ctx context.Context, start, end time.Time) ([]generator.DevicePosition, error) {
	filter := bson.D{
		{Key: s.fields.Time, Value: bson.D{
			{Key: "$gte", Value: primitive.NewDateTimeFromTime(start)},
			{Key: "$lte", Value: primitive.NewDateTimeFromTime(end)},
		}},
		{Key: s.fields.Coordinates, Value: bson.D{
			{Key: "$size", Value: 2},
		}},
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the docs: %w", err)
	}
	defer cursor.Close(ctx)

	var positions []generator.DevicePosition
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to read a doc: %w", err)
		}

		pos, err := parseDoc(s.fields, doc)
		if err != nil {
			return nil, fmt.Errorf("doc %v: %w", doc["_id"], err)
		}
		positions = append(positions, pos)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read the docs: %w", err)
	}
	return positions, nil
}

// parseDoc converts a raw document using the configured field mapping.
// Device ids may be strings or numbers, times may be strings, BSON dates
// or timestamps.
func parseDoc(fields config.Fields, doc bson.M) (generator.DevicePosition, error) {
	var none generator.DevicePosition

	deviceID, err := stringValue(doc[fields.DeviceID])
	if err != nil {
		return none, fmt.Errorf("device field: %w", err)
	}

	coordinates, ok := doc[fields.Coordinates].(primitive.A)
	if !ok {
		return none, fmt.Errorf("coordinates field is not an array")
	}
	if len(coordinates) != 2 {
		return none, fmt.Errorf("coordinates size invalid")
	}

	latIdx, lngIdx := 1, 0
	if fields.FlipCoordinates {
		latIdx, lngIdx = 0, 1
	}
	lat, ok := numberValue(coordinates[latIdx])
	if !ok {
		return none, fmt.Errorf("invalid type of latitude")
	}
	lng, ok := numberValue(coordinates[lngIdx])
	if !ok {
		return none, fmt.Errorf("invalid type of longitude")
	}

	sampledAt, err := timeValue(doc[fields.Time])
	if err != nil {
		return none, fmt.Errorf("time field: %w", err)
	}

	pos := generator.NewDevicePosition(deviceID, orb.Point{lng, lat}, sampledAt)
	pos.RouteName = routeValue(doc[fields.Route])
	if speed, ok := numberValue(doc[fields.Speed]); ok {
		pos.Speed = &speed
	}
	if elevation, ok := numberValue(doc[fields.Elevation]); ok {
		pos.Altitude = &elevation
	}
	return pos, nil
}

func stringValue(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case nil:
		return "", fmt.Errorf("not found")
	default:
		return "", fmt.Errorf("type %T not supported", v)
	}
}

func numberValue(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func timeValue(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse the time: %w", err)
		}
		return parsed, nil
	case primitive.DateTime:
		return t.Time().UTC(), nil
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC(), nil
	case nil:
		return time.Time{}, fmt.Errorf("not found")
	default:
		return time.Time{}, fmt.Errorf("type %T not supported", v)
	}
}

// routeValue accepts a plain value or takes the first element of an
// array. Unsupported shapes leave the route empty.
func routeValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case primitive.A:
		if len(t) == 0 {
			return ""
		}
		switch first := t[0].(type) {
		case string:
			return first
		case int32:
			return strconv.FormatInt(int64(first), 10)
		case int64:
			return strconv.FormatInt(first, 10)
		}
	}
	return ""
}
