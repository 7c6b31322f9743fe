package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	lib "github.com/tracklab/location2gpx"
	"github.com/tracklab/location2gpx/config"
	"github.com/tracklab/location2gpx/generator"
	"github.com/tracklab/location2gpx/gpx"
	"github.com/tracklab/location2gpx/sources"
)

func main() {
	sourceKind := flag.String("source", "csv", "csv|mongo")
	input := flag.String("input", "", "CSV file path (csv source)")
	connection := flag.String("connection", "", "Mongo connection string (mongo source)")
	database := flag.String("database", "", "Mongo database name (defaults to the connection string database)")
	collection := flag.String("collection", "", "Mongo collection name (mongo source)")
	start := flag.String("start", "", "Start time, RFC3339 format")
	end := flag.String("end", "", "End time, RFC3339 format")
	out := flag.String("out", "", "GPX file destination")
	configPath := flag.String("config", "", "Fields and segments configuration. Default: .loc2gpx.yaml, ~/.loc2gpx.yaml")
	flag.Parse()

	lib.InitLogging()

	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		panic(fmt.Errorf("failed to parse the start time: %w", err))
	}
	endTime, err := time.Parse(time.RFC3339, *end)
	if err != nil {
		panic(fmt.Errorf("failed to parse the end time: %w", err))
	}
	if *out == "" {
		panic("missing -out destination")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	var source generator.PositionsSource
	switch *sourceKind {
	case "csv":
		f, err := os.Open(*input)
		if err != nil {
			panic(fmt.Errorf("failed to open the CSV file: %w", err))
		}
		defer f.Close()
		source = sources.NewCSVSource(f, &cfg.Fields)
	case "mongo":
		coll, cleanup, err := openCollection(ctx, *connection, *database, *collection)
		if err != nil {
			panic(err)
		}
		defer cleanup()
		source = sources.NewMongoSource(coll, &cfg.Fields)
	default:
		panic("unknown source, expected csv or mongo")
	}

	tracks, err := generator.SourceToTracks(ctx, source, startTime, endTime, cfg.Segments)
	if err != nil {
		panic(err)
	}

	doc := gpx.NewDocument()
	doc.Tracks = tracks

	dest, err := os.Create(*out)
	if err != nil {
		panic(fmt.Errorf("failed to create the destination file: %w", err))
	}
	defer dest.Close()

	if err := doc.WriteXML(dest); err != nil {
		panic(err)
	}
}

// openCollection connects and resolves the target collection. When no
// -database flag is given the database named in the connection string is
// used.
func openCollection(ctx context.Context, uri, database, collection string) (*mongo.Collection, func(), error) {
	if collection == "" {
		return nil, nil, fmt.Errorf("missing -collection name")
	}
	if database == "" {
		cs, err := connstring.ParseAndValidate(uri)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse the connection string: %w", err)
		}
		database = cs.Database
	}
	if database == "" {
		return nil, nil, fmt.Errorf("default database not provided")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect: %w", err)
	}
	cleanup := func() { _ = client.Disconnect(ctx) }
	return client.Database(database).Collection(collection), cleanup, nil
}
