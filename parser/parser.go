package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-closest/structs"
	. "github.com/ttpr0/go-closest/util"
	"golang.org/x/exp/slog"
)

// Loads the waypoints of a TMG, csv or OSM PBF file.
func LoadPoints(filename string, options LoadOptions) (structs.PointSet, error) {
	format := _GetFormat(filename)
	if options.Format != nil {
		format = *options.Format
	}
	slog.Info(fmt.Sprintf("Loading %s points from %s", format, filename))

	var points structs.PointSet
	var err error
	switch format {
	case CSV:
		points, err = LoadCSV(filename, options.CSVDelimiter)
	case OSM:
		var decoder IWaypointDecoder
		if options.OSMLabelTag == "*" {
			decoder = &TaggedNodeDecoder{}
		} else {
			decoder = NewTagDecoder(options.OSMLabelTag)
		}
		points, err = LoadOSM(context.Background(), filename, decoder)
	default:
		points, err = LoadTMG(filename)
	}
	if err != nil {
		return nil, err
	}
	slog.Info(fmt.Sprintf("Loaded %d waypoints", points.Length()))
	return points, nil
}

//*******************************************
// osm
//*******************************************

// Reads every node accepted by the decoder from an OSM PBF file, in file order.
func LoadOSM(ctx context.Context, pbf_file string, decoder IWaypointDecoder) (structs.PointSet, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()

	points := NewList[structs.Waypoint](1000)
	if err := _NodeHandler(scanner, decoder, &points); err != nil {
		return nil, &FormatError{Source: pbf_file, Msg: "invalid OSM PBF file", Err: err}
	}
	return structs.PointSet(points), nil
}

func _NodeHandler(scanner *osmpbf.Scanner, decoder IWaypointDecoder, points *List[structs.Waypoint]) error {
	c := 0
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			c += 1
			if c%100000 == 0 {
				slog.Debug(fmt.Sprintf("%v nodes scanned", c))
			}
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsWaypoint(tags) {
				continue
			}
			id := object.FeatureID().Ref()
			points.Add(structs.NewWaypoint(decoder.Label(id, tags), object.Lat, object.Lon))
		default:
			continue
		}
	}
	return scanner.Err()
}
