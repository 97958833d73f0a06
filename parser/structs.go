package parser

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

//*******************************************
// parser structs
//*******************************************

type LoadOptions struct {
	// Format of the input, derived from the file extension if not set.
	Format *InputFormat `yaml:"format"`
	// Column delimiter of csv files, defaults to ','.
	CSVDelimiter string `yaml:"csv-delimiter"`
	// Tag used to select and label OSM nodes, "*" selects every tagged node.
	OSMLabelTag string `yaml:"osm-label-tag"`
}

type CSVWaypoint struct {
	Label string  `csv:"label"`
	Lat   float64 `csv:"lat"`
	Lon   float64 `csv:"lon"`
}

//*******************************************
// input format
//*******************************************

type InputFormat byte

const (
	TMG InputFormat = 0
	CSV InputFormat = 1
	OSM InputFormat = 2
)

func (self InputFormat) String() string {
	switch self {
	case TMG:
		return "tmg"
	case CSV:
		return "csv"
	case OSM:
		return "osm"
	default:
		panic("unknown input format")
	}
}
func (self InputFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self InputFormat) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *InputFormat) UnmarshalYAML(value *yaml.Node) error {
	typ, err := InputFormatFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func InputFormatFromString(s string) (InputFormat, error) {
	switch s {
	case "tmg":
		return TMG, nil
	case "csv":
		return CSV, nil
	case "osm", "pbf":
		return OSM, nil
	default:
		return TMG, errors.New("unknown input format " + s)
	}
}
