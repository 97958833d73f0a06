package parser

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/ttpr0/go-closest/structs"
	. "github.com/ttpr0/go-closest/util"
)

// Reads waypoints from a csv file with "label", "lat" and "lon" columns.
func LoadCSV(filename string, delimiter string) (structs.PointSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseCSV(file, filename, delimiter)
}

func ParseCSV(r io.Reader, source string, delimiter string) (structs.PointSet, error) {
	comma := ','
	if delimiter != "" {
		d, size := utf8.DecodeRuneInString(delimiter)
		if size != len(delimiter) || d == utf8.RuneError {
			return nil, &FormatError{Source: source, Msg: "invalid csv delimiter " + delimiter}
		}
		comma = d
	}

	points := NewList[structs.Waypoint](1000)
	for row, err := range ReadCSV[CSVWaypoint](r, comma) {
		if err != nil {
			pos := 0
			if csv_err, ok := err.(*CSVError); ok {
				pos = csv_err.Line
			}
			return nil, &FormatError{Source: source, Pos: pos, Msg: "malformed csv row", Err: err}
		}
		if !_IsFinite(row.Lat) || !_IsFinite(row.Lon) {
			// header is line 1
			pos := points.Length() + 2
			return nil, &FormatError{Source: source, Pos: pos, Msg: "non-finite coordinate"}
		}
		points.Add(structs.NewWaypoint(_SanitizeLabel(row.Label, int64(points.Length())), row.Lat, row.Lon))
	}
	return structs.PointSet(points), nil
}
