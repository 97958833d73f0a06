package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-closest/batched/nearest"
	"github.com/ttpr0/go-closest/geo"
	"github.com/ttpr0/go-closest/structs"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/exp/slog"
)

// Returned when results could not be written. The computed result is unaffected.
type IOError struct {
	Path string
	Err  error
}

func (self *IOError) Error() string {
	return fmt.Sprintf("failed to write results to %s: %v", self.Path, self.Err)
}

func (self *IOError) Unwrap() error {
	return self.Err
}

func WriteFile(path string, format Format, points structs.PointSet, result nearest.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	writer := bufio.NewWriter(file)
	err = Write(writer, format, points, result)
	if err == nil {
		err = writer.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	slog.Info(fmt.Sprintf("Wrote %s results to %s", format, path))
	return nil
}

func Write(w io.Writer, format Format, points structs.PointSet, result nearest.Result) error {
	switch format {
	case GEOJSON:
		return WriteGeoJSON(w, points, result)
	case MSGPACK:
		return WriteMsgpack(w, points, result)
	default:
		return WriteNMP(w, points, result)
	}
}

//*******************************************
// nmp
//*******************************************

// Writes every point followed by its nearest neighbour, one waypoint per line.
// Points without a neighbour are skipped.
func WriteNMP(w io.Writer, points structs.PointSet, result nearest.Result) error {
	for i, p := range points {
		if !result.HasNeighbour(i) {
			continue
		}
		q := points.Get(result.Neighbours[i])
		if _, err := io.WriteString(w, p.NMPString()+"\n"+q.NMPString()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

//*******************************************
// geojson
//*******************************************

func BuildFeatureCollection(points structs.PointSet, result nearest.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, p := range points {
		if !result.HasNeighbour(i) {
			feature := geojson.NewFeature(p.Coord().Point())
			feature.Properties["label"] = p.Label
			fc.Append(feature)
			continue
		}
		j := result.Neighbours[i]
		q := points.Get(j)
		feature := geojson.NewFeature(geo.LineBetween(p.Coord(), q.Coord()))
		feature.Properties["label"] = p.Label
		feature.Properties["neighbour"] = q.Label
		feature.Properties["index"] = i
		feature.Properties["neighbour_index"] = j
		feature.Properties["distance"] = result.Distances[i]
		if result.HasPair() && ((result.Pair[0] == i && result.Pair[1] == j) || (result.Pair[0] == j && result.Pair[1] == i)) {
			feature.Properties["closest_pair"] = true
		}
		fc.Append(feature)
	}
	return fc
}

func WriteGeoJSON(w io.Writer, points structs.PointSet, result nearest.Result) error {
	data, err := BuildFeatureCollection(points, result).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

//*******************************************
// msgpack
//*******************************************

type Record struct {
	Points structs.PointSet `msgpack:"points"`
	nearest.Result
}

func WriteMsgpack(w io.Writer, points structs.PointSet, result nearest.Result) error {
	return msgpack.NewEncoder(w).Encode(Record{Points: points, Result: result})
}

func ReadMsgpack(r io.Reader) (Record, error) {
	var record Record
	err := msgpack.NewDecoder(r).Decode(&record)
	return record, err
}
