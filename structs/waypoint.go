package structs

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/ttpr0/go-closest/geo"
)

//*******************************************
// waypoint
//*******************************************

// Labeled location. Labels need not be unique, a waypoint is identified by its index in a PointSet.
type Waypoint struct {
	Label string  `json:"label" msgpack:"label"`
	Lat   float64 `json:"lat" msgpack:"lat"`
	Lon   float64 `json:"lon" msgpack:"lon"`
}

func NewWaypoint(label string, lat, lon float64) Waypoint {
	return Waypoint{Label: label, Lat: lat, Lon: lon}
}

func (self Waypoint) Coord() geo.Coord {
	return geo.NewCoord(self.Lat, self.Lon)
}

func (self Waypoint) String() string {
	return self.Label + " (" + formatFloat(self.Lat) + "," + formatFloat(self.Lon) + ")"
}

// Line in METAL .nmp format.
func (self Waypoint) NMPString() string {
	return self.Label + " " + formatFloat(self.Lat) + " " + formatFloat(self.Lon)
}

// Line in METAL .wpt format.
func (self Waypoint) WPTString() string {
	return self.Label + "  http://www.openstreetmap.org/?lat=" + formatFloat(self.Lat) + "&lon=" + formatFloat(self.Lon)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

//*******************************************
// point set
//*******************************************

// Ordered waypoints, never mutated after loading.
type PointSet []Waypoint

func (self PointSet) Length() int {
	return len(self)
}

func (self PointSet) Get(index int) Waypoint {
	return self[index]
}

func (self PointSet) Coord(index int) geo.Coord {
	return self[index].Coord()
}

func (self PointSet) Coords() []geo.Coord {
	coords := make([]geo.Coord, len(self))
	for i, p := range self {
		coords[i] = p.Coord()
	}
	return coords
}

// Hash over labels and coordinates in index order.
func (self PointSet) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, p := range self {
		h.WriteString(p.Label)
		h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Lat))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Lon))
		h.Write(buf[:])
	}
	return h.Sum64()
}
