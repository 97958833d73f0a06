package geo

import (
	"github.com/paulmach/orb"
)

//**********************************************************
// coord
//**********************************************************

// Longitude/latitude pair in degrees.
type Coord [2]float64

func NewCoord(lat, lon float64) Coord {
	return Coord{lon, lat}
}

func (self Coord) Lon() float64 {
	return self[0]
}

func (self Coord) Lat() float64 {
	return self[1]
}

func (self Coord) Point() orb.Point {
	return orb.Point{self[0], self[1]}
}

func LineBetween(a, b Coord) orb.LineString {
	return orb.LineString{a.Point(), b.Point()}
}
