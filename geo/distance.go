package geo

import (
	"encoding/json"
	"errors"
	"math"

	orbgeo "github.com/paulmach/orb/geo"
	"gopkg.in/yaml.v3"
)

// radius of the Earth in statute miles
const EARTH_RADIUS_MILES = 3963.1

type DistanceFunc func(a, b Coord) float64

// Great-circle distance in statute miles using the spherical law of cosines.
func CosinesDistance(a, b Coord) float64 {
	if a == b {
		return 0
	}
	x1, y1, z1 := _UnitVector(a)
	x2, y2, z2 := _UnitVector(b)
	cos := x1*x2 + y1*y2 + z1*z2
	// rounding may push the argument slightly outside of acos' domain
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * EARTH_RADIUS_MILES
}

func _UnitVector(c Coord) (float64, float64, float64) {
	rlat := c.Lat() * math.Pi / 180
	rlng := c.Lon() * math.Pi / 180
	return math.Cos(rlat) * math.Cos(rlng), math.Cos(rlat) * math.Sin(rlng), math.Sin(rlat)
}

// Great-circle distance in meters using the haversine formula.
func HaversineDistance(a, b Coord) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point())
}

// Equirectangular approximation of the great-circle distance in meters, accurate for short distances.
func ApproxDistance(a, b Coord) float64 {
	return orbgeo.Distance(a.Point(), b.Point())
}

//**********************************************************
// metric enum
//**********************************************************

type Metric byte

const (
	COSINES   Metric = 0
	HAVERSINE Metric = 1
	APPROX    Metric = 2
)

func (self Metric) String() string {
	switch self {
	case COSINES:
		return "cosines"
	case HAVERSINE:
		return "haversine"
	case APPROX:
		return "approx"
	default:
		panic("unknown distance metric")
	}
}

// Unit of the distances returned by the metric.
func (self Metric) Unit() string {
	if self == COSINES {
		return "mi"
	}
	return "m"
}

func (self Metric) Func() DistanceFunc {
	switch self {
	case HAVERSINE:
		return HaversineDistance
	case APPROX:
		return ApproxDistance
	default:
		return CosinesDistance
	}
}

func (self Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Metric) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = MetricFromString(typ)
	return err
}
func (self Metric) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *Metric) UnmarshalYAML(value *yaml.Node) error {
	typ, err := MetricFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func MetricFromString(s string) (Metric, error) {
	switch s {
	case "cosines", "":
		return COSINES, nil
	case "haversine":
		return HAVERSINE, nil
	case "approx":
		return APPROX, nil
	default:
		return COSINES, errors.New("unknown distance metric " + s)
	}
}
