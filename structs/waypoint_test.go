package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaypointFormats(t *testing.T) {
	w := NewWaypoint("NY5@I-87", 42.75, -73.8)

	assert.Equal(t, "NY5@I-87 (42.75,-73.8)", w.String())
	assert.Equal(t, "NY5@I-87 42.75 -73.8", w.NMPString())
	assert.Equal(t, "NY5@I-87  http://www.openstreetmap.org/?lat=42.75&lon=-73.8", w.WPTString())
	assert.Equal(t, 42.75, w.Coord().Lat())
	assert.Equal(t, -73.8, w.Coord().Lon())
}

func TestFingerprint(t *testing.T) {
	a := PointSet{NewWaypoint("A", 0, 0), NewWaypoint("B", 0, 1)}
	b := PointSet{NewWaypoint("A", 0, 0), NewWaypoint("B", 0, 1)}
	swapped := PointSet{NewWaypoint("B", 0, 1), NewWaypoint("A", 0, 0)}
	moved := PointSet{NewWaypoint("A", 0, 0), NewWaypoint("B", 0, 1.5)}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), swapped.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), moved.Fingerprint())
	assert.NotEqual(t, PointSet{}.Fingerprint(), a.Fingerprint())
}
