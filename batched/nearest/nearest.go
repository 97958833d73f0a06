package nearest

import (
	"errors"
)

var ErrInvalidDistance = errors.New("distance is NaN")

type ISolver interface {
	// Computes the nearest neighbour of every point with a single goroutine.
	ComputeSerial() error

	// Computes the nearest neighbour of every point using the given number of workers.
	//
	// A worker count below one performs no work.
	ComputeParallel(workers int) error

	// Returns the index of the nearest neighbour or -1 if the point has none.
	GetNeighbour(point int) int

	// Returns the distance to the nearest neighbour or +Inf if the point has none.
	GetDistance(point int) float64

	// Returns the smallest distance between any two points or +Inf for fewer than two points.
	GetGlobalMinimum() float64
}

// Snapshot of a finished computation.
type Result struct {
	Neighbours    []int     `json:"neighbours" msgpack:"neighbours"`
	Distances     []float64 `json:"distances" msgpack:"distances"`
	GlobalMinimum float64   `json:"global_minimum" msgpack:"global_minimum"`
	// Closest pair, (-1, -1) if there is none.
	Pair [2]int `json:"pair" msgpack:"pair"`
}

func (self Result) HasNeighbour(point int) bool {
	return self.Neighbours[point] >= 0
}

func (self Result) HasPair() bool {
	return self.Pair[0] >= 0
}
