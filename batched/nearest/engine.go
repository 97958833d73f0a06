package nearest

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/ttpr0/go-closest/geo"
	"github.com/ttpr0/go-closest/structs"
	. "github.com/ttpr0/go-closest/util"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

//*******************************************
// engine
//*******************************************

type Stats struct {
	Workers int
	// Number of indices claimed by each worker.
	Processed []int
	Elapsed   time.Duration
}

// All-pairs nearest neighbour search over a fixed point set.
//
// Compute calls must not overlap. Accessors are safe to use once a compute call returned.
// A failed compute call leaves the engine in its reset state.
type Engine struct {
	coords     Array[geo.Coord]
	dist       geo.DistanceFunc
	neighbours Array[int]
	distances  Array[float64]
	minimum    *GlobalMinimum
	abort      atomic.Bool
	stats      Stats
}

var _ ISolver = (*Engine)(nil)

func NewEngine(points structs.PointSet, dist geo.DistanceFunc) *Engine {
	engine := &Engine{
		coords:     Array[geo.Coord](points.Coords()),
		dist:       dist,
		neighbours: NewArray[int](points.Length()),
		distances:  NewArray[float64](points.Length()),
	}
	engine.reset()
	return engine
}

func (self *Engine) reset() {
	self.neighbours.Fill(-1)
	self.distances.Fill(math.Inf(1))
	self.minimum = NewGlobalMinimum()
	self.abort.Store(false)
	self.stats = Stats{}
}

func (self *Engine) NumPoints() int {
	return self.coords.Length()
}

func (self *Engine) ComputeSerial() error {
	self.reset()
	start := time.Now()
	for i := 0; i < self.coords.Length(); i++ {
		j, d, err := self.scan(i)
		if err != nil {
			self.reset()
			return err
		}
		if j < 0 {
			continue
		}
		self.neighbours.Set(i, j)
		self.distances.Set(i, d)
		self.minimum.Offer(d, i, j)
	}
	self.stats = Stats{Workers: 1, Processed: []int{self.coords.Length()}, Elapsed: time.Since(start)}
	slog.Debug("serial computation finished", "points", self.coords.Length(), "elapsed", self.stats.Elapsed)
	return nil
}

func (self *Engine) ComputeParallel(workers int) error {
	self.reset()
	if workers <= 0 {
		slog.Warn(fmt.Sprintf("invalid worker count %d, nothing computed", workers))
		return nil
	}
	start := time.Now()
	pool := NewWorkPool(self.coords.Length() - 1)

	group := errgroup.Group{}
	spawned := make([]*worker, workers)
	for w := 0; w < workers; w++ {
		spawned[w] = &worker{id: w, engine: self, pool: pool}
		group.Go(spawned[w].run)
	}
	err := group.Wait()

	processed := make([]int, workers)
	for w, wk := range spawned {
		processed[w] = wk.processed
		slog.Debug("worker finished", "worker", wk.id, "processed", wk.processed)
	}
	if err != nil {
		// slots filled before the abort are not a valid result
		self.reset()
	}
	self.stats = Stats{Workers: workers, Processed: processed, Elapsed: time.Since(start)}
	return err
}

// Finds the nearest other point of i, ties resolve to the lowest index.
// Returns -1 if there is no other point.
func (self *Engine) scan(i int) (int, float64, error) {
	best := -1
	best_dist := math.Inf(1)
	from := self.coords.Get(i)
	for j, to := range self.coords {
		if j == i {
			continue
		}
		d := self.dist(from, to)
		if math.IsNaN(d) {
			return -1, 0, fmt.Errorf("%w: points %d and %d", ErrInvalidDistance, i, j)
		}
		if best < 0 || d < best_dist {
			best = j
			best_dist = d
		}
	}
	return best, best_dist, nil
}

func (self *Engine) GetNeighbour(point int) int {
	return self.neighbours.Get(point)
}

func (self *Engine) GetDistance(point int) float64 {
	return self.distances.Get(point)
}

func (self *Engine) GetGlobalMinimum() float64 {
	return self.minimum.Value()
}

// Returns the closest pair of points (lower index first).
func (self *Engine) GetClosestPair() (int, int, bool) {
	return self.minimum.Pair()
}

func (self *Engine) Stats() Stats {
	return self.stats
}

func (self *Engine) Result() Result {
	neighbours := make([]int, self.neighbours.Length())
	copy(neighbours, self.neighbours)
	distances := make([]float64, self.distances.Length())
	copy(distances, self.distances)
	a, b, _ := self.minimum.Pair()
	return Result{
		Neighbours:    neighbours,
		Distances:     distances,
		GlobalMinimum: self.minimum.Value(),
		Pair:          [2]int{a, b},
	}
}
