package nearest

import (
	"math"
	"sync"
)

//*******************************************
// global minimum
//*******************************************

// Running minimum over all pairs, shared by every worker of a run.
type GlobalMinimum struct {
	mu    sync.Mutex
	value float64
	a     int
	b     int
}

func NewGlobalMinimum() *GlobalMinimum {
	return &GlobalMinimum{value: math.Inf(1), a: -1, b: -1}
}

// Replaces the minimum if dist is smaller. Ties keep the lexicographically smaller pair.
func (self *GlobalMinimum) Offer(dist float64, i, j int) {
	if j < i {
		i, j = j, i
	}
	self.mu.Lock()
	if dist < self.value || (dist == self.value && (i < self.a || (i == self.a && j < self.b))) {
		self.value = dist
		self.a = i
		self.b = j
	}
	self.mu.Unlock()
}

func (self *GlobalMinimum) Value() float64 {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.value
}

func (self *GlobalMinimum) Pair() (int, int, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.a, self.b, self.a >= 0
}
