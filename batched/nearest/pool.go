package nearest

import (
	"sync/atomic"
)

//*******************************************
// work pool
//*******************************************

// Hands out every integer in [0, last] exactly once, in ascending order, to concurrent callers.
type WorkPool struct {
	next atomic.Int64
	last int64
}

func NewWorkPool(last int) *WorkPool {
	return &WorkPool{last: int64(last)}
}

// Returns the next undispensed index, or (-1, false) once the pool is exhausted.
func (self *WorkPool) Dispense() (int, bool) {
	if self.next.Load() > self.last {
		return -1, false
	}
	// the counter may run past last+1 under contention, those callers get nothing
	idx := self.next.Add(1) - 1
	if idx > self.last {
		return -1, false
	}
	return int(idx), true
}
