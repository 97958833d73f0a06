package nearest

//*******************************************
// worker
//*******************************************

// Drains the pool, every claimed index owns its result slot.
type worker struct {
	id        int
	engine    *Engine
	pool      *WorkPool
	processed int
}

func (self *worker) run() error {
	e := self.engine
	for !e.abort.Load() {
		i, ok := self.pool.Dispense()
		if !ok {
			break
		}
		j, d, err := e.scan(i)
		if err != nil {
			e.abort.Store(true)
			return err
		}
		self.processed += 1
		if j < 0 {
			continue
		}
		e.neighbours.Set(i, j)
		e.distances.Set(i, d)
		e.minimum.Offer(d, i, j)
	}
	return nil
}
