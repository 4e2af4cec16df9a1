package service

import "sync"

// unitLocks serializes check-then-insert per unit id. Between the availability
// read and the booking insert another Book call for the same unit could
// otherwise slip in and double-book; the storage exclusion constraint remains
// the backstop across processes.
type unitLocks struct {
	locks sync.Map // unit id -> *sync.Mutex
}

func (l *unitLocks) lock(unitID string) (unlock func()) {
	v, _ := l.locks.LoadOrStore(unitID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
