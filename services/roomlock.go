package services

import "sync"

// roomLocks hands out one mutex per room id so check-then-book sequences on
// the same room are serialized within this process. Availability checks are
// racy on their own; holding the room's lock across check+write is what
// guarantees at most one blocking booking per overlapping interval.
// (Cross-replica locking is out of scope; the service runs as one instance.)
type roomLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[uint]*sync.Mutex)}
}

func (r *roomLocks) lock(roomID uint) *sync.Mutex {
	r.mu.Lock()
	m, ok := r.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[roomID] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m
}
