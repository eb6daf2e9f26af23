package roster

import "sync"

// PendingStore holds at most one pending assignment per worker, in memory.
// Entries live until consumed by a reply; nothing expires and nothing
// survives a restart. Construct one per process and inject it wherever a
// pending assignment must be created or resolved.
type PendingStore struct {
	mu      sync.Mutex
	pending map[WorkerID]ShiftAssignment
}

func NewPendingStore() *PendingStore {
	return &PendingStore{pending: make(map[WorkerID]ShiftAssignment)}
}

// Put records a pending assignment for worker, overwriting any existing one.
// Last assignment wins.
func (s *PendingStore) Put(worker WorkerID, a ShiftAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[worker] = a
}

// Take returns the pending assignment for worker and removes it in the same
// step, so a reply can resolve an assignment exactly once. The second of two
// racing calls finds nothing.
func (s *PendingStore) Take(worker WorkerID) (ShiftAssignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.pending[worker]
	if ok {
		delete(s.pending, worker)
	}
	return a, ok
}

// Has reports whether worker currently has a pending assignment.
func (s *PendingStore) Has(worker WorkerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[worker]
	return ok
}
