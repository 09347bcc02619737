package queue

import "sync"

// Store is the keyed persistence boundary for queue records. The in-memory
// implementation below and the pebble-backed one are interchangeable; the
// Manager only talks to this interface.
type Store interface {
	// Get returns the queue for id, or ErrNotFound.
	Get(id string) (*Queue, error)
	// Put inserts or replaces the record under q.ID.
	Put(q *Queue) error
	// Delete removes the record. Deleting a missing id is not an error.
	Delete(id string) error
	// List returns every stored queue, in no particular order.
	List() ([]*Queue, error)
}

// MemoryStore keeps queues in a map. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	queues map[string]*Queue
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{queues: make(map[string]*Queue)}
}

func (s *MemoryStore) Get(id string) (*Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.queues[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot(q), nil
}

func (s *MemoryStore) Put(q *Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[q.ID] = snapshot(q)
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queues, id)
	return nil
}

func (s *MemoryStore) List() ([]*Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Queue, 0, len(s.queues))
	for _, q := range s.queues {
		out = append(out, snapshot(q))
	}
	return out, nil
}
