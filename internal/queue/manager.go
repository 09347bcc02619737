package queue

import (
	"sync"
	"time"
)

// Manager owns every mutation of the store. Click is a read-modify-write,
// so the whole sequence runs under the manager mutex to keep concurrent
// button clicks from losing each other's update.
type Manager struct {
	store Store
	mu    sync.Mutex
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

// Create registers a new queue keyed by id, with the creating user already
// in the accept list.
func (m *Manager) Create(id, userID, roleID string, colour int, voiceChannelID string) (*Queue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.store.Get(id); err == nil {
		return nil, ErrExists
	}

	q := &Queue{
		ID:             id,
		RoleID:         roleID,
		RoleColour:     colour,
		VoiceChannelID: voiceChannelID,
		Accept:         []string{userID},
		Decline:        []string{},
		Tentative:      []string{},
		CreatedAt:      m.now(),
	}
	if err := m.store.Put(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Click applies one button press and returns the resulting state.
// Returns ErrNotFound when the queue was evicted (or never existed).
func (m *Manager) Click(id string, action Action, userID string) (*Queue, error) {
	if _, err := ParseAction(string(action)); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	q, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}

	next := Apply(*q, action, userID)
	next.LastUpdated = m.now()
	if err := m.store.Put(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Get returns the current state of a queue.
func (m *Manager) Get(id string) (*Queue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Get(id)
}

// Sweep drops every queue idle for longer than retention and reports how
// many were evicted. Best-effort: store errors abort the pass silently,
// the expired-click path covers anything a failed sweep leaves behind.
func (m *Manager) Sweep(retention time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	qs, err := m.store.List()
	if err != nil {
		return 0
	}

	cutoff := m.now().Add(-retention)
	evicted := 0
	for _, q := range qs {
		if q.IdleSince().Before(cutoff) {
			if err := m.store.Delete(q.ID); err == nil {
				evicted++
			}
		}
	}
	return evicted
}
