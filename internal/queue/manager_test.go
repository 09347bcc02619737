package queue

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCreateSeedsInvoker(t *testing.T) {
	m := NewManager(NewMemoryStore())

	q, err := m.Create("q1", "owner", "role1", 0xFF0000, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Accept) != 1 || q.Accept[0] != "owner" {
		t.Fatalf("invoker not pre-seeded: %+v", q)
	}
	if q.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}

	if _, err := m.Create("q1", "other", "role1", 0, ""); !errors.Is(err, ErrExists) {
		t.Fatalf("want ErrExists, got %v", err)
	}
}

func TestClickUnknownQueue(t *testing.T) {
	m := NewManager(NewMemoryStore())
	if _, err := m.Click("nope", ActionAccept, "u"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	// the miss must not create anything
	if _, err := m.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("click created a queue: %v", err)
	}
}

func TestClickRefreshesLastUpdated(t *testing.T) {
	m := NewManager(NewMemoryStore())
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	if _, err := m.Create("q1", "owner", "r", 0, ""); err != nil {
		t.Fatal(err)
	}

	now = now.Add(10 * time.Minute)
	q, err := m.Click("q1", ActionDecline, "owner")
	if err != nil {
		t.Fatal(err)
	}
	if !q.LastUpdated.Equal(now) {
		t.Fatalf("LastUpdated not refreshed: %v", q.LastUpdated)
	}
}

func TestSweepEvictsIdleQueues(t *testing.T) {
	m := NewManager(NewMemoryStore())
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	_, _ = m.Create("old", "a", "r", 0, "")
	now = now.Add(30 * time.Minute)
	_, _ = m.Create("fresh", "b", "r", 0, "")

	// a click keeps a queue alive past its creation time
	now = now.Add(45 * time.Minute)
	if _, err := m.Click("fresh", ActionTentative, "c"); err != nil {
		t.Fatal(err)
	}

	now = now.Add(30 * time.Minute)
	if n := m.Sweep(time.Hour); n != 1 {
		t.Fatalf("want 1 eviction, got %d", n)
	}
	if _, err := m.Get("old"); !errors.Is(err, ErrNotFound) {
		t.Fatal("old queue survived the sweep")
	}
	if _, err := m.Get("fresh"); err != nil {
		t.Fatalf("fresh queue evicted: %v", err)
	}

	// clicks against the evicted queue take the not-found path
	if _, err := m.Click("old", ActionAccept, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestConcurrentClicksLoseNothing(t *testing.T) {
	m := NewManager(NewMemoryStore())
	if _, err := m.Create("q1", "owner", "r", 0, ""); err != nil {
		t.Fatal(err)
	}

	const users = 64
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = m.Click("q1", ActionAccept, fmt.Sprintf("u%02d", n))
		}(i)
	}
	wg.Wait()

	q, err := m.Get("q1")
	if err != nil {
		t.Fatal(err)
	}
	// owner plus every clicker
	if len(q.Accept) != users+1 {
		t.Fatalf("lost updates: %d/%d in accept", len(q.Accept), users+1)
	}
	invariant(t, *q)
}

func TestConcurrentRandomClicksHoldInvariant(t *testing.T) {
	m := NewManager(NewMemoryStore())
	if _, err := m.Create("q1", "owner", "r", 0, ""); err != nil {
		t.Fatal(err)
	}

	actions := []Action{ActionAccept, ActionDecline, ActionTentative}
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(gid int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				id := string(rune('A' + (gid+j)%26))
				_, _ = m.Click("q1", actions[j%3], id)
			}
		}(g)
	}
	wg.Wait()

	q, err := m.Get("q1")
	if err != nil {
		t.Fatal(err)
	}
	invariant(t, *q)
}
