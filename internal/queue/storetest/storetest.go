// Package storetest holds the behavioral suite every queue.Store
// implementation has to pass, so the in-memory and pebble-backed stores
// stay interchangeable.
package storetest

import (
	"errors"
	"testing"
	"time"

	"github.com/jvalero/roleq/internal/queue"
)

// Run exercises the Store contract against store.
func Run(t *testing.T, store queue.Store) {
	t.Helper()

	if _, err := store.Get("missing"); !errors.Is(err, queue.ErrNotFound) {
		t.Fatalf("Get(missing): want ErrNotFound, got %v", err)
	}

	q := &queue.Queue{
		ID:         "1234567890123456789",
		RoleID:     "2234567890123456789",
		RoleColour: 0x5865F2,
		Accept:     []string{"a", "b"},
		Decline:    []string{},
		Tentative:  []string{"c"},
		CreatedAt:  time.Unix(1700000000, 0).UTC(),
	}
	if err := store.Put(q); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(q.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RoleID != q.RoleID || got.RoleColour != q.RoleColour {
		t.Fatalf("metadata lost: %+v", got)
	}
	if len(got.Accept) != 2 || got.Accept[0] != "a" || got.Accept[1] != "b" {
		t.Fatalf("accept order lost: %v", got.Accept)
	}
	if !got.CreatedAt.Equal(q.CreatedAt) {
		t.Fatalf("CreatedAt mismatch: %v != %v", got.CreatedAt, q.CreatedAt)
	}

	// mutating the returned copy must not leak back into the store
	got.Accept[0] = "zzz"
	again, _ := store.Get(q.ID)
	if again.Accept[0] != "a" {
		t.Fatal("store shares state with callers")
	}

	qs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 || qs[0].ID != q.ID {
		t.Fatalf("unexpected list: %+v", qs)
	}

	if err := store.Delete(q.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(q.ID); !errors.Is(err, queue.ErrNotFound) {
		t.Fatalf("Get after Delete: want ErrNotFound, got %v", err)
	}
	// deleting twice is not an error
	if err := store.Delete(q.ID); err != nil {
		t.Fatalf("double delete: %v", err)
	}
}
