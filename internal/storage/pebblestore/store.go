// Package pebblestore implements queue.Store on top of a local Pebble
// database. Records are JSON-encoded queue.Queue values under the queue id.
package pebblestore

import (
	"encoding/json"
	"errors"

	"github.com/cockroachdb/pebble"

	"github.com/jvalero/roleq/internal/queue"
)

// Store wraps a Pebble database instance.
type Store struct {
	db *pebble.DB
}

// Open creates or opens the database at dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("pebblestore: dir is required")
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Get(id string) (*queue.Queue, error) {
	val, closer, err := s.db.Get([]byte(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, queue.ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	var q queue.Queue
	if err := json.Unmarshal(val, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *Store) Put(q *queue.Queue) error {
	b, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return s.db.Set([]byte(q.ID), b, pebble.Sync)
}

func (s *Store) Delete(id string) error {
	return s.db.Delete([]byte(id), pebble.Sync)
}

func (s *Store) List() ([]*queue.Queue, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []*queue.Queue
	for iter.First(); iter.Valid(); iter.Next() {
		var q queue.Queue
		if err := json.Unmarshal(iter.Value(), &q); err != nil {
			// skip records we can't decode
			continue
		}
		out = append(out, &q)
	}
	return out, iter.Error()
}
