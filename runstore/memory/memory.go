package memory

import (
	"context"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/davidvella/kway/runstore"
)

// Storage provides in-memory run storage.
type Storage struct {
	mu   sync.RWMutex
	runs map[runstore.RunID][]int64
	next runstore.RunID
}

func NewStorage() *Storage {
	return &Storage{
		runs: make(map[runstore.RunID][]int64),
	}
}

func (m *Storage) Put(_ context.Context, run []int64) (runstore.RunID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.next
	m.next++
	m.runs[id] = slices.Clone(run)
	return id, nil
}

func (m *Storage) Open(_ context.Context, id runstore.RunID) (iter.Seq2[int64, error], error) {
	m.mu.RLock()
	run, ok := m.runs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, runstore.ErrRunNotFound
	}

	return func(yield func(int64, error) bool) {
		for _, v := range run {
			if !yield(v, nil) {
				return
			}
		}
	}, nil
}

func (m *Storage) Runs(_ context.Context) ([]runstore.RunID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.runs)), nil
}

func (m *Storage) Delete(_ context.Context, id runstore.RunID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.runs[id]; !ok {
		return runstore.ErrRunNotFound
	}
	delete(m.runs, id)
	return nil
}

func (m *Storage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.runs)
	return nil
}
