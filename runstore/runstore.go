// Package runstore defines where an external sort keeps its sorted runs.
//
// Implementations live in the memory, local and pebble subpackages. A run is an
// immutable sequence of int64 values; stores preserve its order exactly and never
// sort it themselves.
package runstore

import (
	"context"
	"errors"
	"iter"
)

var ErrRunNotFound = errors.New("runstore: run not found")

// RunID identifies a stored run. IDs are assigned in increasing order by Put.
type RunID uint64

// Store persists sorted runs.
type Store interface {
	// Put stores run and returns its ID.
	Put(ctx context.Context, run []int64) (RunID, error)
	// Open returns an iterator over the values of run id, in the order they were put.
	Open(ctx context.Context, id RunID) (iter.Seq2[int64, error], error)
	// Runs lists stored runs in ascending ID order.
	Runs(ctx context.Context) ([]RunID, error)
	// Delete removes run id.
	Delete(ctx context.Context, id RunID) error
	Close() error
}
