package merge

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/davidvella/kway/heap"
	"github.com/davidvella/kway/item"
	"github.com/davidvella/kway/monitoring"
)

var (
	ErrMalformedInput = errors.New("merge: input sequence is not sorted")
	ErrIncomplete     = errors.New("merge: input not fully consumed")
)

// Merge merges sorted sequences into one sorted sequence containing every item of
// every input. The Source of each output item is set to the index of the sequence
// it was drawn from.
func Merge[V cmp.Ordered](sequences [][]item.Item[V], opts ...Option) ([]item.Item[V], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.validate {
		if err := validate(sequences); err != nil {
			return nil, err
		}
	}

	m, err := newMerger(sequences)
	if err != nil {
		return nil, err
	}
	out, err := m.run()
	if err != nil {
		return nil, err
	}

	o.logger.Log(context.Background(), monitoring.DEBUG, "merge_complete", "merged sorted sequences", map[string]any{
		"sequences": len(sequences),
		"items":     len(out),
	})
	return out, nil
}

// Values merges sorted sequences of plain values.
func Values[V cmp.Ordered](sequences [][]V, opts ...Option) ([]V, error) {
	wrapped := make([][]item.Item[V], len(sequences))
	for i, seq := range sequences {
		wrapped[i] = item.Wrap(i, seq...)
	}

	out, err := Merge(wrapped, opts...)
	if err != nil {
		return nil, err
	}
	return item.Unwrap(out), nil
}

func validate[V cmp.Ordered](sequences [][]item.Item[V]) error {
	for s, seq := range sequences {
		for i := 1; i < len(seq); i++ {
			if seq[i].Less(seq[i-1]) {
				return fmt.Errorf("merge: sequence %d position %d: %w", s, i, ErrMalformedInput)
			}
		}
	}
	return nil
}

// merger holds the state of a single merge: the heap and one cursor per sequence
// pointing at its next unconsumed item.
type merger[V cmp.Ordered] struct {
	sequences [][]item.Item[V]
	cursors   []int
	heap      *heap.Heap[item.Item[V]]
	total     int
}

func newMerger[V cmp.Ordered](sequences [][]item.Item[V]) (*merger[V], error) {
	// A heap needs a positive capacity even when there is nothing to merge.
	h, err := heap.New[item.Item[V]](max(len(sequences), 1), item.Less[V])
	if err != nil {
		return nil, fmt.Errorf("merge: failed to create heap: %w", err)
	}

	total := 0
	for _, seq := range sequences {
		total += len(seq)
	}

	return &merger[V]{
		sequences: sequences,
		cursors:   make([]int, len(sequences)),
		heap:      h,
		total:     total,
	}, nil
}

func (m *merger[V]) run() ([]item.Item[V], error) {
	out := make([]item.Item[V], 0, m.total)

	for s := range m.sequences {
		if m.remaining(s) {
			if err := m.advance(s); err != nil {
				return nil, err
			}
		}
	}

	for !m.heap.IsEmpty() {
		smallest, err := m.heap.Remove()
		if err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
		out = append(out, smallest)

		next := smallest.Source
		if !m.remaining(next) {
			next = m.firstRemaining()
		}
		if next < 0 {
			continue
		}
		if err := m.advance(next); err != nil {
			return nil, err
		}
	}

	for s, seq := range m.sequences {
		if m.cursors[s] != len(seq) {
			return nil, fmt.Errorf("merge: sequence %d stopped at %d of %d: %w", s, m.cursors[s], len(seq), ErrIncomplete)
		}
	}
	return out, nil
}

// advance moves the item under sequence s's cursor into the heap.
func (m *merger[V]) advance(s int) error {
	it := m.sequences[s][m.cursors[s]]
	it.Source = s
	if err := m.heap.Insert(it); err != nil {
		return fmt.Errorf("merge: refill from sequence %d: %w", s, err)
	}
	m.cursors[s]++
	return nil
}

func (m *merger[V]) remaining(s int) bool {
	return m.cursors[s] < len(m.sequences[s])
}

// firstRemaining returns the lowest index of a sequence with unconsumed items, or -1.
func (m *merger[V]) firstRemaining() int {
	for s := range m.sequences {
		if m.remaining(s) {
			return s
		}
	}
	return -1
}
