package merge

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/davidvella/kway/heap"
	"github.com/davidvella/kway/item"
)

// Stream lazily merges sorted sources. Each yielded item carries the index of its
// source. If a source produces a value smaller than its previous one, Stream yields
// an error wrapping ErrMalformedInput and stops.
func Stream[V cmp.Ordered](sources ...iter.Seq[V]) iter.Seq2[item.Item[V], error] {
	return func(yield func(item.Item[V], error) bool) {
		if len(sources) == 0 {
			return
		}

		h, err := heap.New[item.Item[V]](len(sources), item.Less[V])
		if err != nil {
			yield(item.Item[V]{}, fmt.Errorf("merge: failed to create heap: %w", err))
			return
		}

		p := &puller[V]{
			heap:  h,
			next:  make([]func() (V, bool), len(sources)),
			last:  make([]V, len(sources)),
			began: make([]bool, len(sources)),
		}
		for i, src := range sources {
			next, stop := iter.Pull(src)
			//nolint:gocritic // is not a leak.
			defer stop()
			p.next[i] = next
		}

		for s := range sources {
			if err := p.pull(s); err != nil {
				yield(item.Item[V]{}, err)
				return
			}
		}

		for !h.IsEmpty() {
			smallest, err := h.Remove()
			if err != nil {
				yield(item.Item[V]{}, fmt.Errorf("merge: %w", err))
				return
			}
			if !yield(smallest, nil) {
				return
			}
			if err := p.pull(smallest.Source); err != nil {
				yield(item.Item[V]{}, err)
				return
			}
		}
	}
}

type puller[V cmp.Ordered] struct {
	heap  *heap.Heap[item.Item[V]]
	next  []func() (V, bool)
	last  []V
	began []bool
}

// pull moves the next value of source s into the heap. An exhausted source is a no-op.
func (p *puller[V]) pull(s int) error {
	v, ok := p.next[s]()
	if !ok {
		return nil
	}
	if p.began[s] && cmp.Less(v, p.last[s]) {
		return fmt.Errorf("merge: source %d: %v after %v: %w", s, v, p.last[s], ErrMalformedInput)
	}
	p.last[s], p.began[s] = v, true

	if err := p.heap.Insert(item.New(v, s)); err != nil {
		return fmt.Errorf("merge: refill from source %d: %w", s, err)
	}
	return nil
}
