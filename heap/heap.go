package heap

import (
	"cmp"
	"errors"
	"iter"
)

var (
	ErrInvalidCapacity  = errors.New("heap: capacity must be greater than 0")
	ErrNilLess          = errors.New("heap: less function must not be nil")
	ErrCapacityExceeded = errors.New("heap: capacity exceeded")
	ErrEmptyQueue       = errors.New("heap: queue is empty")
)

// Heap is a bounded binary min-heap. Slots [0, size) of items are occupied.
type Heap[E any] struct {
	items []E
	size  int
	lessF func(a, b E) bool // returns true if a orders before b
}

// New creates an empty heap holding at most capacity elements.
func New[E any](capacity int, less func(a, b E) bool) (*Heap[E], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if less == nil {
		return nil, ErrNilLess
	}
	return &Heap[E]{
		items: make([]E, capacity),
		lessF: less,
	}, nil
}

// NewOrdered creates an empty heap of ordered elements using the < operator.
func NewOrdered[E cmp.Ordered](capacity int) (*Heap[E], error) {
	return New[E](capacity, cmp.Less[E])
}

// Len returns the number of elements in the heap.
func (h *Heap[E]) Len() int {
	return h.size
}

// Cap returns the fixed capacity of the heap.
func (h *Heap[E]) Cap() int {
	return len(h.items)
}

func (h *Heap[E]) IsEmpty() bool {
	return h.size == 0
}

func (h *Heap[E]) IsFull() bool {
	return h.size == len(h.items)
}

// Insert adds e to the heap.
func (h *Heap[E]) Insert(e E) error {
	if h.IsFull() {
		return ErrCapacityExceeded
	}
	h.items[h.size] = e
	h.size++
	h.up(h.size - 1)
	return nil
}

// Remove removes and returns the minimum element.
func (h *Heap[E]) Remove() (E, error) {
	var zero E
	if h.IsEmpty() {
		return zero, ErrEmptyQueue
	}

	top := h.items[0]
	last := h.size - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.size = last
	h.down(0)
	return top, nil
}

// Peek returns the minimum element without removing it.
func (h *Heap[E]) Peek() (E, error) {
	if h.IsEmpty() {
		var zero E
		return zero, ErrEmptyQueue
	}
	return h.items[0], nil
}

// IsHeap reports whether every occupied node orders no later than its children.
func (h *Heap[E]) IsHeap() bool {
	for i := 0; i < h.size; i++ {
		if l := left(i); l < h.size && h.less(l, i) {
			return false
		}
		if r := right(i); r < h.size && h.less(r, i) {
			return false
		}
	}
	return true
}

// All yields the occupied slots in storage order, which is not sorted order.
func (h *Heap[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < h.size; i++ {
			if !yield(h.items[i]) {
				return
			}
		}
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// swap swaps items at index i and j.
func (h *Heap[E]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// less compares items at index i and j.
func (h *Heap[E]) less(i, j int) bool {
	return h.lessF(h.items[i], h.items[j])
}

// up moves the element at index i towards the root while it is strictly
// smaller than its parent.
func (h *Heap[E]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// down moves the element at index i towards the leaves while its smaller child
// is strictly smaller than it. Ties between children go to the left child.
func (h *Heap[E]) down(i int) {
	for {
		l := left(i)
		if l >= h.size {
			break
		}

		smallest := l
		if r := right(i); r < h.size && h.less(r, l) {
			smallest = r
		}

		if !h.less(smallest, i) {
			break
		}

		h.swap(i, smallest)
		i = smallest
	}
}
