// Package heap implements a fixed-capacity, array-backed binary min-heap.
//
// The heap owns exactly one storage allocation, sized at construction. It never
// grows: Insert on a full heap fails with ErrCapacityExceeded and leaves the heap
// untouched, and Remove or Peek on an empty heap fail with ErrEmptyQueue. Ordering
// is supplied by the caller as a less function, so any element type can be stored;
// NewOrdered covers the common case of cmp.Ordered elements.
//
// Key features:
//   - O(log n) Insert and Remove
//   - O(1) Peek, IsEmpty, IsFull, Len and Cap
//   - IsHeap verifies the heap property, for tests and diagnostics
//
// Basic usage:
//
//	h, err := heap.NewOrdered[int](4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, v := range []int{5, 2, 8} {
//	    if err := h.Insert(v); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	for !h.IsEmpty() {
//	    v, _ := h.Remove()
//	    fmt.Println(v) // 2, 5, 8
//	}
//
// The heap is not a stable priority queue: elements that compare equal may be
// removed in any order. It is not safe for concurrent use.
package heap
