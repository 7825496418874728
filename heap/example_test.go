package heap_test

import (
	"errors"
	"fmt"

	"github.com/davidvella/kway/heap"
	"github.com/davidvella/kway/item"
)

// ExampleNewOrdered demonstrates the heap as a plain min-heap of integers.
func ExampleNewOrdered() {
	h, _ := heap.NewOrdered[int](7)

	for _, v := range []int{2, 1, 3, 4, 2, 16, 4} {
		_ = h.Insert(v)
	}

	for !h.IsEmpty() {
		v, _ := h.Remove()
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 2 3 4 4 16
}

// ExampleHeap_Insert shows the error returned once the heap is full.
func ExampleHeap_Insert() {
	h, _ := heap.New[item.Item[string]](1, item.Less[string])

	fmt.Println(h.Insert(item.New("a", 0)))
	err := h.Insert(item.New("b", 1))
	fmt.Println(errors.Is(err, heap.ErrCapacityExceeded))

	// Output:
	// <nil>
	// true
}
