// Package item defines the orderable element that flows through the bounded heap
// and the k-way merge.
//
// An Item pairs an ordered value with a provenance tag, Source. The tag is plain
// caller metadata: the heap never reads it, and two items with equal values compare
// equal regardless of where they came from. The merge package uses Source to know
// which input sequence to refill from after an item is extracted.
//
// Basic usage:
//
//	a := item.New(3, 0)
//	b := item.New(1, 2)
//
//	if b.Less(a) {
//	    fmt.Println(b) // 1
//	}
package item
