// Package merge implements k-way merging of individually sorted sequences on top of
// the bounded heap.
//
// Merge seeds a heap of capacity k with the head of every non-empty sequence, then
// repeatedly extracts the minimum, emits it, and refills from the sequence the
// extracted item came from. When that sequence is exhausted the heap is refilled from
// the lowest-indexed sequence that still has input, so sequences of unequal length,
// including empty ones, are consumed completely. The whole merge costs O(N log k).
//
// Basic usage:
//
//	merged, err := merge.Values([][]int{
//	    {0, 1, 2},
//	    {0, 2, 4},
//	    {0, 3, 6},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(merged) // [0 0 0 1 2 2 3 4 6]
//
// Input sequences must be sorted ascending. By default Merge checks this before
// merging and returns an error wrapping ErrMalformedInput naming the first offending
// position. WithValidation(false) skips the check; the result is then only as
// ordered as the heap can make it.
//
// Stream is the lazy form: it merges iter.Seq sources through pull iterators, holding
// one value per source, and reports an unsorted source when it reaches the offending
// value.
package merge
