// Package extsort implements an external merge sort of int64 values.
//
// Values are buffered in an in-memory B-tree. Whenever the buffer reaches the
// configured run size it is written, in order, to a runstore.Store as a sorted run.
// Sorted then merges every run with a k-way merge, where k is the number of runs,
// so only one value per run is held in memory while the result is produced.
//
// Basic usage:
//
//	s, err := extsort.New(memory.NewStorage(), extsort.WithRunSize(1024))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	for _, v := range input {
//	    if err := s.Add(ctx, v); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	for v, err := range s.Sorted(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(v)
//	}
//
// A Sorter is not safe for concurrent use.
package extsort
