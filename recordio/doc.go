// Package recordio provides the binary encoding of sorted runs spilled to disk.
//
// A run is encoded as:
//   - Magic bytes "RUN" (3 bytes)
//   - Value count (uint64, little endian)
//   - Values (int64, little endian, in run order)
//
// Basic usage:
//
//	var buf bytes.Buffer
//	if _, err := recordio.WriteRun(&buf, []int64{1, 2, 3}); err != nil {
//	    log.Fatal(err)
//	}
//
//	for v, err := range recordio.Seq(&buf) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(v)
//	}
package recordio
