package pebble

import "encoding/binary"

// Namespace identifies the kind of key stored.
type Namespace byte

const (
	// MetadataNamespace keys hold the value count of each run.
	MetadataNamespace Namespace = 'm'
	// ValueNamespace keys hold one run value each.
	ValueNamespace Namespace = 'v'
)

const (
	idSize  = 8
	posSize = 8
)

// metadataKey is namespace | run id.
func metadataKey(id uint64) []byte {
	key := make([]byte, 1+idSize)
	key[0] = byte(MetadataNamespace)
	binary.BigEndian.PutUint64(key[1:], id)
	return key
}

// valueKey is namespace | run id | position, so a run's values sort by position.
func valueKey(id, pos uint64) []byte {
	key := make([]byte, 1+idSize+posSize)
	key[0] = byte(ValueNamespace)
	binary.BigEndian.PutUint64(key[1:], id)
	binary.BigEndian.PutUint64(key[1+idSize:], pos)
	return key
}

// runBounds returns the [lower, upper) key range covering all values of run id.
func runBounds(id uint64) (lower, upper []byte) {
	lower = make([]byte, 1+idSize)
	lower[0] = byte(ValueNamespace)
	binary.BigEndian.PutUint64(lower[1:], id)

	upper = make([]byte, 1+idSize+posSize+1)
	copy(upper, valueKey(id, ^uint64(0)))
	return lower, upper
}

func encodeUint64(u uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, u)
	return b
}
