package recordio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
)

var (
	Uint64Size = int64(binary.Size(uint64(0)))
	Int64Size  = int64(binary.Size(int64(0)))
	// MagicBytes Magic bytes to identify valid run files (RUN).
	MagicBytes           = []byte{0x52, 0x55, 0x4e}
	ErrInvalidMagicBytes = errors.New("invalid magic bytes - not a valid run file")
)

// BinaryWriter handles writing binary data with error handling.
type BinaryWriter struct {
	w io.Writer
}

func NewBinaryWriter(w io.Writer) BinaryWriter {
	return BinaryWriter{w: w}
}

func (bw BinaryWriter) WriteUint64(u uint64) (int64, error) {
	if err := binary.Write(bw.w, binary.LittleEndian, u); err != nil {
		return 0, err
	}
	return Uint64Size, nil
}

func (bw BinaryWriter) WriteInt64(i int64) (int64, error) {
	if err := binary.Write(bw.w, binary.LittleEndian, i); err != nil {
		return 0, err
	}
	return Int64Size, nil
}

// BinaryReader handles reading binary data with error handling.
type BinaryReader struct {
	r io.Reader
}

func NewBinaryReader(r io.Reader) BinaryReader {
	return BinaryReader{r: r}
}

func (br BinaryReader) ReadUint64() (uint64, error) {
	var value uint64
	err := binary.Read(br.r, binary.LittleEndian, &value)
	return value, err
}

func (br BinaryReader) ReadInt64() (int64, error) {
	var value int64
	err := binary.Read(br.r, binary.LittleEndian, &value)
	return value, err
}

// WriteRun writes a run: magic bytes, the value count, then each value.
func WriteRun(w io.Writer, values []int64) (int64, error) {
	var totalBytes int64

	mn, err := w.Write(MagicBytes)
	if err != nil {
		return int64(mn), fmt.Errorf("failed to write magic bytes: %w", err)
	}
	totalBytes += int64(mn)

	bw := NewBinaryWriter(w)

	n, err := bw.WriteUint64(uint64(len(values)))
	if err != nil {
		return totalBytes, fmt.Errorf("error writing run length: %w", err)
	}
	totalBytes += n

	for i, v := range values {
		n, err = bw.WriteInt64(v)
		if err != nil {
			return totalBytes, fmt.Errorf("error writing value %d: %w", i, err)
		}
		totalBytes += n
	}

	return totalBytes, nil
}

func readHeader(r io.Reader) (uint64, error) {
	magicBytes := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magicBytes); err != nil {
		return 0, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if !bytes.Equal(magicBytes, MagicBytes) {
		return 0, ErrInvalidMagicBytes
	}

	length, err := NewBinaryReader(r).ReadUint64()
	if err != nil {
		return 0, fmt.Errorf("error reading run length: %w", err)
	}
	return length, nil
}

// Seq creates an iterator over the values of a run. A malformed or truncated run
// yields a single error and stops.
func Seq(r io.Reader) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		length, err := readHeader(r)
		if err != nil {
			yield(0, err)
			return
		}

		br := NewBinaryReader(r)
		for i := uint64(0); i < length; i++ {
			v, err := br.ReadInt64()
			if err != nil {
				yield(0, fmt.Errorf("error reading value %d of %d: %w", i, length, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// ReadRun reads a whole run into a slice.
func ReadRun(r io.Reader) ([]int64, error) {
	values := make([]int64, 0, 1)
	for v, err := range Seq(r) {
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Size calculates the total size in bytes that a run of n values occupies when written.
func Size(n int) int64 {
	return int64(len(MagicBytes)) + Uint64Size + int64(n)*Int64Size
}
