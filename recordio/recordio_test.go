package recordio_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/davidvella/kway/recordio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("its a me errorio")

type mockWriter struct {
	errorCounter int
	counter      int
}

func (w *mockWriter) Write(p []byte) (n int, err error) {
	w.counter++
	if w.counter == w.errorCounter {
		return 0, errWrite
	}
	return len(p), nil
}

func TestWriteRun(t *testing.T) {
	tests := []struct {
		name         string
		writer       io.Writer
		values       []int64
		expectedSize int64
		wantErr      bool
	}{
		{
			name:         "successful write",
			values:       []int64{-1, 0, 7},
			expectedSize: 35,
		},
		{
			name:         "empty run",
			values:       []int64{},
			expectedSize: 11,
		},
		{
			name:         "magic bytes error",
			writer:       &mockWriter{errorCounter: 1},
			values:       []int64{1},
			expectedSize: 0,
			wantErr:      true,
		},
		{
			name:         "length error",
			writer:       &mockWriter{errorCounter: 2},
			values:       []int64{1},
			expectedSize: 3,
			wantErr:      true,
		},
		{
			name:         "value error",
			writer:       &mockWriter{errorCounter: 4},
			values:       []int64{1, 2},
			expectedSize: 19,
			wantErr:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.writer
			if w == nil {
				w = &bytes.Buffer{}
			}
			n, err := recordio.WriteRun(w, tt.values)
			if tt.wantErr {
				assert.ErrorIs(t, err, errWrite)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, recordio.Size(len(tt.values)), n)
			}
			assert.Equal(t, tt.expectedSize, n)
		})
	}
}

func TestReadRun(t *testing.T) {
	var buf bytes.Buffer
	_, err := recordio.WriteRun(&buf, []int64{-5, 3, 3, 9})
	require.NoError(t, err)

	got, err := recordio.ReadRun(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int64{-5, 3, 3, 9}, got)
}

func TestReadRun_Errors(t *testing.T) {
	var valid bytes.Buffer
	_, err := recordio.WriteRun(&valid, []int64{1, 2})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty input", data: nil, wantErr: io.EOF},
		{name: "bad magic", data: []byte("RECxxxxxxxx"), wantErr: recordio.ErrInvalidMagicBytes},
		{name: "truncated header", data: valid.Bytes()[:5], wantErr: io.ErrUnexpectedEOF},
		{name: "truncated values", data: valid.Bytes()[:valid.Len()-4], wantErr: io.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recordio.ReadRun(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSeq_EarlyStop(t *testing.T) {
	var buf bytes.Buffer
	_, err := recordio.WriteRun(&buf, []int64{1, 2, 3})
	require.NoError(t, err)

	var got []int64
	for v, err := range recordio.Seq(&buf) {
		require.NoError(t, err)
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int64{1, 2}, got)
}
