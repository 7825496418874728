package pebble_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/davidvella/kway/runstore"
	"github.com/davidvella/kway/runstore/pebble"
	"github.com/davidvella/kway/runstore/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T, fs vfs.FS) *pebble.Storage {
	t.Helper()
	s, err := pebble.NewStorage(pebble.StorageOptions{
		Path:      "runs",
		CacheSize: 1 << 20,
		FS:        fs,
	})
	require.NoError(t, err)
	return s
}

func TestStorage(t *testing.T) {
	storetest.Run(t, func(t *testing.T) runstore.Store {
		return setupTestStorage(t, vfs.NewMem())
	})
}

func TestStorage_Reopen(t *testing.T) {
	fs := vfs.NewMem()
	ctx := context.Background()

	s := setupTestStorage(t, fs)
	first, err := s.Put(ctx, []int64{1, 2})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s = setupTestStorage(t, fs)
	defer s.Close()

	second, err := s.Put(ctx, []int64{3})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	ids, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []runstore.RunID{first, second}, ids)

	seq, err := s.Open(ctx, first)
	require.NoError(t, err)
	var got []int64
	for v, err := range seq {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int64{1, 2}, got)
}
