package local_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidvella/kway/runstore"
	"github.com/davidvella/kway/runstore/local"
	"github.com/davidvella/kway/runstore/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	storetest.Run(t, func(t *testing.T) runstore.Store {
		s, err := local.NewStorage(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestStorage_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := local.NewStorage(dir)
	require.NoError(t, err)
	first, err := s.Put(ctx, []int64{1})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Unrelated files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	s, err = local.NewStorage(dir)
	require.NoError(t, err)
	second, err := s.Put(ctx, []int64{2})
	require.NoError(t, err)

	assert.Greater(t, second, first)
	ids, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []runstore.RunID{first, second}, ids)
}

func TestStorage_CorruptRun(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := local.NewStorage(dir)
	require.NoError(t, err)
	id, err := s.Put(ctx, []int64{1, 2, 3})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("garbage"), 0o600))

	seq, err := s.Open(ctx, id)
	require.NoError(t, err)
	var gotErr error
	for _, err := range seq {
		gotErr = err
	}
	assert.Error(t, gotErr)
}
