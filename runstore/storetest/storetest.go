// Package storetest holds behaviour tests shared by every runstore.Store implementation.
package storetest

import (
	"context"
	"iter"
	"testing"

	"github.com/davidvella/kway/runstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises a Store created by newStore. The store is closed by Run.
func Run(t *testing.T, newStore func(t *testing.T) runstore.Store) {
	t.Helper()

	t.Run("put and open", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()
		ctx := context.Background()

		first, err := s.Put(ctx, []int64{-3, 0, 0, 12})
		require.NoError(t, err)
		second, err := s.Put(ctx, []int64{7})
		require.NoError(t, err)
		assert.Greater(t, second, first)

		assert.Equal(t, []int64{-3, 0, 0, 12}, read(t, s, first))
		assert.Equal(t, []int64{7}, read(t, s, second))
	})

	t.Run("empty run", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		id, err := s.Put(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, read(t, s, id))
	})

	t.Run("extreme values", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		run := []int64{-1 << 63, -1, 0, 1, 1<<63 - 1}
		id, err := s.Put(context.Background(), run)
		require.NoError(t, err)
		assert.Equal(t, run, read(t, s, id))
	})

	t.Run("runs and delete", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()
		ctx := context.Background()

		var ids []runstore.RunID
		for i := 0; i < 3; i++ {
			id, err := s.Put(ctx, []int64{int64(i)})
			require.NoError(t, err)
			ids = append(ids, id)
		}

		got, err := s.Runs(ctx)
		require.NoError(t, err)
		assert.Equal(t, ids, got)

		require.NoError(t, s.Delete(ctx, ids[1]))
		got, err = s.Runs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []runstore.RunID{ids[0], ids[2]}, got)

		_, err = s.Open(ctx, ids[1])
		assert.ErrorIs(t, err, runstore.ErrRunNotFound)
		assert.ErrorIs(t, s.Delete(ctx, ids[1]), runstore.ErrRunNotFound)

		// Neighbouring runs are untouched.
		assert.Equal(t, []int64{0}, read(t, s, ids[0]))
		assert.Equal(t, []int64{2}, read(t, s, ids[2]))
	})

	t.Run("unknown run", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		_, err := s.Open(context.Background(), 12345)
		assert.ErrorIs(t, err, runstore.ErrRunNotFound)
	})

	t.Run("early stop", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		id, err := s.Put(context.Background(), []int64{1, 2, 3})
		require.NoError(t, err)
		seq, err := s.Open(context.Background(), id)
		require.NoError(t, err)

		var got []int64
		for v, err := range seq {
			require.NoError(t, err)
			got = append(got, v)
			if len(got) == 1 {
				break
			}
		}
		assert.Equal(t, []int64{1}, got)
	})
}

func read(t *testing.T, s runstore.Store, id runstore.RunID) []int64 {
	t.Helper()
	seq, err := s.Open(context.Background(), id)
	require.NoError(t, err)
	return collect(t, seq)
}

func collect(t *testing.T, seq iter.Seq2[int64, error]) []int64 {
	t.Helper()
	values := []int64{}
	for v, err := range seq {
		require.NoError(t, err)
		values = append(values, v)
	}
	return values
}
