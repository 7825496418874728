package memory_test

import (
	"context"
	"testing"

	"github.com/davidvella/kway/runstore"
	"github.com/davidvella/kway/runstore/memory"
	"github.com/davidvella/kway/runstore/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	storetest.Run(t, func(*testing.T) runstore.Store {
		return memory.NewStorage()
	})
}

func TestStorage_PutCopiesRun(t *testing.T) {
	s := memory.NewStorage()
	run := []int64{1, 2}

	id, err := s.Put(context.Background(), run)
	require.NoError(t, err)
	run[0] = 100

	seq, err := s.Open(context.Background(), id)
	require.NoError(t, err)
	var got []int64
	for v, err := range seq {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int64{1, 2}, got)
}
