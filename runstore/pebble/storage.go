package pebble

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/davidvella/kway/runstore"
)

// StorageOptions configures the storage.
type StorageOptions struct {
	Path      string
	CacheSize int64
	// FS overrides the filesystem; nil means the OS filesystem.
	FS vfs.FS
	// Sync makes every Put and Delete durable before returning.
	Sync bool
}

// Storage implements runstore.Store using Pebble.
type Storage struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
	mu        sync.Mutex
	next      uint64
}

func NewStorage(opts StorageOptions) (*Storage, error) {
	cache := pebble.NewCache(opts.CacheSize)
	defer cache.Unref()

	pebbleOpts := &pebble.Options{
		Cache: cache,
		FS:    opts.FS,
	}

	db, err := pebble.Open(opts.Path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", opts.Path, err)
	}

	s := &Storage{db: db, writeOpts: pebble.NoSync}
	if opts.Sync {
		s.writeOpts = pebble.Sync
	}

	ids, err := s.Runs(context.Background())
	if err != nil {
		db.Close()
		return nil, err
	}
	if len(ids) > 0 {
		s.next = uint64(ids[len(ids)-1]) + 1
	}
	return s, nil
}

func (p *Storage) Close() error {
	return p.db.Close()
}

func (p *Storage) Put(_ context.Context, run []int64) (runstore.RunID, error) {
	p.mu.Lock()
	id := p.next
	p.next++
	p.mu.Unlock()

	batch := p.db.NewBatch()
	defer batch.Close()

	value := make([]byte, 8)
	for pos, v := range run {
		binary.BigEndian.PutUint64(value, uint64(v))
		if err := batch.Set(valueKey(id, uint64(pos)), value, nil); err != nil {
			return 0, fmt.Errorf("failed to stage value %d of run %d: %w", pos, id, err)
		}
	}
	if err := batch.Set(metadataKey(id), encodeUint64(uint64(len(run))), nil); err != nil {
		return 0, fmt.Errorf("failed to stage metadata of run %d: %w", id, err)
	}

	if err := batch.Commit(p.writeOpts); err != nil {
		return 0, fmt.Errorf("failed to commit run %d: %w", id, err)
	}
	return runstore.RunID(id), nil
}

func (p *Storage) exists(id uint64) (bool, error) {
	_, closer, err := p.db.Get(metadataKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (p *Storage) Open(_ context.Context, id runstore.RunID) (iter.Seq2[int64, error], error) {
	ok, err := p.exists(uint64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata of run %d: %w", id, err)
	}
	if !ok {
		return nil, runstore.ErrRunNotFound
	}

	lower, upper := runBounds(uint64(id))
	return func(yield func(int64, error) bool) {
		it, err := p.db.NewIter(&pebble.IterOptions{
			LowerBound: lower,
			UpperBound: upper,
		})
		if err != nil {
			yield(0, fmt.Errorf("failed to iterate run %d: %w", id, err))
			return
		}
		defer it.Close()

		for it.First(); it.Valid(); it.Next() {
			if !yield(int64(binary.BigEndian.Uint64(it.Value())), nil) {
				return
			}
		}
		if err := it.Error(); err != nil {
			yield(0, fmt.Errorf("failed to iterate run %d: %w", id, err))
		}
	}, nil
}

func (p *Storage) Runs(_ context.Context) ([]runstore.RunID, error) {
	it, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{byte(MetadataNamespace)},
		UpperBound: []byte{byte(MetadataNamespace) + 1},
	})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var ids []runstore.RunID
	for it.First(); it.Valid(); it.Next() {
		ids = append(ids, runstore.RunID(binary.BigEndian.Uint64(it.Key()[1:])))
	}
	return ids, it.Error()
}

func (p *Storage) Delete(_ context.Context, id runstore.RunID) error {
	ok, err := p.exists(uint64(id))
	if err != nil {
		return fmt.Errorf("failed to read metadata of run %d: %w", id, err)
	}
	if !ok {
		return runstore.ErrRunNotFound
	}

	batch := p.db.NewBatch()
	defer batch.Close()

	lower, upper := runBounds(uint64(id))
	if err := batch.DeleteRange(lower, upper, nil); err != nil {
		return err
	}
	if err := batch.Delete(metadataKey(uint64(id)), nil); err != nil {
		return err
	}
	return batch.Commit(p.writeOpts)
}
