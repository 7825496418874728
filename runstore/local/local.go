package local

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/davidvella/kway/recordio"
	"github.com/davidvella/kway/runstore"
)

const runExt = ".run"

// Storage keeps one recordio file per run in a directory.
type Storage struct {
	dir  string
	mu   sync.Mutex
	next runstore.RunID
}

// NewStorage opens run storage in dir, creating it if needed. Runs already present
// in dir are kept and new IDs continue after the highest existing one.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	s := &Storage{dir: dir}
	ids, err := s.Runs(context.Background())
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		s.next = ids[len(ids)-1] + 1
	}
	return s, nil
}

func (s *Storage) path(id runstore.RunID) string {
	return filepath.Join(s.dir, fmt.Sprintf("%020d%s", uint64(id), runExt))
}

// Put writes the run to a temporary file and renames it into place, so a run file
// is either complete or absent.
func (s *Storage) Put(_ context.Context, run []int64) (runstore.RunID, error) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "pending-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create pending file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if _, err := recordio.WriteRun(w, run); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to write run %d: %w", id, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to flush run %d: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close run %d: %w", id, err)
	}

	if err := os.Rename(tmp.Name(), s.path(id)); err != nil {
		return 0, fmt.Errorf("failed to publish run %d: %w", id, err)
	}
	return id, nil
}

// Open returns an iterator that reads the run file each time it is ranged over.
func (s *Storage) Open(_ context.Context, id runstore.RunID) (iter.Seq2[int64, error], error) {
	path := s.path(id)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, runstore.ErrRunNotFound
		}
		return nil, err
	}

	return func(yield func(int64, error) bool) {
		file, err := os.Open(path)
		if err != nil {
			yield(0, fmt.Errorf("failed to open run %d: %w", id, err))
			return
		}
		defer file.Close()

		for v, err := range recordio.Seq(bufio.NewReader(file)) {
			if err != nil {
				yield(0, fmt.Errorf("failed to read run %d: %w", id, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}, nil
}

func (s *Storage) Runs(_ context.Context) ([]runstore.RunID, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var ids []runstore.RunID
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), runExt)
		if entry.IsDir() || !ok {
			continue
		}
		id, err := strconv.ParseUint(name, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, runstore.RunID(id))
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *Storage) Delete(_ context.Context, id runstore.RunID) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return runstore.ErrRunNotFound
	}
	return err
}

// Close is a no-op; run files stay on disk until deleted.
func (s *Storage) Close() error {
	return nil
}
