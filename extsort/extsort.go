package extsort

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/davidvella/kway/merge"
	"github.com/davidvella/kway/metrics"
	"github.com/davidvella/kway/monitoring"
	"github.com/davidvella/kway/runstore"
	"github.com/google/btree"
)

var (
	ErrInvalidRunSize = errors.New("extsort: run size must be greater than 0")
	ErrClosed         = errors.New("extsort: sorter is closed")
)

// Metric names recorded by the sorter.
const (
	MetricValuesAdded    = "values_added_total"
	MetricRunsSpilled    = "runs_spilled_total"
	MetricValuesMerged   = "values_merged_total"
	MetricBufferedValues = "buffered_values"
)

const btreeDegree = 32

// entry orders equal values by arrival so the buffer keeps duplicates.
type entry struct {
	value int64
	seq   uint64
}

func (e entry) less(other entry) bool {
	if e.value != other.value {
		return e.value < other.value
	}
	return e.seq < other.seq
}

// Sorter sorts a stream of int64 values that may not fit in memory.
type Sorter struct {
	store  runstore.Store
	opts   options
	buffer *btree.BTreeG[entry]
	seq    uint64
	runs   []runstore.RunID
	closed bool
}

// New creates a Sorter that spills runs to store. The caller keeps ownership of
// store; Close removes only the runs this Sorter wrote.
func New(store runstore.Store, opts ...Option) (*Sorter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.runSize <= 0 {
		return nil, ErrInvalidRunSize
	}
	if o.registry == nil {
		o.registry = metrics.NewRegistry()
	}
	registerMetrics(o.registry)

	return &Sorter{
		store: store,
		opts:  o,
		buffer: btree.NewG[entry](btreeDegree, func(a, b entry) bool {
			return a.less(b)
		}),
	}, nil
}

func registerMetrics(r *metrics.Registry) {
	r.Register(metrics.Metric{
		Name:        MetricValuesAdded,
		Type:        metrics.Counter,
		Description: "Total number of values added",
	})
	r.Register(metrics.Metric{
		Name:        MetricRunsSpilled,
		Type:        metrics.Counter,
		Description: "Total number of sorted runs spilled to the store",
	})
	r.Register(metrics.Metric{
		Name:        MetricValuesMerged,
		Type:        metrics.Counter,
		Description: "Total number of values emitted by the merge",
	})
	r.Register(metrics.Metric{
		Name:        MetricBufferedValues,
		Type:        metrics.Gauge,
		Description: "Number of values buffered in memory",
	})
}

// Metrics returns the registry the sorter records into.
func (s *Sorter) Metrics() *metrics.Registry {
	return s.opts.registry
}

// Runs returns the IDs of the runs spilled so far.
func (s *Sorter) Runs() []runstore.RunID {
	return append([]runstore.RunID(nil), s.runs...)
}

// Add buffers v, spilling the buffer as a sorted run once it holds the configured
// run size.
func (s *Sorter) Add(ctx context.Context, v int64) error {
	if s.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.buffer.ReplaceOrInsert(entry{value: v, seq: s.seq})
	s.seq++
	s.opts.registry.Add(MetricValuesAdded, 1)
	s.opts.registry.Set(MetricBufferedValues, float64(s.buffer.Len()))

	if s.buffer.Len() >= s.opts.runSize {
		return s.spill(ctx)
	}
	return nil
}

func (s *Sorter) spill(ctx context.Context) error {
	if s.buffer.Len() == 0 {
		return nil
	}

	run := make([]int64, 0, s.buffer.Len())
	s.buffer.Ascend(func(e entry) bool {
		run = append(run, e.value)
		return true
	})

	id, err := s.store.Put(ctx, run)
	if err != nil {
		return fmt.Errorf("extsort: failed to spill run: %w", err)
	}

	s.runs = append(s.runs, id)
	s.buffer.Clear(false)
	s.opts.registry.Add(MetricRunsSpilled, 1)
	s.opts.registry.Set(MetricBufferedValues, 0)
	s.opts.logger.Log(ctx, monitoring.DEBUG, "run_spilled", "spilled sorted run", map[string]any{
		"run":    uint64(id),
		"values": len(run),
	})
	return nil
}

// Sorted spills any buffered values and yields every value added so far in
// ascending order, merging all runs with a k-way merge. It may be ranged over more
// than once.
func (s *Sorter) Sorted(ctx context.Context) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		if s.closed {
			yield(0, ErrClosed)
			return
		}
		if err := s.spill(ctx); err != nil {
			yield(0, err)
			return
		}

		sources := make([]iter.Seq[int64], len(s.runs))
		errs := make([]error, len(s.runs))
		for i, id := range s.runs {
			seq, err := s.store.Open(ctx, id)
			if err != nil {
				yield(0, fmt.Errorf("extsort: failed to open run %d: %w", id, err))
				return
			}
			sources[i] = valuesOf(seq, &errs[i])
		}

		s.opts.logger.Log(ctx, monitoring.INFO, "merge_start", "merging sorted runs", map[string]any{
			"runs": len(s.runs),
		})

		for it, err := range merge.Stream(sources...) {
			if err != nil {
				yield(0, fmt.Errorf("extsort: %w", err))
				return
			}
			if err := errors.Join(errs...); err != nil {
				yield(0, fmt.Errorf("extsort: failed to read run: %w", err))
				return
			}
			if err := ctx.Err(); err != nil {
				yield(0, err)
				return
			}
			s.opts.registry.Add(MetricValuesMerged, 1)
			if !yield(it.Value, nil) {
				return
			}
		}

		if err := errors.Join(errs...); err != nil {
			yield(0, fmt.Errorf("extsort: failed to read run: %w", err))
		}
	}
}

// valuesOf drops the error channel of seq, recording the first error in errp and
// ending the sequence there.
func valuesOf(seq iter.Seq2[int64, error], errp *error) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for v, err := range seq {
			if err != nil {
				*errp = err
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Close deletes the runs written by the sorter. Further calls return ErrClosed.
func (s *Sorter) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.buffer.Clear(false)

	var errs []error
	for _, id := range s.runs {
		if err := s.store.Delete(context.Background(), id); err != nil && !errors.Is(err, runstore.ErrRunNotFound) {
			errs = append(errs, fmt.Errorf("extsort: failed to delete run %d: %w", id, err))
		}
	}
	s.runs = nil
	return errors.Join(errs...)
}
