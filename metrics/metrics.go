package metrics

import (
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric represents a single metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue represents the value of a metric
type MetricValue struct {
	Value     float64
	Timestamp time.Time
}

// Registry stores and manages metrics. Counters accumulate, gauges keep the last value.
type Registry struct {
	metrics map[string]Metric
	values  map[string]MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]MetricValue),
	}
}

func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

// Add increments a registered counter. Unknown names and non-counters are ignored.
func (r *Registry) Add(name string, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Counter {
		v := r.values[name]
		r.values[name] = MetricValue{Value: v.Value + delta, Timestamp: time.Now()}
	}
}

// Set records the current value of a registered gauge.
func (r *Registry) Set(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		r.values[name] = MetricValue{Value: value, Timestamp: time.Now()}
	}
}

// Value returns the current value of name, or 0 if nothing was recorded.
func (r *Registry) Value(name string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[name].Value
}

func (r *Registry) GetMetrics() map[string]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]MetricValue, len(r.values))
	for name, v := range r.values {
		result[name] = v
	}
	return result
}
