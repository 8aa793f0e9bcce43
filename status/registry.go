package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/elf-bizniz/event"
)

// Metric names written by Observe
const (
	MetricFrames    = "frames"
	MetricFrameTime = "frame_ms"
)

// MetricRemoved counts entities removed from the current level, set by the frame loop
const MetricRemoved = "removed"

// frameTimeAlpha weights the newest frame time sample
const frameTimeAlpha = 0.1

// metricMap is a get-or-create map of metric pointers
// Registration takes the lock; callers cache the pointer and update it lock-free
type metricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetricMap[T any]() *metricMap[T] {
	return &metricMap[T]{items: make(map[string]*T)}
}

func (m *metricMap[T]) get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

func (m *metricMap[T]) keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Registry collects runtime counters for the frame loop
// Safe for concurrent readers while the loop writes
type Registry struct {
	ints   *metricMap[atomic.Int64]
	floats *metricMap[AtomicFloat]

	frames    *atomic.Int64
	frameTime *AtomicFloat
}

func NewRegistry() *Registry {
	r := &Registry{
		ints:   newMetricMap[atomic.Int64](),
		floats: newMetricMap[AtomicFloat](),
	}
	r.frames = r.Int(MetricFrames)
	r.frameTime = r.Float(MetricFrameTime)
	return r
}

// Int returns the counter for name, creating it at zero
func (r *Registry) Int(name string) *atomic.Int64 {
	return r.ints.get(name)
}

// Float returns the gauge for name, creating it at zero
func (r *Registry) Float(name string) *AtomicFloat {
	return r.floats.get(name)
}

// Observe records one completed frame: its duration and a count per event type
func (r *Registry) Observe(elapsed time.Duration, events []event.GameEvent) {
	r.frames.Add(1)
	r.frameTime.Smooth(float64(elapsed)/float64(time.Millisecond), frameTimeAlpha)
	for _, ev := range events {
		r.Int(ev.Type.String()).Add(1)
	}
}

// Summary renders every metric as sorted key=value pairs
func (r *Registry) Summary() string {
	var parts []string
	for _, k := range r.ints.keys() {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.Int(k).Load()))
	}
	for _, k := range r.floats.keys() {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, r.Float(k).Get()))
	}
	return strings.Join(parts, " ")
}
