package tiervec

import (
	"github.com/hupe1980/tiervec/resource"
)

// Builder is an immutable fluent builder for vectors.
// Each method returns a new builder with the updated configuration.
//
// Example:
//
//	v, err := tiervec.NewBuilder[string]().
//	    MinTierCapacity(32).
//	    InitialCapacity(10_000).
//	    MemoryLimit(64 << 20).
//	    Build()
type Builder[T any] struct {
	minTierCount    int
	minTierCapacity int
	initialCapacity int
	maxCapacity     int
	memoryLimit     int64
	rc              *resource.Controller
	logger          *Logger
	metrics         MetricsCollector
}

// NewBuilder returns a builder with default settings.
func NewBuilder[T any]() Builder[T] {
	return Builder[T]{minTierCount: DefaultMinTierCount}
}

// MinTierCount sets the initial and minimum tier count.
// Default: 4.
func (b Builder[T]) MinTierCount(n int) Builder[T] {
	b.minTierCount = n
	return b
}

// MinTierCapacity sets the smallest tier width.
// Default: derived from the cache line size and the element size.
func (b Builder[T]) MinTierCapacity(n int) Builder[T] {
	b.minTierCapacity = n
	return b
}

// InitialCapacity presizes the vector.
func (b Builder[T]) InitialCapacity(n int) Builder[T] {
	b.initialCapacity = n
	return b
}

// MaxCapacity bounds the total capacity. 0 means unbounded.
func (b Builder[T]) MaxCapacity(n int) Builder[T] {
	b.maxCapacity = n
	return b
}

// MemoryLimit gives the vector a private memory budget in bytes.
func (b Builder[T]) MemoryLimit(bytes int64) Builder[T] {
	b.memoryLimit = bytes
	return b
}

// ResourceController shares a memory budget with other vectors.
func (b Builder[T]) ResourceController(rc *resource.Controller) Builder[T] {
	b.rc = rc
	return b
}

// Logger sets the structured logger for resize events.
func (b Builder[T]) Logger(l *Logger) Builder[T] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder[T]) Metrics(mc MetricsCollector) Builder[T] {
	b.metrics = mc
	return b
}

// Options returns the functional options equivalent to the builder.
func (b Builder[T]) Options() []Option {
	opts := []Option{
		WithMinTierCount(b.minTierCount),
		WithInitialCapacity(b.initialCapacity),
		WithMaxCapacity(b.maxCapacity),
	}
	if b.minTierCapacity != 0 {
		opts = append(opts, WithMinTierCapacity(b.minTierCapacity))
	}
	if b.memoryLimit != 0 {
		opts = append(opts, WithMemoryLimit(b.memoryLimit))
	}
	if b.rc != nil {
		opts = append(opts, WithResourceController(b.rc))
	}
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return opts
}

// Build creates the vector.
func (b Builder[T]) Build() (*Vector[T], error) {
	return New[T](b.Options()...)
}

// MustBuild creates the vector, panicking on error.
func (b Builder[T]) MustBuild() *Vector[T] {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}
