package tiervec

import (
	"log/slog"
	"unsafe"

	"github.com/hupe1980/tiervec/internal/layout"
	"github.com/hupe1980/tiervec/resource"
	"golang.org/x/sys/cpu"
)

// DefaultMinTierCount is the tier count of a new vector and the floor a
// shrinking vector returns to.
const DefaultMinTierCount = 4

// maxDefaultTierCapacity caps the cache-derived default tier width.
const maxDefaultTierCapacity = 64

type options struct {
	minTierCount     int
	minTierCapacity  int // 0 derives the width from the element size
	initialCapacity  int
	maxCapacity      int // 0 means unbounded
	memoryLimit      int64
	rc               *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Vector.
type Option func(*options)

// WithMinTierCount sets the initial tier count, which is also the floor for
// shrinking. It must be a power of two and at least 2.
func WithMinTierCount(n int) Option {
	return func(o *options) {
		o.minTierCount = n
	}
}

// WithMinTierCapacity sets the smallest tier width. Tier width follows the
// tier count once the tier count exceeds it. It must be a power of two and at
// least 2.
//
// By default the width is chosen so that one tier spans two cache lines of
// elements (at most 64 elements).
func WithMinTierCapacity(n int) Option {
	return func(o *options) {
		o.minTierCapacity = n
	}
}

// WithInitialCapacity presizes the vector so that at least n elements fit
// before the first grow.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithMaxCapacity bounds the total capacity. A grow that would exceed it
// fails with ErrAllocationFailure wrapping ErrCapacityOverflow.
// Pass 0 for no bound.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

// WithMemoryLimit creates a private memory budget of bytes for tier storage.
// Resizes that cannot be reserved fail with ErrAllocationFailure.
//
// During a resize the old and new tier sets are reserved together.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithResourceController shares a memory budget between vectors.
// It takes precedence over WithMemoryLimit.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &tiervec.BasicMetricsCollector{}
//	v, _ := tiervec.New[int](tiervec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, Max cascade: %d\n", stats.GrowCount, stats.MaxCascadeTiers)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for resizes.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tiervec.NewJSONLogger(slog.LevelInfo)
//	v, _ := tiervec.New[int](tiervec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions[T any](optFns []Option) (options, error) {
	o := options{
		minTierCount:     DefaultMinTierCount,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.minTierCapacity == 0 {
		o.minTierCapacity = defaultMinTierCapacity[T]()
	}
	if o.rc == nil && o.memoryLimit > 0 {
		o.rc = resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
	}

	return o, o.validate()
}

func (o *options) validate() error {
	if o.minTierCount < layout.MinTierSize || !layout.IsPowerOfTwo(o.minTierCount) {
		return &ErrInvalidOption{Option: "min tier count", Value: o.minTierCount, Reason: "must be a power of two >= 2"}
	}
	if o.minTierCapacity < layout.MinTierSize || !layout.IsPowerOfTwo(o.minTierCapacity) {
		return &ErrInvalidOption{Option: "min tier capacity", Value: o.minTierCapacity, Reason: "must be a power of two >= 2"}
	}
	if o.initialCapacity < 0 {
		return &ErrInvalidOption{Option: "initial capacity", Value: o.initialCapacity, Reason: "must not be negative"}
	}
	if o.maxCapacity < 0 {
		return &ErrInvalidOption{Option: "max capacity", Value: o.maxCapacity, Reason: "must not be negative"}
	}
	if o.memoryLimit < 0 {
		return &ErrInvalidOption{Option: "memory limit", Value: o.memoryLimit, Reason: "must not be negative"}
	}
	return nil
}

// defaultMinTierCapacity sizes a tier to span two cache lines of T.
func defaultMinTierCapacity[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return maxDefaultTierCapacity
	}
	line := int(unsafe.Sizeof(cpu.CacheLinePad{}))
	n := layout.NextPowerOfTwo(2 * line / size)
	return min(max(n, layout.MinTierSize), maxDefaultTierCapacity)
}
