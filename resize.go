package tiervec

import (
	"math"
	"time"
	"unsafe"

	"github.com/hupe1980/tiervec/internal/layout"
	"github.com/hupe1980/tiervec/internal/tier"
)

// ResizeKind tells a grow from a shrink.
type ResizeKind uint8

const (
	// ResizeGrow doubles the tier count.
	ResizeGrow ResizeKind = iota
	// ResizeShrink halves the tier count.
	ResizeShrink
)

func (k ResizeKind) String() string {
	switch k {
	case ResizeGrow:
		return "grow"
	case ResizeShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// grow doubles the tier count. On failure the vector is unchanged.
func (v *Vector[T]) grow() error {
	n := len(v.headers)
	if n > math.MaxInt/2 {
		return v.resize(ResizeGrow, n, 0)
	}
	return v.resize(ResizeGrow, n, 2*n)
}

// maybeShrink halves the tier count once the vector is sparse enough.
// A failed shrink is logged and otherwise ignored: the vector stays valid at
// its current size.
func (v *Vector[T]) maybeShrink() {
	n := len(v.headers)
	if !layout.ShouldShrink(v.length, n, v.minTierCount, v.minTierCapacity) {
		return
	}
	_ = v.resize(ResizeShrink, n, n/2)
}

func (v *Vector[T]) resize(kind ResizeKind, from, to int) error {
	start := time.Now()
	err := v.rebuild(to)
	elapsed := time.Since(start)

	switch kind {
	case ResizeGrow:
		v.metrics.RecordGrow(from, to, elapsed, err)
	case ResizeShrink:
		v.metrics.RecordShrink(from, to, elapsed, err)
	}
	v.logger.LogResize(ResizeEvent{
		Kind:           kind,
		FromTierCount:  from,
		ToTierCount:    to,
		ToTierCapacity: v.tierCap,
		Length:         v.length,
		Duration:       elapsed,
		ReservedBytes:  v.reserved,
	}, err)
	return err
}

// rebuild moves the elements into a fresh tier set of tierCount tiers, packed
// from logical tier 0 so that every tier except the last is full.
//
// The new set is reserved and filled before the old one is released, so any
// failure leaves the vector exactly as it was.
func (v *Vector[T]) rebuild(tierCount int) error {
	g, ok := layout.GeometryFor(tierCount, v.minTierCapacity)
	if !ok || (v.maxCapacity > 0 && g.Capacity > v.maxCapacity) || g.Capacity < v.length {
		return &ErrAllocationFailure{TierCount: tierCount, TierCapacity: g.TierCapacity, cause: ErrCapacityOverflow}
	}
	bytes, ok := footprint[T](g)
	if !ok {
		return &ErrAllocationFailure{TierCount: tierCount, TierCapacity: g.TierCapacity, cause: ErrCapacityOverflow}
	}
	if err := v.rc.AcquireMemory(bytes); err != nil {
		return &ErrAllocationFailure{TierCount: tierCount, TierCapacity: g.TierCapacity, Bytes: bytes, cause: err}
	}

	buf := make([]T, g.Capacity)
	headers := make([]tier.Header, g.TierCount)

	n := 0
	for t := 0; t < v.used; t++ {
		n += v.at(t).CopyTo(buf[n:])
	}
	if n != v.length {
		invariantViolation("rebuild copied %d of %d elements", n, v.length)
	}

	used := 0
	for rest := n; rest > 0; rest -= g.TierCapacity {
		headers[used] = tier.NewHeader(0, min(rest, g.TierCapacity))
		used++
	}

	v.rc.ReleaseMemory(v.reserved)
	v.buf = buf
	v.headers = headers
	v.tierCap = g.TierCapacity
	v.first = 0
	v.used = used
	v.reserved = bytes
	v.memo.Invalidate()
	return nil
}

// footprint returns the bytes held by a tier set of geometry g.
func footprint[T any](g layout.Geometry) (int64, bool) {
	var zero T
	elem := int64(unsafe.Sizeof(zero))
	hdr := int64(unsafe.Sizeof(tier.Header{}))

	headers := hdr * int64(g.TierCount)
	if elem > 0 && int64(g.Capacity) > (math.MaxInt64-headers)/elem {
		return 0, false
	}
	return int64(g.Capacity)*elem + headers, true
}
