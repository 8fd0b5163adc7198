package tiervec

import (
	"github.com/hupe1980/tiervec/internal/layout"
	"github.com/hupe1980/tiervec/internal/tier"
	"github.com/hupe1980/tiervec/resource"
)

// Vector is an implicit tiered vector: a sequence with O(1) indexed access and
// O(√n) positional insert and delete.
//
// Elements live in one contiguous buffer split into equally sized ring-buffer
// tiers. A parallel offset table stores each tier's head and count. The tiers
// themselves form a ring, so only the first and the last occupied tier may be
// partially filled and free tiers can be claimed at either end.
//
// A Vector is not safe for concurrent use. Callers that share one must provide
// their own mutual exclusion.
type Vector[T any] struct {
	buf     []T
	headers []tier.Header
	first   int // physical index of logical tier 0
	used    int // number of occupied tiers
	length  int
	tierCap int
	memo    layout.Memo

	minTierCount    int
	minTierCapacity int
	maxCapacity     int

	rc       *resource.Controller
	reserved int64
	logger   *Logger
	metrics  MetricsCollector
	closed   bool
}

// New creates an empty Vector.
func New[T any](optFns ...Option) (*Vector[T], error) {
	o, err := applyOptions[T](optFns)
	if err != nil {
		return nil, err
	}

	floor, _ := layout.GeometryFor(o.minTierCount, o.minTierCapacity)
	if o.maxCapacity > 0 {
		if floor.Capacity > o.maxCapacity {
			return nil, &ErrInvalidOption{Option: "max capacity", Value: o.maxCapacity, Reason: "below the minimum tier geometry"}
		}
		if o.initialCapacity > o.maxCapacity {
			return nil, &ErrInvalidOption{Option: "initial capacity", Value: o.initialCapacity, Reason: "exceeds max capacity"}
		}
	}

	tierCount, ok := layout.TierCountFor(o.initialCapacity, o.minTierCount, o.minTierCapacity)
	if !ok {
		return nil, &ErrAllocationFailure{cause: ErrCapacityOverflow}
	}

	v := &Vector[T]{
		minTierCount:    o.minTierCount,
		minTierCapacity: o.minTierCapacity,
		maxCapacity:     o.maxCapacity,
		rc:              o.rc,
		logger:          o.logger,
		metrics:         o.metricsCollector,
	}
	if err := v.rebuild(tierCount); err != nil {
		return nil, err
	}
	return v, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](optFns ...Option) *Vector[T] {
	v, err := New[T](optFns...)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of elements the current tier set can hold.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// TierCount returns the number of tiers, occupied or not.
func (v *Vector[T]) TierCount() int { return len(v.headers) }

// TierCapacity returns the number of slots per tier.
func (v *Vector[T]) TierCapacity() int { return v.tierCap }

// IsEmpty reports whether the vector holds no element.
func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// IsFull reports whether every slot of the current tier set is occupied.
// The next push or insert on a full vector grows the tier set.
func (v *Vector[T]) IsFull() bool { return v.length == len(v.buf) }

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	p, off, err := v.locate("get", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return mustValue(v.ring(p).Get(off)), nil
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, val T) error {
	p, off, err := v.locate("set", i)
	if err != nil {
		return err
	}
	must(v.ring(p).Set(off, val))
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return mustValue(v.at(0).Front()), nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return mustValue(v.at(v.used - 1).Back()), nil
}

// PushBack appends val, growing the tier set if the last tier is full and no
// free tier is left.
func (v *Vector[T]) PushBack(val T) error {
	if v.closed {
		return ErrClosed
	}
	if !v.backRoom() {
		if err := v.grow(); err != nil {
			return err
		}
	}
	if v.used == 0 || v.at(v.used-1).Full() {
		v.extendBack()
	}
	must(v.at(v.used - 1).PushBack(val))
	v.length++
	v.memo.Invalidate()
	return nil
}

// PushFront prepends val, growing the tier set if the first tier is full and
// no free tier is left.
func (v *Vector[T]) PushFront(val T) error {
	if v.closed {
		return ErrClosed
	}
	if !v.frontRoom() {
		if err := v.grow(); err != nil {
			return err
		}
	}
	if v.used == 0 || v.at(0).Full() {
		v.extendFront()
	}
	must(v.at(0).PushFront(val))
	v.length++
	v.memo.Invalidate()
	return nil
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	last := v.at(v.used - 1)
	val := mustValue(last.PopBack())
	if last.Empty() {
		v.used--
	}
	v.length--
	v.memo.Invalidate()
	v.maybeShrink()
	return val, nil
}

// PopFront removes and returns the first element.
func (v *Vector[T]) PopFront() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	head := v.at(0)
	val := mustValue(head.PopFront())
	if head.Empty() {
		v.dropFront()
	}
	v.length--
	v.memo.Invalidate()
	v.maybeShrink()
	return val, nil
}

// Values returns a copy of the elements in order.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.length)
	n := 0
	for t := 0; t < v.used; t++ {
		n += v.at(t).CopyTo(out[n:])
	}
	return out
}

// Clear removes every element and returns the tier set to its minimum size.
func (v *Vector[T]) Clear() {
	if v.closed {
		return
	}
	clear(v.buf)
	clear(v.headers)
	v.first, v.used, v.length = 0, 0, 0
	v.memo.Invalidate()

	if from := len(v.headers); from > v.minTierCount {
		_ = v.resize(ResizeShrink, from, v.minTierCount)
	}
}

// Stats is a point-in-time description of a vector's shape.
type Stats struct {
	Len           int
	Cap           int
	TierCount     int
	TierCapacity  int
	UsedTiers     int
	ReservedBytes int64
}

// Stats returns the vector's current shape.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:           v.length,
		Cap:           len(v.buf),
		TierCount:     len(v.headers),
		TierCapacity:  v.tierCap,
		UsedTiers:     v.used,
		ReservedBytes: v.reserved,
	}
}

// locate resolves i to (physical tier, offset), consulting the memo first.
func (v *Vector[T]) locate(op string, i int) (int, int, error) {
	if i < 0 || i >= v.length {
		return 0, 0, &ErrIndexOutOfRange{Op: op, Index: i, Limit: v.length}
	}
	if p, off, ok := v.memo.Lookup(i); ok {
		return p, off, nil
	}
	pos := v.position(i)
	v.memo.Remember(pos, v.headers[pos.Phys].Len())
	return pos.Phys, pos.Offset, nil
}

func (v *Vector[T]) position(i int) layout.Position {
	pos, err := layout.Locate(v.table(), i)
	if err != nil {
		invariantViolation("locate %d (len %d): %v", i, v.length, err)
	}
	return pos
}

func (v *Vector[T]) table() layout.Table {
	return layout.Table{
		Headers:      v.headers,
		First:        v.first,
		Used:         v.used,
		TierCapacity: v.tierCap,
		Length:       v.length,
	}
}

// phys maps logical tier t to its physical tier.
func (v *Vector[T]) phys(t int) int {
	return (v.first + t) & (len(v.headers) - 1)
}

// ring returns the view of physical tier p.
func (v *Vector[T]) ring(p int) tier.Ring[T] {
	lo := p * v.tierCap
	hi := lo + v.tierCap
	return tier.View(v.buf[lo:hi:hi], &v.headers[p])
}

// at returns the view of logical tier t.
func (v *Vector[T]) at(t int) tier.Ring[T] {
	return v.ring(v.phys(t))
}

func (v *Vector[T]) frontRoom() bool {
	return v.used < len(v.headers) || !v.at(0).Full()
}

func (v *Vector[T]) backRoom() bool {
	return v.used < len(v.headers) || !v.at(v.used-1).Full()
}

// extendBack claims the free tier after the last occupied one.
func (v *Vector[T]) extendBack() {
	if v.used == len(v.headers) {
		invariantViolation("no free tier to extend back (%d tiers)", v.used)
	}
	v.ring(v.phys(v.used)).Reset()
	v.used++
}

// extendFront claims the free tier before the first occupied one.
func (v *Vector[T]) extendFront() {
	if v.used == len(v.headers) {
		invariantViolation("no free tier to extend front (%d tiers)", v.used)
	}
	v.first = (v.first - 1) & (len(v.headers) - 1)
	v.ring(v.first).Reset()
	v.used++
}

// dropFront releases the (empty) first occupied tier.
func (v *Vector[T]) dropFront() {
	v.first = (v.first + 1) & (len(v.headers) - 1)
	v.used--
}
