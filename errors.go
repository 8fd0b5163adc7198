package tiervec

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when popping from, or peeking into, an empty vector.
	ErrEmptyCollection = errors.New("tiervec: empty collection")

	// ErrCapacityOverflow is returned when a resize would exceed the
	// configured maximum capacity or the addressable range.
	ErrCapacityOverflow = errors.New("tiervec: capacity overflow")

	// ErrClosed is returned when mutating a vector after Close.
	ErrClosed = errors.New("tiervec: vector is closed")
)

// ErrIndexOutOfRange indicates a logical index outside the range valid for Op.
//
// Limit is the exclusive upper bound: Len for Get, Set and Delete, Len+1 for Insert.
type ErrIndexOutOfRange struct {
	Op    string
	Index int
	Limit int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("tiervec: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Limit)
}

// ErrAllocationFailure indicates that storage for a new tier set could not be
// obtained. The vector keeps its previous tiers and contents.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrAllocationFailure struct {
	TierCount    int
	TierCapacity int
	Bytes        int64
	cause        error
}

func (e *ErrAllocationFailure) Error() string {
	return fmt.Sprintf("tiervec: cannot allocate %d tiers of %d (%d bytes): %v",
		e.TierCount, e.TierCapacity, e.Bytes, e.cause)
}

func (e *ErrAllocationFailure) Unwrap() error { return e.cause }

// ErrInvalidOption indicates a rejected configuration value.
type ErrInvalidOption struct {
	Option string
	Value  any
	Reason string
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("tiervec: invalid %s %v: %s", e.Option, e.Value, e.Reason)
}

// IsIndexOutOfRange reports whether err is an ErrIndexOutOfRange.
func IsIndexOutOfRange(err error) bool {
	var oor *ErrIndexOutOfRange
	return errors.As(err, &oor)
}

// IsAllocationFailure reports whether err is an ErrAllocationFailure.
func IsAllocationFailure(err error) bool {
	var af *ErrAllocationFailure
	return errors.As(err, &af)
}

// invariantViolation aborts on internal corruption. These are never caller errors.
func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("tiervec: invariant violated: "+format, args...))
}

// must panics if a tier operation that the cascade guarantees to succeed fails.
func must(err error) {
	if err != nil {
		invariantViolation("%v", err)
	}
}

// mustValue is must for operations returning a value.
func mustValue[T any](v T, err error) T {
	must(err)
	return v
}
