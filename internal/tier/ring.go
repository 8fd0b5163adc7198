package tier

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned when pushing into a tier that has no free slot.
	ErrFull = errors.New("tier: full")
	// ErrEmpty is returned when popping from a tier that holds no element.
	ErrEmpty = errors.New("tier: empty")
)

// ErrOffsetOutOfRange indicates an in-tier offset outside [0, Len).
type ErrOffsetOutOfRange struct {
	Offset int
	Len    int
}

func (e *ErrOffsetOutOfRange) Error() string {
	return fmt.Sprintf("tier: offset %d out of range (len %d)", e.Offset, e.Len)
}

// Header is the ring metadata of a single tier: one entry of the offset table.
// The zero value describes an empty tier.
type Header struct {
	head  int // physical slot of the logically first element
	count int // number of occupied slots
}

// NewHeader returns a header for a tier whose count elements start at slot head.
func NewHeader(head, count int) Header {
	return Header{head: head, count: count}
}

// Head returns the physical slot of the first element.
func (h Header) Head() int { return h.head }

// Len returns the number of elements held by the tier.
func (h Header) Len() int { return h.count }

// Ring is a ring-buffer view over one tier.
// It is a value type; copying a Ring copies the view, not the storage.
type Ring[T any] struct {
	buf  []T
	hdr  *Header
	mask int
}

// View binds buf and hdr into a Ring. len(buf) must be a power of two.
func View[T any](buf []T, hdr *Header) Ring[T] {
	return Ring[T]{buf: buf, hdr: hdr, mask: len(buf) - 1}
}

// Len returns the number of elements in the tier.
func (r Ring[T]) Len() int { return r.hdr.count }

// Cap returns the number of slots in the tier.
func (r Ring[T]) Cap() int { return len(r.buf) }

// Full reports whether every slot is occupied.
func (r Ring[T]) Full() bool { return r.hdr.count == len(r.buf) }

// Empty reports whether the tier holds no element.
func (r Ring[T]) Empty() bool { return r.hdr.count == 0 }

// Slot maps a logical offset to its physical slot.
func (r Ring[T]) Slot(offset int) int {
	return (r.hdr.head + offset) & r.mask
}

// Get returns the element at offset.
func (r Ring[T]) Get(offset int) (T, error) {
	if offset < 0 || offset >= r.hdr.count {
		var zero T
		return zero, &ErrOffsetOutOfRange{Offset: offset, Len: r.hdr.count}
	}
	return r.buf[r.Slot(offset)], nil
}

// Set replaces the element at offset.
func (r Ring[T]) Set(offset int, v T) error {
	if offset < 0 || offset >= r.hdr.count {
		return &ErrOffsetOutOfRange{Offset: offset, Len: r.hdr.count}
	}
	r.buf[r.Slot(offset)] = v
	return nil
}

// Front returns the first element.
func (r Ring[T]) Front() (T, error) {
	if r.hdr.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return r.buf[r.hdr.head], nil
}

// Back returns the last element.
func (r Ring[T]) Back() (T, error) {
	if r.hdr.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return r.buf[r.Slot(r.hdr.count-1)], nil
}

// PushBack appends v after the last element.
func (r Ring[T]) PushBack(v T) error {
	if r.Full() {
		return ErrFull
	}
	r.buf[r.Slot(r.hdr.count)] = v
	r.hdr.count++
	return nil
}

// PushFront prepends v before the first element.
func (r Ring[T]) PushFront(v T) error {
	if r.Full() {
		return ErrFull
	}
	r.hdr.head = (r.hdr.head - 1) & r.mask
	r.buf[r.hdr.head] = v
	r.hdr.count++
	return nil
}

// PopBack removes and returns the last element.
func (r Ring[T]) PopBack() (T, error) {
	var zero T
	if r.hdr.count == 0 {
		return zero, ErrEmpty
	}
	r.hdr.count--
	slot := r.Slot(r.hdr.count)
	v := r.buf[slot]
	r.buf[slot] = zero // release references for GC
	return v, nil
}

// PopFront removes and returns the first element.
func (r Ring[T]) PopFront() (T, error) {
	var zero T
	if r.hdr.count == 0 {
		return zero, ErrEmpty
	}
	slot := r.hdr.head
	v := r.buf[slot]
	r.buf[slot] = zero
	r.hdr.head = (r.hdr.head + 1) & r.mask
	r.hdr.count--
	return v, nil
}

// Insert places v at offset, shifting whichever side of offset is shorter by
// one slot. offset may equal Len to append.
func (r Ring[T]) Insert(offset int, v T) error {
	n := r.hdr.count
	if offset < 0 || offset > n {
		return &ErrOffsetOutOfRange{Offset: offset, Len: n}
	}
	if n == len(r.buf) {
		return ErrFull
	}

	if offset < n-offset {
		// Move [0, offset) one slot toward the head.
		r.hdr.head = (r.hdr.head - 1) & r.mask
		for k := 0; k < offset; k++ {
			r.buf[r.Slot(k)] = r.buf[r.Slot(k+1)]
		}
	} else {
		// Move [offset, n) one slot toward the tail.
		for k := n; k > offset; k-- {
			r.buf[r.Slot(k)] = r.buf[r.Slot(k-1)]
		}
	}
	r.buf[r.Slot(offset)] = v
	r.hdr.count++
	return nil
}

// Remove deletes and returns the element at offset, closing the gap from
// whichever side is shorter.
func (r Ring[T]) Remove(offset int) (T, error) {
	var zero T
	n := r.hdr.count
	if n == 0 {
		return zero, ErrEmpty
	}
	if offset < 0 || offset >= n {
		return zero, &ErrOffsetOutOfRange{Offset: offset, Len: n}
	}

	v := r.buf[r.Slot(offset)]
	if offset < n-1-offset {
		for k := offset; k > 0; k-- {
			r.buf[r.Slot(k)] = r.buf[r.Slot(k-1)]
		}
		r.buf[r.hdr.head] = zero
		r.hdr.head = (r.hdr.head + 1) & r.mask
	} else {
		for k := offset; k < n-1; k++ {
			r.buf[r.Slot(k)] = r.buf[r.Slot(k+1)]
		}
		r.buf[r.Slot(n-1)] = zero
	}
	r.hdr.count--
	return v, nil
}

// CopyTo copies the tier's elements in logical order into dst and returns the
// number copied. It uses at most two copies regardless of where the ring wraps.
func (r Ring[T]) CopyTo(dst []T) int {
	n := min(r.hdr.count, len(dst))
	if n == 0 {
		return 0
	}
	head := r.hdr.head
	first := min(n, len(r.buf)-head)
	copy(dst[:first], r.buf[head:head+first])
	copy(dst[first:n], r.buf[:n-first])
	return n
}

// Reset empties the tier and zeroes its slots.
func (r Ring[T]) Reset() {
	clear(r.buf)
	*r.hdr = Header{}
}
