package tiervec

import (
	"time"

	"github.com/hupe1980/tiervec/internal/layout"
)

// Insert places val at index i, shifting later (or earlier) elements by one.
// i may equal Len to append.
//
// Elements move toward whichever end of the vector is nearer, one element per
// crossed tier boundary, so the cost is O(tier capacity + tier count).
func (v *Vector[T]) Insert(i int, val T) error {
	start := time.Now()
	err := v.insert(i, val)
	v.metrics.RecordInsert(time.Since(start), err)
	return err
}

// Delete removes and returns the element at index i.
func (v *Vector[T]) Delete(i int) (T, error) {
	start := time.Now()
	val, err := v.remove(i)
	v.metrics.RecordDelete(time.Since(start), err)
	return val, err
}

func (v *Vector[T]) insert(i int, val T) error {
	if v.closed {
		return ErrClosed
	}
	if i < 0 || i > v.length {
		return &ErrIndexOutOfRange{Op: "insert", Index: i, Limit: v.length + 1}
	}
	if i == v.length {
		return v.PushBack(val)
	}
	if i == 0 {
		return v.PushFront(val)
	}

	front, back := v.frontRoom(), v.backRoom()
	if !front && !back {
		if err := v.grow(); err != nil {
			return err
		}
		front, back = v.frontRoom(), v.backRoom()
	}

	pos := v.position(i)
	last := v.used - 1
	switch {
	case pos.Tier == 0 && !v.at(0).Full():
		must(v.at(0).Insert(pos.Offset, val))
	case pos.Tier == last && !v.at(last).Full():
		must(v.at(last).Insert(pos.Offset, val))
	case front && (i < v.length-i || !back):
		v.shiftFront(pos, val)
	default:
		v.shiftBack(pos, val)
	}

	v.length++
	v.memo.Invalidate()
	return nil
}

// shiftFront inserts val at pos by moving the first element of each tier up to
// pos into the back of its predecessor.
func (v *Vector[T]) shiftFront(pos layout.Position, val T) {
	t, off := pos.Tier, pos.Offset
	if off == 0 {
		// Insert at the end of the previous tier instead.
		t--
		off = v.at(t).Len()
	}
	if v.at(0).Full() {
		v.extendFront()
		t++
	}
	for k := 0; k < t; k++ {
		must(v.at(k).PushBack(mustValue(v.at(k + 1).PopFront())))
	}
	if t > 0 {
		off--
		v.metrics.RecordCascade(t)
	}
	must(v.at(t).Insert(off, val))
}

// shiftBack inserts val at pos by moving the last element of each tier from
// pos onward into the front of its successor.
func (v *Vector[T]) shiftBack(pos layout.Position, val T) {
	t := pos.Tier
	last := v.used - 1
	if v.at(last).Full() {
		v.extendBack()
		last++
	}
	for k := last; k > t; k-- {
		must(v.at(k).PushFront(mustValue(v.at(k - 1).PopBack())))
	}
	if last > t {
		v.metrics.RecordCascade(last - t)
	}
	must(v.at(t).Insert(pos.Offset, val))
}

func (v *Vector[T]) remove(i int) (T, error) {
	if v.closed {
		var zero T
		return zero, ErrClosed
	}
	if i < 0 || i >= v.length {
		var zero T
		return zero, &ErrIndexOutOfRange{Op: "delete", Index: i, Limit: v.length}
	}

	pos := v.position(i)
	val := mustValue(v.at(pos.Tier).Remove(pos.Offset))
	v.length--

	last := v.used - 1
	switch {
	case pos.Tier == 0 || pos.Tier == last:
		// Boundary tiers may be partial; nothing to refill.
	case i < v.length-i:
		for k := pos.Tier; k > 0; k-- {
			must(v.at(k).PushFront(mustValue(v.at(k - 1).PopBack())))
		}
		v.metrics.RecordCascade(pos.Tier)
	default:
		for k := pos.Tier; k < last; k++ {
			must(v.at(k).PushBack(mustValue(v.at(k + 1).PopFront())))
		}
		v.metrics.RecordCascade(last - pos.Tier)
	}

	if v.used > 0 && v.at(v.used-1).Empty() {
		v.used--
	}
	if v.used > 0 && v.at(0).Empty() {
		v.dropFront()
	}

	v.memo.Invalidate()
	v.maybeShrink()
	return val, nil
}
