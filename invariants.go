package tiervec

import (
	"fmt"

	"github.com/hupe1980/tiervec/internal/layout"
)

// checkInvariants verifies the structural invariants of the tier set.
// It is O(n) and meant for tests.
func (v *Vector[T]) checkInvariants() error {
	if v.closed {
		if v.buf != nil || v.headers != nil || v.length != 0 {
			return fmt.Errorf("closed vector still holds storage")
		}
		return nil
	}

	n := len(v.headers)
	if !layout.IsPowerOfTwo(n) || n < v.minTierCount {
		return fmt.Errorf("tier count %d: want a power of two >= %d", n, v.minTierCount)
	}
	if want := layout.TierCapacityFor(n, v.minTierCapacity); v.tierCap != want {
		return fmt.Errorf("tier capacity %d: want %d for %d tiers", v.tierCap, want, n)
	}
	if len(v.buf) != n*v.tierCap {
		return fmt.Errorf("buffer holds %d slots: want %d", len(v.buf), n*v.tierCap)
	}
	if v.used < 0 || v.used > n || v.first < 0 || v.first >= n {
		return fmt.Errorf("occupied run first=%d used=%d outside %d tiers", v.first, v.used, n)
	}

	total := 0
	for t := 0; t < n; t++ {
		h := v.headers[v.phys(t)]
		c := h.Len()
		switch {
		case c < 0 || c > v.tierCap:
			return fmt.Errorf("tier %d holds %d of %d", t, c, v.tierCap)
		case h.Head() < 0 || h.Head() >= v.tierCap:
			return fmt.Errorf("tier %d head %d outside [0, %d)", t, h.Head(), v.tierCap)
		case t >= v.used && c != 0:
			return fmt.Errorf("free tier %d holds %d elements", t, c)
		case t < v.used && c == 0:
			return fmt.Errorf("occupied tier %d is empty", t)
		case t > 0 && t < v.used-1 && c != v.tierCap:
			return fmt.Errorf("interior tier %d holds %d of %d", t, c, v.tierCap)
		}
		total += c
	}
	if total != v.length {
		return fmt.Errorf("tiers hold %d elements: length is %d", total, v.length)
	}

	if v.memo.Valid() {
		for i := 0; i < v.length; i++ {
			p, off, ok := v.memo.Lookup(i)
			if !ok {
				continue
			}
			pos, err := layout.Walk(v.table(), i)
			if err != nil || pos.Phys != p || pos.Offset != off {
				return fmt.Errorf("memo maps %d to (%d, %d): want (%d, %d)", i, p, off, pos.Phys, pos.Offset)
			}
		}
	}
	return nil
}
