package layout

import (
	"errors"

	"github.com/hupe1980/tiervec/internal/tier"
)

// ErrIndexOutOfRange is returned when a logical index is not in [0, Length).
var ErrIndexOutOfRange = errors.New("layout: index out of range")

// Table is a read-only view of a vector's offset table.
//
// The physical tiers form a ring: logical tier t lives at physical tier
// (First + t) & (len(Headers)-1). Only the Used tiers starting at First hold
// elements.
type Table struct {
	Headers      []tier.Header
	First        int
	Used         int
	TierCapacity int
	Length       int
}

// Phys maps a logical tier to its physical tier.
func (tb Table) Phys(t int) int {
	return (tb.First + t) & (len(tb.Headers) - 1)
}

// Count returns the element count of logical tier t.
func (tb Table) Count(t int) int {
	return tb.Headers[tb.Phys(t)].Len()
}

// Position identifies where a logical index is stored.
type Position struct {
	Tier   int // logical tier
	Phys   int // physical tier
	Offset int // offset within the tier
	Start  int // logical index of the tier's first element
}

// End returns the logical index one past the last element of the tier,
// given the tier's count.
func (p Position) End(count int) int {
	return p.Start + count
}

// Locate resolves logical index i.
//
// Interior tiers are expected to be full, so everything after the first tier
// is found by division. If the computed tier cannot hold the offset the
// mapper falls back to Walk.
func Locate(tb Table, i int) (Position, error) {
	if i < 0 || i >= tb.Length {
		return Position{}, ErrIndexOutOfRange
	}

	c0 := tb.Count(0)
	if i < c0 {
		return Position{Tier: 0, Phys: tb.Phys(0), Offset: i, Start: 0}, nil
	}

	j := i - c0
	t := 1 + j/tb.TierCapacity
	o := j % tb.TierCapacity
	if t < tb.Used && o < tb.Count(t) {
		return Position{Tier: t, Phys: tb.Phys(t), Offset: o, Start: i - o}, nil
	}

	return Walk(tb, i)
}

// Walk resolves logical index i by accumulating tier counts from whichever
// end of the vector is nearer to i. It makes no assumption about how full
// interior tiers are.
func Walk(tb Table, i int) (Position, error) {
	if i < 0 || i >= tb.Length {
		return Position{}, ErrIndexOutOfRange
	}

	if i < tb.Length-i {
		start := 0
		for t := 0; t < tb.Used; t++ {
			c := tb.Count(t)
			if i < start+c {
				return Position{Tier: t, Phys: tb.Phys(t), Offset: i - start, Start: start}, nil
			}
			start += c
		}
	} else {
		end := tb.Length
		for t := tb.Used - 1; t >= 0; t-- {
			start := end - tb.Count(t)
			if i >= start {
				return Position{Tier: t, Phys: tb.Phys(t), Offset: i - start, Start: start}, nil
			}
			end = start
		}
	}

	// Counts do not add up to Length.
	return Position{}, ErrIndexOutOfRange
}
