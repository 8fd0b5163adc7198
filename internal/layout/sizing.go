package layout

import (
	"math"
	"math/bits"
)

// MinTierSize is the smallest tier count or tier capacity a vector may use.
const MinTierSize = 2

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo rounds n up to a power of two. Values below one round to one.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1)) //nolint:gosec // n > 1
}

// TierCapacityFor returns the tier width used with tierCount tiers.
//
// Width equals tier count, so both track the square root of the total
// capacity, but never drops below minTierCapacity.
func TierCapacityFor(tierCount, minTierCapacity int) int {
	return max(tierCount, minTierCapacity)
}

// Geometry describes the shape of a tier set.
type Geometry struct {
	TierCount    int
	TierCapacity int
	Capacity     int
}

// GeometryFor returns the geometry for tierCount tiers. ok is false if the
// total capacity overflows int.
func GeometryFor(tierCount, minTierCapacity int) (g Geometry, ok bool) {
	tierCap := TierCapacityFor(tierCount, minTierCapacity)
	if tierCount <= 0 || tierCap <= 0 || tierCount > math.MaxInt/tierCap {
		return Geometry{}, false
	}
	return Geometry{TierCount: tierCount, TierCapacity: tierCap, Capacity: tierCount * tierCap}, true
}

// TierCountFor returns the smallest power-of-two tier count, not below
// minTierCount, whose geometry holds at least minCapacity elements.
func TierCountFor(minCapacity, minTierCount, minTierCapacity int) (int, bool) {
	count := minTierCount
	for {
		g, ok := GeometryFor(count, minTierCapacity)
		if !ok {
			return 0, false
		}
		if g.Capacity >= minCapacity {
			return count, true
		}
		count <<= 1
	}
}

// ShouldShrink reports whether a vector holding length elements in tierCount
// tiers should halve its tier count.
//
// It requires length to be at most a quarter of the current capacity and the
// halved geometry to be at most half full, so a single push after a shrink can
// never trigger a grow.
func ShouldShrink(length, tierCount, minTierCount, minTierCapacity int) bool {
	if tierCount <= minTierCount {
		return false
	}
	cur, ok := GeometryFor(tierCount, minTierCapacity)
	if !ok || length > cur.Capacity/4 {
		return false
	}
	next, ok := GeometryFor(tierCount/2, minTierCapacity)
	return ok && length <= next.Capacity/2
}
