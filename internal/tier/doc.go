// Package tier implements the fixed-capacity ring buffers a tiered vector is built from.
//
// A tier does not own its storage. The vector keeps every tier's slots in one
// contiguous slice and every tier's ring metadata (a Header) in a parallel
// slice, both addressed by the same tier index. Ring is a small value view
// that binds one window of the slot slice to one Header:
//
//	buf := make([]int, tierCount*tierCap)
//	hdrs := make([]tier.Header, tierCount)
//	r := tier.View(buf[p*tierCap:(p+1)*tierCap], &hdrs[p])
//	_ = r.PushBack(42)
//
// The capacity of a tier must be a power of two so ring positions can be
// masked instead of reduced modulo the capacity.
package tier
