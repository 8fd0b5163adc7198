// Package tiervec provides an implicit tiered vector: a generic sequence
// container with constant-time indexed access and O(√n) positional insert and
// delete.
//
// # Quick Start
//
//	v, _ := tiervec.New[string]()
//	_ = v.PushBack("b")
//	_ = v.PushFront("a")
//	_ = v.Insert(1, "x")  // a x b
//	s, _ := v.Get(2)      // "b"
//	_, _ = v.Delete(0)    // x b
//
// # Layout
//
// Elements are kept in one contiguous buffer split into equally sized tiers.
// Every tier is a ring buffer, and a compact offset table records each tier's
// head slot and element count. Tier count and tier capacity are powers of two
// and track the square root of the total capacity, so an insert in the middle
// moves O(√n) elements within one tier and one element across each tier
// boundary on the way to the nearer end.
//
//	tier:    0          1          2          3
//	       [ . . a b ][ c d e f ][ g h i j ][ k . . . ]
//	         partial     full       full      partial
//
// Only the first and the last occupied tier may be partial. The tiers form a
// ring of their own, so pushes at the front claim free tiers as cheaply as
// pushes at the back.
//
// # Resizing
//
// When the required end has no free slot the tier count doubles and every
// element is repacked. When the vector falls to a quarter of its capacity and
// would be at most half full after halving, the tier count halves. A resize
// reserves the new tier set before releasing the old one; on failure the
// vector is left untouched and the call returns ErrAllocationFailure.
//
// # Observability
//
//	metrics := &tiervec.BasicMetricsCollector{}
//	v, _ := tiervec.New[int](
//	    tiervec.WithMetricsCollector(metrics),
//	    tiervec.WithLogger(tiervec.NewJSONLogger(slog.LevelDebug)),
//	)
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Memory budgets created with
// resource.NewController may be shared between vectors used from different
// goroutines.
package tiervec
