// Package resource implements the memory budget for tier storage.
//
// A vector reserves the bytes of a new tier set before allocating it and
// releases the old set's reservation once the swap is complete. During a
// resize both sets are reserved at the same time, so a limit must leave room
// for the old and new buffers together.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(n); err != nil {
//	    // ErrMemoryLimitExceeded: fail the resize, keep the old tiers
//	}
//	defer rc.ReleaseMemory(n)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one budget can be
// shared by vectors owned by different goroutines.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limiting without nil checks everywhere.
package resource
