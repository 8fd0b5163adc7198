// Package testutil provides testing utilities for tiervec.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random workloads, a slice-backed reference model
// and a bitmap that tracks live element IDs.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	op := rng.Op(0.6)              // biased toward growing operations
//	pos := rng.Positions(1000, 0)  // insert positions for 1000 inserts
//
// # Differential Checks
//
//	model := testutil.NewModel[uint32]()
//	live := testutil.NewMembership()
//	// apply each operation to the vector and the model
//	err := live.Verify(v.Values())
package testutil
