package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Ints returns n pseudo-random ints.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Int()
	}
	return out
}

// Positions returns n positions for a sequence whose length starts at length
// and grows by one after each position, as produced by n inserts. Each
// position p satisfies 0 <= p <= current length.
func (r *RNG) Positions(n, length int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(length + i + 1)
	}
	return out
}

// OpKind enumerates the operations of a random workload.
type OpKind int

const (
	OpPushBack OpKind = iota
	OpPushFront
	OpPopBack
	OpPopFront
	OpInsert
	OpDelete
	OpSet
	OpGet
	numOpKinds
)

func (k OpKind) String() string {
	switch k {
	case OpPushBack:
		return "push_back"
	case OpPushFront:
		return "push_front"
	case OpPopBack:
		return "pop_back"
	case OpPopFront:
		return "pop_front"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSet:
		return "set"
	case OpGet:
		return "get"
	default:
		return "unknown"
	}
}

// Op picks a random operation. Growing operations are weighted by growBias in
// [0, 1]: 0.5 keeps the expected length stable, larger values let it grow.
func (r *RNG) Op(growBias float64) OpKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch u := r.rand.Float64(); {
	case u < growBias/3:
		return OpPushBack
	case u < 2*growBias/3:
		return OpPushFront
	case u < growBias:
		return OpInsert
	case u < growBias+(1-growBias)/3:
		return OpDelete
	case u < growBias+(1-growBias)/2:
		return OpPopBack
	case u < growBias+2*(1-growBias)/3:
		return OpPopFront
	case u < growBias+5*(1-growBias)/6:
		return OpSet
	default:
		return OpGet
	}
}
