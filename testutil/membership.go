package testutil

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Membership tracks which element IDs are live in a sequence under test.
// It detects lost and duplicated elements independently of their order.
type Membership struct {
	rb *roaring.Bitmap
}

// NewMembership creates an empty membership set.
func NewMembership() *Membership {
	return &Membership{rb: roaring.New()}
}

// Add records id as live. It reports false if id was already live.
func (m *Membership) Add(id uint32) bool {
	return m.rb.CheckedAdd(id)
}

// Remove records id as gone. It reports false if id was not live.
func (m *Membership) Remove(id uint32) bool {
	return m.rb.CheckedRemove(id)
}

// Contains reports whether id is live.
func (m *Membership) Contains(id uint32) bool {
	return m.rb.Contains(id)
}

// Cardinality returns the number of live IDs.
func (m *Membership) Cardinality() uint64 {
	return m.rb.GetCardinality()
}

// Clear forgets every ID.
func (m *Membership) Clear() {
	m.rb.Clear()
}

// Verify checks that ids holds exactly the live IDs, each once.
func (m *Membership) Verify(ids []uint32) error {
	seen := roaring.New()
	for _, id := range ids {
		if !seen.CheckedAdd(id) {
			return fmt.Errorf("id %d appears more than once", id)
		}
		if !m.rb.Contains(id) {
			return fmt.Errorf("id %d is not live", id)
		}
	}
	if !seen.Equals(m.rb) {
		missing := roaring.AndNot(m.rb, seen)
		return fmt.Errorf("%d live ids missing, first %d", missing.GetCardinality(), missing.Minimum())
	}
	return nil
}
