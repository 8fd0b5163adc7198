package layout

// Memo remembers the tier resolved by the most recent lookup so sequential
// access can skip the mapper while it stays inside that tier.
type Memo struct {
	phys  int
	start int
	end   int
	valid bool
}

// Lookup returns the physical tier and in-tier offset of i if i falls inside
// the remembered tier's logical range.
func (m *Memo) Lookup(i int) (phys, offset int, ok bool) {
	if !m.valid || i < m.start || i >= m.end {
		return 0, 0, false
	}
	return m.phys, i - m.start, true
}

// Remember records pos, whose tier currently holds count elements.
func (m *Memo) Remember(pos Position, count int) {
	m.phys = pos.Phys
	m.start = pos.Start
	m.end = pos.End(count)
	m.valid = true
}

// Invalidate forgets the remembered tier. Call it whenever tier boundaries move.
func (m *Memo) Invalidate() {
	m.valid = false
}

// Valid reports whether the memo holds a tier.
func (m *Memo) Valid() bool { return m.valid }
