package layout

import (
	"testing"

	"github.com/hupe1980/tiervec/internal/tier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// table builds a Table whose logical tiers hold counts, starting at physical
// tier first of a ring of tierCount tiers.
func table(tierCount, tierCap, first int, counts ...int) Table {
	hdrs := make([]tier.Header, tierCount)
	length := 0
	for t, c := range counts {
		hdrs[(first+t)&(tierCount-1)] = tier.NewHeader(t%tierCap, c)
		length += c
	}
	return Table{Headers: hdrs, First: first, Used: len(counts), TierCapacity: tierCap, Length: length}
}

func TestLocate(t *testing.T) {
	tb := table(4, 4, 3, 2, 4, 4, 1) // physical order 3,0,1,2

	tests := []struct {
		i    int
		want Position
	}{
		{i: 0, want: Position{Tier: 0, Phys: 3, Offset: 0, Start: 0}},
		{i: 1, want: Position{Tier: 0, Phys: 3, Offset: 1, Start: 0}},
		{i: 2, want: Position{Tier: 1, Phys: 0, Offset: 0, Start: 2}},
		{i: 5, want: Position{Tier: 1, Phys: 0, Offset: 3, Start: 2}},
		{i: 6, want: Position{Tier: 2, Phys: 1, Offset: 0, Start: 6}},
		{i: 10, want: Position{Tier: 3, Phys: 2, Offset: 0, Start: 10}},
	}

	for _, tt := range tests {
		got, err := Locate(tb, tt.i)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "index %d", tt.i)
	}
}

func TestLocate_OutOfRange(t *testing.T) {
	tb := table(4, 4, 0, 3)

	_, err := Locate(tb, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Locate(tb, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Walk(tb, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	empty := table(4, 4, 0)
	_, err = Locate(empty, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLocate_MatchesWalk(t *testing.T) {
	shapes := []struct {
		name string
		tb   Table
	}{
		{name: "SinglePartial", tb: table(4, 8, 2, 5)},
		{name: "BothBoundariesPartial", tb: table(8, 8, 6, 3, 8, 8, 8, 1)},
		{name: "AllFull", tb: table(4, 4, 1, 4, 4, 4, 4)},
		{name: "TwoTiers", tb: table(2, 4, 1, 1, 2)},
	}

	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			for i := 0; i < s.tb.Length; i++ {
				fast, err := Locate(s.tb, i)
				require.NoError(t, err)
				slow, err := Walk(s.tb, i)
				require.NoError(t, err)
				assert.Equal(t, slow, fast, "index %d", i)
			}
		})
	}
}

func TestLocate_FallsBackToWalk(t *testing.T) {
	// Tier 2 is short; division lands on an offset tier 2 does not hold.
	tb := table(4, 4, 0, 4, 4, 2, 1)

	got, err := Locate(tb, 10)
	require.NoError(t, err)
	assert.Equal(t, Position{Tier: 3, Phys: 3, Offset: 0, Start: 10}, got)
}

func TestMemo(t *testing.T) {
	var m Memo

	_, _, ok := m.Lookup(0)
	assert.False(t, ok)
	assert.False(t, m.Valid())

	tb := table(4, 4, 0, 4, 4, 2)
	pos, err := Locate(tb, 5)
	require.NoError(t, err)
	m.Remember(pos, tb.Count(pos.Tier))

	for i := 4; i < 8; i++ {
		phys, off, ok := m.Lookup(i)
		require.True(t, ok, "index %d", i)
		want, err := Locate(tb, i)
		require.NoError(t, err)
		assert.Equal(t, want.Phys, phys)
		assert.Equal(t, want.Offset, off)
	}

	_, _, ok = m.Lookup(3)
	assert.False(t, ok)
	_, _, ok = m.Lookup(8)
	assert.False(t, ok)

	m.Invalidate()
	_, _, ok = m.Lookup(5)
	assert.False(t, ok)
}

func TestPowerOfTwo(t *testing.T) {
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(12))
	assert.False(t, IsPowerOfTwo(-4))

	assert.Equal(t, 1, NextPowerOfTwo(0))
	assert.Equal(t, 1, NextPowerOfTwo(1))
	assert.Equal(t, 8, NextPowerOfTwo(5))
	assert.Equal(t, 8, NextPowerOfTwo(8))
	assert.Equal(t, 16, NextPowerOfTwo(9))
}

func TestGeometry(t *testing.T) {
	g, ok := GeometryFor(4, 8)
	require.True(t, ok)
	assert.Equal(t, Geometry{TierCount: 4, TierCapacity: 8, Capacity: 32}, g)

	g, ok = GeometryFor(32, 8)
	require.True(t, ok)
	assert.Equal(t, Geometry{TierCount: 32, TierCapacity: 32, Capacity: 1024}, g)

	_, ok = GeometryFor(1<<62, 2)
	assert.False(t, ok)
}

func TestTierCountFor(t *testing.T) {
	tests := []struct {
		minCapacity int
		want        int
	}{
		{minCapacity: 0, want: 2},
		{minCapacity: 4, want: 2},
		{minCapacity: 5, want: 4},
		{minCapacity: 16, want: 4},
		{minCapacity: 17, want: 8},
		{minCapacity: 256, want: 16},
	}
	for _, tt := range tests {
		got, ok := TierCountFor(tt.minCapacity, 2, 2)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "min capacity %d", tt.minCapacity)
	}
}

func TestShouldShrink(t *testing.T) {
	// Floor regime: width pinned at 16, capacity halves with the tier count.
	assert.True(t, ShouldShrink(32, 8, 4, 16))
	assert.False(t, ShouldShrink(33, 8, 4, 16))

	// Square regime: capacity quarters, so the halved geometry must stay half empty.
	assert.False(t, ShouldShrink(256, 32, 4, 16)) // 256 <= 1024/4 but 256 > 256/2
	assert.True(t, ShouldShrink(128, 32, 4, 16))

	// Never below the minimum.
	assert.False(t, ShouldShrink(0, 4, 4, 16))
}
