package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRing(capacity int) (Ring[int], *Header, []int) {
	buf := make([]int, capacity)
	hdr := &Header{}
	return View(buf, hdr), hdr, buf
}

func contents(r Ring[int]) []int {
	out := make([]int, r.Len())
	r.CopyTo(out)
	return out
}

func TestRing_PushAndPop(t *testing.T) {
	r, _, _ := newRing(4)

	assert.True(t, r.Empty())
	assert.Equal(t, 4, r.Cap())

	require.NoError(t, r.PushBack(1))
	require.NoError(t, r.PushBack(2))
	require.NoError(t, r.PushFront(0))
	require.NoError(t, r.PushFront(-1))
	assert.True(t, r.Full())
	assert.Equal(t, []int{-1, 0, 1, 2}, contents(r))

	assert.ErrorIs(t, r.PushBack(3), ErrFull)
	assert.ErrorIs(t, r.PushFront(3), ErrFull)

	v, err := r.PopFront()
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	v, err = r.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.Equal(t, []int{0, 1}, contents(r))

	_, _ = r.PopBack()
	_, _ = r.PopBack()
	_, err = r.PopBack()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = r.PopFront()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRing_PopZeroesSlot(t *testing.T) {
	r, _, buf := newRing(4)
	require.NoError(t, r.PushBack(7))
	require.NoError(t, r.PushBack(8))

	_, err := r.PopFront()
	require.NoError(t, err)
	_, err = r.PopBack()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0, 0}, buf)
}

func TestRing_GetSet(t *testing.T) {
	r, hdr, _ := newRing(8)
	*hdr = NewHeader(6, 0) // force wrap-around

	for i := range 5 {
		require.NoError(t, r.PushBack(i))
	}

	for i := range 5 {
		v, err := r.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}

	require.NoError(t, r.Set(3, 33))
	v, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 33, v)

	var oor *ErrOffsetOutOfRange
	_, err = r.Get(5)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 5, oor.Offset)
	assert.Equal(t, 5, oor.Len)
	assert.ErrorAs(t, r.Set(-1, 0), &oor)
}

func TestRing_FrontBack(t *testing.T) {
	r, _, _ := newRing(2)

	_, err := r.Front()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = r.Back()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, r.PushBack(1))
	require.NoError(t, r.PushFront(2))

	f, err := r.Front()
	require.NoError(t, err)
	assert.Equal(t, 2, f)

	b, err := r.Back()
	require.NoError(t, err)
	assert.Equal(t, 1, b)
}

func TestRing_Insert(t *testing.T) {
	tests := []struct {
		name    string
		head    int
		initial []int
		offset  int
		want    []int
	}{
		{name: "ShiftHead", head: 0, initial: []int{1, 2, 3, 4, 5}, offset: 1, want: []int{1, 99, 2, 3, 4, 5}},
		{name: "ShiftTail", head: 0, initial: []int{1, 2, 3, 4, 5}, offset: 4, want: []int{1, 2, 3, 4, 99, 5}},
		{name: "Front", head: 3, initial: []int{1, 2, 3}, offset: 0, want: []int{99, 1, 2, 3}},
		{name: "Append", head: 3, initial: []int{1, 2, 3}, offset: 3, want: []int{1, 2, 3, 99}},
		{name: "Wrapping", head: 6, initial: []int{1, 2, 3, 4, 5, 6}, offset: 3, want: []int{1, 2, 3, 99, 4, 5, 6}},
		{name: "Empty", head: 5, initial: nil, offset: 0, want: []int{99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, hdr, _ := newRing(8)
			*hdr = NewHeader(tt.head, 0)
			for _, v := range tt.initial {
				require.NoError(t, r.PushBack(v))
			}

			require.NoError(t, r.Insert(tt.offset, 99))
			assert.Equal(t, tt.want, contents(r))
		})
	}
}

func TestRing_InsertErrors(t *testing.T) {
	r, _, _ := newRing(2)
	require.NoError(t, r.PushBack(1))

	var oor *ErrOffsetOutOfRange
	assert.ErrorAs(t, r.Insert(2, 0), &oor)
	assert.ErrorAs(t, r.Insert(-1, 0), &oor)

	require.NoError(t, r.Insert(0, 0))
	assert.ErrorIs(t, r.Insert(1, 5), ErrFull)
}

func TestRing_Remove(t *testing.T) {
	tests := []struct {
		name    string
		head    int
		initial []int
		offset  int
		want    []int
		removed int
	}{
		{name: "NearHead", head: 0, initial: []int{1, 2, 3, 4, 5}, offset: 1, want: []int{1, 3, 4, 5}, removed: 2},
		{name: "NearTail", head: 0, initial: []int{1, 2, 3, 4, 5}, offset: 3, want: []int{1, 2, 3, 5}, removed: 4},
		{name: "First", head: 7, initial: []int{1, 2, 3}, offset: 0, want: []int{2, 3}, removed: 1},
		{name: "Last", head: 7, initial: []int{1, 2, 3}, offset: 2, want: []int{1, 2}, removed: 3},
		{name: "Wrapping", head: 5, initial: []int{1, 2, 3, 4, 5, 6, 7}, offset: 4, want: []int{1, 2, 3, 4, 6, 7}, removed: 5},
		{name: "Single", head: 4, initial: []int{1}, offset: 0, want: []int{}, removed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, hdr, buf := newRing(8)
			*hdr = NewHeader(tt.head, 0)
			for _, v := range tt.initial {
				require.NoError(t, r.PushBack(v))
			}

			v, err := r.Remove(tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.removed, v)
			assert.Equal(t, tt.want, contents(r))

			// Exactly Len slots stay non-zero.
			nonZero := 0
			for _, x := range buf {
				if x != 0 {
					nonZero++
				}
			}
			assert.Equal(t, len(tt.want), nonZero)
		})
	}
}

func TestRing_RemoveErrors(t *testing.T) {
	r, _, _ := newRing(4)

	_, err := r.Remove(0)
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, r.PushBack(1))
	var oor *ErrOffsetOutOfRange
	_, err = r.Remove(1)
	assert.ErrorAs(t, err, &oor)
}

func TestRing_CopyTo(t *testing.T) {
	r, hdr, _ := newRing(4)
	*hdr = NewHeader(3, 0)
	for i := 1; i <= 4; i++ {
		require.NoError(t, r.PushBack(i))
	}

	dst := make([]int, 4)
	assert.Equal(t, 4, r.CopyTo(dst))
	assert.Equal(t, []int{1, 2, 3, 4}, dst)

	short := make([]int, 2)
	assert.Equal(t, 2, r.CopyTo(short))
	assert.Equal(t, []int{1, 2}, short)
}

func TestRing_Reset(t *testing.T) {
	r, hdr, buf := newRing(4)
	require.NoError(t, r.PushFront(5))
	require.NoError(t, r.PushFront(6))

	r.Reset()

	assert.Equal(t, Header{}, *hdr)
	assert.True(t, r.Empty())
	assert.Equal(t, []int{0, 0, 0, 0}, buf)
}
