package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RowsThatFit(t *testing.T) {
	assert.Equal(t, 10, CellMetrics.RowsThatFit(13))
	assert.Equal(t, 0, CellMetrics.RowsThatFit(3))
	assert.Equal(t, 0, CellMetrics.RowsThatFit(1), "never negative")

	pixels := Metrics{HeaderHeight: 10, RowHeight: 13, FooterHeight: 10}
	assert.Equal(t, 36, pixels.RowsThatFit(500))
}

func TestMetrics_RowIndex(t *testing.T) {
	assert.Equal(t, -1, CellMetrics.RowIndex(0), "header line")
	assert.Equal(t, 0, CellMetrics.RowIndex(1))
	assert.Equal(t, 5, CellMetrics.RowIndex(6))

	pixels := Metrics{HeaderHeight: 10, RowHeight: 13, FooterHeight: 10}
	assert.Equal(t, -1, pixels.RowIndex(5))
	assert.Equal(t, 0, pixels.RowIndex(10))
	assert.Equal(t, 0, pixels.RowIndex(22))
	assert.Equal(t, 1, pixels.RowIndex(23))
}

func TestComputeLayout(t *testing.T) {
	viewport := Size{Width: 40, Height: 13}

	t.Run("fits", func(t *testing.T) {
		l := ComputeLayout(CellMetrics, viewport, 0, 4)
		require.Len(t, l.Rows, 4)
		assert.Equal(t, Row{Index: 0, Top: 1, Bottom: 2}, l.Rows[0])
		assert.Equal(t, Row{Index: 3, Top: 4, Bottom: 5}, l.Rows[3])
		assert.Equal(t, 5, l.ListBottom)
		assert.False(t, l.CanScroll)
		assert.Equal(t, 0, l.MaxScroll)
	})

	t.Run("overflows", func(t *testing.T) {
		l := ComputeLayout(CellMetrics, viewport, 0, 30)
		assert.Len(t, l.Rows, 10)
		assert.Equal(t, 10, l.RowsThatFit)
		assert.True(t, l.CanScroll)
		assert.Equal(t, 22, l.MaxScroll)
		assert.Equal(t, 11, l.ListBottom, "last row ends on the separator line")
	})

	t.Run("scrolled", func(t *testing.T) {
		l := ComputeLayout(CellMetrics, viewport, 22, 30)
		require.Len(t, l.Rows, 8)
		assert.Equal(t, 22, l.Rows[0].Index)
		assert.Equal(t, 1, l.Rows[0].Top)
		assert.Equal(t, 29, l.Rows[7].Index)
	})

	t.Run("exactly_full_can_scroll", func(t *testing.T) {
		l := ComputeLayout(CellMetrics, viewport, 0, 10)
		assert.True(t, l.CanScroll)
		assert.Equal(t, 2, l.MaxScroll)
	})

	t.Run("empty", func(t *testing.T) {
		l := ComputeLayout(CellMetrics, viewport, 0, 0)
		assert.Empty(t, l.Rows)
		assert.Equal(t, CellMetrics.HeaderHeight, l.ListBottom)
	})

	t.Run("tiny_viewport", func(t *testing.T) {
		l := ComputeLayout(CellMetrics, Size{Width: 10, Height: 2}, 0, 5)
		assert.Empty(t, l.Rows)
		assert.Equal(t, 0, l.RowsThatFit)
	})
}

func TestLayout_RowAt(t *testing.T) {
	l := ComputeLayout(CellMetrics, Size{Width: 40, Height: 13}, 3, 30)

	row, ok := l.RowAt(1)
	require.True(t, ok)
	assert.Equal(t, 3, row.Index)

	row, ok = l.RowAt(10)
	require.True(t, ok)
	assert.Equal(t, 12, row.Index)

	_, ok = l.RowAt(0)
	assert.False(t, ok, "header")
	_, ok = l.RowAt(11)
	assert.False(t, ok, "separator")
	_, ok = l.RowAt(-4)
	assert.False(t, ok)
}

func TestMaxScroll(t *testing.T) {
	assert.Equal(t, 22, MaxScroll(30, 10))
	assert.Equal(t, 0, MaxScroll(3, 10))
	assert.Equal(t, 1, MaxScroll(9, 10))
}

func TestNextBackingSize(t *testing.T) {
	allocated := Size{Width: 100, Height: 40}

	t.Run("grow_width", func(t *testing.T) {
		next, ok := NextBackingSize(allocated, Size{Width: 101, Height: 10})
		assert.True(t, ok)
		assert.Equal(t, Size{Width: 101, Height: 10}, next)
	})

	t.Run("grow_height", func(t *testing.T) {
		_, ok := NextBackingSize(allocated, Size{Width: 10, Height: 41})
		assert.True(t, ok)
	})

	t.Run("same", func(t *testing.T) {
		next, ok := NextBackingSize(allocated, allocated)
		assert.False(t, ok)
		assert.Equal(t, allocated, next)
	})

	t.Run("small_shrink_keeps_allocation", func(t *testing.T) {
		next, ok := NextBackingSize(allocated, Size{Width: 90, Height: 35})
		assert.False(t, ok)
		assert.Equal(t, allocated, next)
	})

	t.Run("just_above_quarter_keeps_allocation", func(t *testing.T) {
		// 51*20 = 1020 > 4000/4
		_, ok := NextBackingSize(allocated, Size{Width: 51, Height: 20})
		assert.False(t, ok)
	})

	t.Run("exactly_quarter_reallocates", func(t *testing.T) {
		// newArea*4 <= allocatedArea is inclusive
		next, ok := NextBackingSize(allocated, Size{Width: 50, Height: 20})
		assert.True(t, ok)
		assert.Equal(t, Size{Width: 50, Height: 20}, next)
	})

	t.Run("below_quarter_reallocates", func(t *testing.T) {
		_, ok := NextBackingSize(allocated, Size{Width: 10, Height: 10})
		assert.True(t, ok)
	})
}
