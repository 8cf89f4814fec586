package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnsFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, ColumnsFor(0))
	require.Equal(t, 1, ColumnsFor(30))
	require.Equal(t, 2, ColumnsFor(2*CardWidth+4))
	require.Equal(t, 4, ColumnsFor(120))
}

func TestMoveClampsAtEdges(t *testing.T) {
	t.Parallel()

	// 7 items in 3 columns:
	//  0 1 2
	//  3 4 5
	//  6
	require.Equal(t, 0, Move(0, 7, 3, "left"))
	require.Equal(t, 1, Move(0, 7, 3, "right"))
	require.Equal(t, 6, Move(6, 7, 3, "right"))
	require.Equal(t, 3, Move(0, 7, 3, "down"))
	require.Equal(t, 6, Move(4, 7, 3, "down"), "down past the last row clamps to the last item")
	require.Equal(t, 1, Move(4, 7, 3, "up"))
	require.Equal(t, 1, Move(1, 7, 3, "up"), "up from the top row stays in the same column")
}

func TestMoveHomeEnd(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Move(5, 7, 3, "home"))
	require.Equal(t, 6, Move(0, 7, 3, "end"))
}

func TestMovePaging(t *testing.T) {
	t.Parallel()

	// 12 items in 3 columns, page is 3 rows
	require.Equal(t, 11, Move(4, 12, 3, "pagedown"))
	require.Equal(t, 1, Move(10, 12, 3, "pageup"))
}

func TestMoveEmptyGrid(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Move(0, 0, 3, "down"))
	require.Equal(t, 0, Move(0, 0, 3, "end"))
}

func TestRowHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, RowOf(2, 3))
	require.Equal(t, 1, RowOf(3, 3))
	require.Equal(t, 3, RowCount(7, 3))
	require.Equal(t, 0, RowCount(0, 3))
}

func TestScrollTo(t *testing.T) {
	t.Parallel()

	// 3 columns, viewport of 2 rows
	require.Equal(t, 0, ScrollTo(0, 3, 0, 2), "visible row keeps the offset")
	require.Equal(t, 1, ScrollTo(6, 3, 0, 2), "row below scrolls down just enough")
	require.Equal(t, 0, ScrollTo(1, 3, 1, 2), "row above scrolls up to it")
}
