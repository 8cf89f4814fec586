// Package logic holds pure grid geometry helpers for the results view.
package logic

// CardWidth is the rendered width of one result card including its border
const CardWidth = 28

// ColumnsFor returns how many cards fit side by side in the given width
func ColumnsFor(termWidth int) int {
	cols := (termWidth - 4) / CardWidth // account for main container padding
	if cols < 1 {
		cols = 1
	}
	return cols
}

// Move computes the new cursor index for a navigation direction within a
// grid of count items laid out in cols columns. Movement clamps at the
// edges rather than wrapping.
func Move(index, count, cols int, direction string) int {
	if count == 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}

	next := index
	switch direction {
	case "left":
		next = index - 1
	case "right":
		next = index + 1
	case "up":
		next = index - cols
	case "down":
		next = index + cols
	case "pageup":
		next = index - cols*3
	case "pagedown":
		next = index + cols*3
	case "home":
		next = 0
	case "end":
		next = count - 1
	}

	if next < 0 {
		if direction == "up" || direction == "pageup" {
			// Stay on the same column when there is no full row above
			next = index % cols
		} else {
			next = 0
		}
	}
	if next >= count {
		next = count - 1
	}
	return next
}

// RowOf returns the grid row containing index
func RowOf(index, cols int) int {
	if cols < 1 {
		cols = 1
	}
	return index / cols
}

// RowCount returns the number of grid rows needed for count items
func RowCount(count, cols int) int {
	if cols < 1 {
		cols = 1
	}
	return (count + cols - 1) / cols
}

// ScrollTo adjusts the viewport offset so the row containing index is
// visible. offset and the return value are row indices.
func ScrollTo(index, cols, offset, viewportRows int) int {
	if viewportRows < 1 {
		viewportRows = 1
	}
	row := RowOf(index, cols)
	if row < offset {
		return row
	}
	if row >= offset+viewportRows {
		return row - viewportRows + 1
	}
	return offset
}
