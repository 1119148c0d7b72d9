package entity

import "strings"

// BoardSize is the fixed width and height of the grid.
const BoardSize = 8

// directions are the eight unit vectors a capture can run along.
var directions = [8]Position{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// Board is the 8x8 grid. Cells are addressed as cells[x][y] and only after IsInside.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// IsInside - checks the coordinates against the fixed extent of the board.
func (that *Board) IsInside(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Color - returns the stone at (x, y). Out-of-range coordinates read as empty.
func (that *Board) Color(x, y int) (Color, bool) {
	if !that.IsInside(x, y) {
		return Black, false
	}
	return that.cells[x][y].Color()
}

// Set - writes a stone without any rule check. Used for the initial layout.
func (that *Board) Set(x, y int, color Color) bool {
	if !that.IsInside(x, y) {
		return false
	}

	that.cells[x][y].Set(color)

	return true
}

// CanPutAt - reports whether color may place a stone at (x, y).
func (that *Board) CanPutAt(x, y int, color Color) bool {
	if !that.IsInside(x, y) {
		return false
	}

	if !that.cells[x][y].IsEmpty() {
		return false
	}

	for _, dir := range directions {
		if that.captureLength(x, y, dir, color) > 0 {
			return true
		}
	}

	return false
}

// Put - places a stone for color at (x, y) and flips every captured run.
// Returns false without touching the board when the placement is illegal.
func (that *Board) Put(x, y int, color Color) bool {
	if !that.CanPutAt(x, y, color) {
		return false
	}

	for _, dir := range directions {
		n := that.captureLength(x, y, dir, color)
		for step := 1; step <= n; step++ {
			that.cells[x+dir.X*step][y+dir.Y*step].Set(color)
		}
	}

	that.cells[x][y].Put(color)

	return true
}

// CanPut - reports whether color has at least one legal placement anywhere.
func (that *Board) CanPut(color Color) bool {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if that.CanPutAt(x, y, color) {
				return true
			}
		}
	}

	return false
}

// Clear - empties every cell.
func (that *Board) Clear() {
	for x := range that.cells {
		for y := range that.cells[x] {
			that.cells[x][y].Clear()
		}
	}
}

// captureLength walks from (x, y) along dir and returns how many opponent stones
// would be flipped in that direction. Zero means the direction does not capture.
func (that *Board) captureLength(x, y int, dir Position, color Color) int {
	n := 0
	cx, cy := x+dir.X, y+dir.Y
	for {
		stone, ok := that.Color(cx, cy)
		if !ok {
			// empty cell or edge of the board
			return 0
		}

		if stone == color {
			return n
		}

		n++
		cx += dir.X
		cy += dir.Y
	}
}

// String - renders one line per row, each cell as a two-character token.
func (that *Board) String() string {
	var sb strings.Builder

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			sb.WriteString(that.cells[x][y].String())
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
