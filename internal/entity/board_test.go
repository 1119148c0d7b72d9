package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from up to eight rows, 'B' and 'W' for stones.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()

	var board Board
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case 'B':
				require.True(t, board.Set(x, y, Black))
			case 'W':
				require.True(t, board.Set(x, y, White))
			}
		}
	}

	return board
}

func startingBoard(t *testing.T) Board {
	t.Helper()

	return boardFromRows(t,
		"........",
		"........",
		"........",
		"...BW...",
		"...WB...",
	)
}

func countCells(board *Board) (occupied, empty int) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if _, ok := board.Color(x, y); ok {
				occupied++
			} else {
				empty++
			}
		}
	}
	return occupied, empty
}

var outside = []Position{
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 8, Y: 0},
	{X: 0, Y: 8},
	{X: 8, Y: 8},
	{X: -3, Y: 12},
}

func TestBoard_OutOfRange(t *testing.T) {
	t.Run("Coordinates outside the grid are rejected", func(t *testing.T) {
		// Given: the starting layout
		board := startingBoard(t)
		before := board

		for _, pos := range outside {
			// When: querying and mutating outside the grid
			assert.False(t, board.IsInside(pos.X, pos.Y), pos.String())

			_, ok := board.Color(pos.X, pos.Y)
			assert.False(t, ok, pos.String())

			assert.False(t, board.Set(pos.X, pos.Y, Black), pos.String())
			assert.False(t, board.CanPutAt(pos.X, pos.Y, Black), pos.String())
			assert.False(t, board.Put(pos.X, pos.Y, White), pos.String())
		}

		// Then: nothing changed
		assert.Equal(t, before, board)
	})

	t.Run("Every corner is inside", func(t *testing.T) {
		var board Board

		assert.True(t, board.IsInside(0, 0))
		assert.True(t, board.IsInside(7, 0))
		assert.True(t, board.IsInside(0, 7))
		assert.True(t, board.IsInside(7, 7))
	})
}

func TestBoard_CanPutAt(t *testing.T) {
	t.Run("Starting layout has exactly four legal placements for Black", func(t *testing.T) {
		// Given: the starting layout
		board := startingBoard(t)

		// When: scanning every position for Black
		var legal []Position
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				if board.CanPutAt(x, y, Black) {
					legal = append(legal, Position{X: x, Y: y})
				}
			}
		}

		// Then: only the four flanking positions are legal
		assert.ElementsMatch(t, []Position{{4, 2}, {5, 3}, {2, 4}, {3, 5}}, legal)
	})

	t.Run("Occupied cell is never legal", func(t *testing.T) {
		board := startingBoard(t)

		assert.False(t, board.CanPutAt(3, 3, Black))
		assert.False(t, board.CanPutAt(3, 4, Black))
		assert.False(t, board.CanPutAt(3, 4, White))
	})

	t.Run("Run of opponent stones ending at the edge does not capture", func(t *testing.T) {
		// Given: white stones running to the left edge
		board := boardFromRows(t, "WWWWWWW.")

		// Then: Black cannot bracket them
		assert.False(t, board.CanPutAt(7, 0, Black))
	})

	t.Run("Run of opponent stones ending at an empty cell does not capture", func(t *testing.T) {
		board := boardFromRows(t, ".WWW....")

		assert.False(t, board.CanPutAt(4, 0, Black))
	})

	t.Run("Adjacent own stone alone does not capture", func(t *testing.T) {
		board := boardFromRows(t, "B.......")

		assert.False(t, board.CanPutAt(1, 0, Black))
	})

	t.Run("Single capturing diagonal is enough", func(t *testing.T) {
		// Given: one capturing diagonal towards the bottom right
		board := boardFromRows(t,
			"........",
			".W......",
			"..B.....",
		)

		// Then: the placement is legal for Black and not for White
		assert.True(t, board.CanPutAt(0, 0, Black))
		assert.False(t, board.CanPutAt(0, 0, White))
	})
}

func TestBoard_Put(t *testing.T) {
	t.Run("Illegal placement performs no mutation", func(t *testing.T) {
		// Given: the starting layout
		board := startingBoard(t)
		before := board

		// When: Black tries a position that captures nothing
		ok := board.Put(0, 0, Black)

		// Then: false and the board is unchanged
		assert.False(t, ok)
		assert.Equal(t, before, board)
	})

	t.Run("Captures along every capturing direction and leaves the rest", func(t *testing.T) {
		// Given: three capturing lines into (3,3) and one open line to the right
		board := boardFromRows(t,
			"B..B....",
			".W.W....",
			"..WW....",
			".BW.WW..",
			"...B....",
		)

		// When: Black places at (3,3)
		ok := board.Put(3, 3, Black)

		// Then: up, up-left and left runs are flipped; the open run is untouched
		require.True(t, ok)
		expected := boardFromRows(t,
			"B..B....",
			".B.B....",
			"..BB....",
			".BBBWW..",
			"...B....",
		)
		assert.Equal(t, expected, board)
	})

	t.Run("Starting move flips the bracketed stone", func(t *testing.T) {
		// Given: the starting layout
		board := startingBoard(t)

		// When: Black places at column 2, row 4
		require.True(t, board.Put(2, 4, Black))

		// Then: (2,4) and (3,4) are black and (4,4) unchanged
		for _, pos := range []Position{{2, 4}, {3, 4}, {4, 4}} {
			color, ok := board.Color(pos.X, pos.Y)
			require.True(t, ok, pos.String())
			assert.Equal(t, Black, color, pos.String())
		}

		occupied, empty := countCells(&board)
		assert.Equal(t, 5, occupied)
		assert.Equal(t, 59, empty)
	})
}

func TestBoard_CanPut(t *testing.T) {
	t.Run("Empty board has no legal placement", func(t *testing.T) {
		var board Board

		assert.False(t, board.CanPut(Black))
		assert.False(t, board.CanPut(White))
	})

	t.Run("One legal position among 64 is enough", func(t *testing.T) {
		// Given: a board where only (2,0) is legal for Black
		board := boardFromRows(t, "BW......")

		// Then: Black can move somewhere, White cannot
		assert.True(t, board.CanPut(Black))
		assert.False(t, board.CanPut(White))
	})

	t.Run("Starting layout lets both sides move", func(t *testing.T) {
		board := startingBoard(t)

		assert.True(t, board.CanPut(Black))
		assert.True(t, board.CanPut(White))
	})
}

func TestBoard_Clear(t *testing.T) {
	// Given: a board with stones
	board := startingBoard(t)
	occupied, empty := countCells(&board)
	require.Equal(t, 64, occupied+empty)
	require.Equal(t, 4, occupied)

	// When: cleared
	board.Clear()

	// Then: every cell is empty
	occupied, empty = countCells(&board)
	assert.Equal(t, 0, occupied)
	assert.Equal(t, 64, empty)
	assert.Equal(t, Board{}, board)
}

func TestBoard_String(t *testing.T) {
	board := startingBoard(t)

	empty := strings.Repeat(". ", BoardSize) + "\n"
	expected := strings.Repeat(empty, 3) +
		". . . @ O . . . \n" +
		". . . O @ . . . \n" +
		strings.Repeat(empty, 3)

	assert.Equal(t, expected, board.String())
}
