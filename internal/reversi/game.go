package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/entity"
)

// Game is one playthrough: the board plus the color whose turn it is.
// The zero value is an empty board with Black to move; call Init for the starting layout.
type Game struct {
	board entity.Board
	turn  entity.Color
}

// New - returns a game with the starting layout already in place.
func New() *Game {
	game := &Game{}
	game.Init()

	return game
}

// Init - clears the board, places the four centre stones and gives Black the move.
func (that *Game) Init() {
	that.board.Clear()

	that.board.Set(3, 3, entity.Black)
	that.board.Set(4, 4, entity.Black)
	that.board.Set(3, 4, entity.White)
	that.board.Set(4, 3, entity.White)

	that.turn = entity.Black
}

func (that *Game) Turn() entity.Color {
	return that.turn
}

// CanPut - reports whether the side to move has any legal placement.
func (that *Game) CanPut() bool {
	return that.board.CanPut(that.turn)
}

// CanPutAt - reports whether the side to move may place at (x, y).
func (that *Game) CanPutAt(x, y int) bool {
	return that.board.CanPutAt(x, y, that.turn)
}

// Put - places a stone for the side to move. The turn passes only on success.
func (that *Game) Put(x, y int) bool {
	if !that.board.Put(x, y, that.turn) {
		return false
	}

	that.turn = that.turn.Opposite()

	return true
}

func (that *Game) Color(x, y int) (entity.Color, bool) {
	return that.board.Color(x, y)
}

// Board - returns a copy of the board. Changes to the copy do not reach the game.
func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) String() string {
	return fmt.Sprintf("%sTurn: %s", that.board.String(), that.turn)
}
