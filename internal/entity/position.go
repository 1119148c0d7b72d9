package entity

import "fmt"

// Position addresses a cell by column (X) and row (Y).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}
