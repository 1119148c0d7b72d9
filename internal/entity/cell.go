package entity

// Cell is one grid position. It is either empty or holds exactly one stone.
type Cell struct {
	stone *Color
}

// Clear - removes the stone, if any.
func (that *Cell) Clear() {
	that.stone = nil
}

// Put - places a stone only if the cell is empty.
func (that *Cell) Put(color Color) bool {
	if that.stone != nil {
		return false
	}

	that.Set(color)

	return true
}

// Set - places a stone, replacing whatever was there.
func (that *Cell) Set(color Color) {
	stone := color
	that.stone = &stone
}

// Color - returns the occupant and whether there is one.
func (that Cell) Color() (Color, bool) {
	if that.stone == nil {
		return Black, false
	}
	return *that.stone, true
}

func (that Cell) IsEmpty() bool {
	return that.stone == nil
}

func (that Cell) String() string {
	if that.stone == nil {
		return emptyMarker
	}
	return that.stone.Marker()
}
