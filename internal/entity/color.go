package entity

// Color is the identity of a stone. Black always moves first.
type Color uint8

const (
	Black Color = iota
	White
)

const (
	blackMarker = "@ "
	whiteMarker = "O "
	emptyMarker = ". "
)

// Opposite - returns the other side's color.
func (that Color) Opposite() Color {
	if that == Black {
		return White
	}
	return Black
}

func (that Color) String() string {
	if that == Black {
		return "Black"
	}
	return "White"
}

// Marker - returns the two-character token used by the text rendering.
func (that Color) Marker() string {
	if that == Black {
		return blackMarker
	}
	return whiteMarker
}
