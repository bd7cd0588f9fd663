package core

// Color represents a cell colour.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorWhite
	ColorNavy
)

// ANSI returns the 256-color palette index for the color.
// ColorDefault has no index and reports ok=false.
func (c Color) ANSI() (code int, ok bool) {
	switch c {
	case ColorYellow:
		return 3, true
	case ColorWhite:
		return 15, true
	case ColorNavy:
		return 17, true
	default:
		return 0, false
	}
}
