package core

import "math"

// Canvas is the render sink a game draws into once per frame.
// *Screen is the only production implementation; hosts read it back.
type Canvas interface {
	// Cls clears every cell to a blank with default colors.
	Cls()
	// ClsBg clears every cell to a blank with the given background.
	ClsBg(bg Color)
	// Set places a single glyph with explicit colors.
	Set(x, y int, fg, bg Color, glyph rune)
	// DrawRect fills every cell of r with the glyph.
	DrawRect(r Rect, fg, bg Color, glyph rune)
	// DrawHLine draws a horizontal run of length cells from (x, y).
	DrawHLine(x, y, length int, fg, bg Color, glyph rune)
	// SetFancy draws a sprite at a fractional position.
	SetFancy(s Sprite)
	// Print writes left-aligned text starting at (x, y).
	Print(x, y int, text string)
	// PrintCentered writes text horizontally centered on row y.
	PrintCentered(y int, text string)
}

// Sprite is a glyph drawn at a fractional position with rotation and scale.
type Sprite struct {
	X, Y           float64
	Rotation       float64 // degrees, snapped to quarter turns
	ScaleX, ScaleY float64
	Fg, Bg         Color
	Glyph          rune
}

// footprint returns the cell offsets covered by the sprite relative to its
// origin cell.
func (s Sprite) footprint() [][2]int {
	w := int(math.Round(s.ScaleX))
	h := int(math.Round(s.ScaleY))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	turns := int(math.Round(s.Rotation/90)) % 4
	if turns < 0 {
		turns += 4
	}

	cells := make([][2]int, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			x, y := dx, dy
			for range turns {
				x, y = -y, x
			}
			cells = append(cells, [2]int{x, y})
		}
	}
	return cells
}
