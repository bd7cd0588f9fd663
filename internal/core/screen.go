package core

import (
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Cls()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Cls fills the entire screen with blanks in default colors.
func (s *Screen) Cls() {
	s.fill(blank)
}

// ClsBg fills the entire screen with blanks on the given background.
func (s *Screen) ClsBg(bg Color) {
	s.fill(Cell{Rune: ' ', Bg: bg})
}

func (s *Screen) fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, fg, bg Color, glyph rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: glyph, Fg: fg, Bg: bg}
}

// SetFancy stamps the sprite glyph over every cell its scaled footprint
// covers. The origin is the cell containing (X, Y).
func (s *Screen) SetFancy(sp Sprite) {
	ox, oy := int(sp.X), int(sp.Y)
	for _, off := range sp.footprint() {
		s.Set(ox+off[0], oy+off[1], sp.Fg, sp.Bg, sp.Glyph)
	}
}

// Cell returns the full cell at the given position.
func (s *Screen) Cell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Print writes a string horizontally starting at (x, y) in white,
// keeping each cell's background. Characters beyond the bounds are clipped.
func (s *Screen) Print(x, y int, text string) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			c := &s.cells[y][x+i]
			c.Rune = r
			c.Fg = ColorWhite
		}
		i++
	}
}

// PrintCentered draws text centered horizontally at the given row.
func (s *Screen) PrintCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.Print(x, y, text)
}

// DrawRect fills a rectangular area with the given glyph and colors.
func (s *Screen) DrawRect(r Rect, fg, bg Color, glyph rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fg, bg, glyph)
		}
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, fg, bg Color, glyph rune) {
	s.DrawRect(NewRect(x, y, length, 1), fg, bg, glyph)
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
