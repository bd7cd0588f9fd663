package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Cell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Cell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, ColorWhite, ColorNavy, 'X')
	c := s.Cell(5, 5)
	if c.Rune != 'X' || c.Fg != ColorWhite || c.Bg != ColorNavy {
		t.Errorf("Cell(5, 5) = %+v, expected X white on navy", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, ColorWhite, ColorDefault, 'A')
	s.Set(100, 0, ColorWhite, ColorDefault, 'A')
	s.Set(0, -1, ColorWhite, ColorDefault, 'A')
	s.Set(0, 100, ColorWhite, ColorDefault, 'A')

	if s.Cell(-1, 0) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds Cell should return a blank")
	}
	if s.Cell(100, 0) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds Cell should return a blank")
	}
}

func TestScreenCls(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), ColorYellow, ColorYellow, 'X')

	s.Cls()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.Cell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Cls, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenClsBg(t *testing.T) {
	s := NewScreen(5, 5)
	s.ClsBg(ColorNavy)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c := s.Cell(x, y); c.Rune != ' ' || c.Bg != ColorNavy {
				t.Errorf("After ClsBg, expected navy blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenPrint(t *testing.T) {
	s := NewScreen(20, 5)
	s.ClsBg(ColorNavy)
	s.Print(2, 1, "Hello")

	for i, ch := range "Hello" {
		c := s.Cell(2+i, 1)
		if c.Rune != ch {
			t.Errorf("Print: expected %q at (%d, 1), got %q", ch, 2+i, c.Rune)
		}
		if c.Bg != ColorNavy {
			t.Errorf("Print should keep the background at (%d, 1), got %v", 2+i, c.Bg)
		}
	}

	// Text should be clipped at boundaries
	s.Print(18, 0, "Hello") // Only "He" should fit
	if s.Cell(18, 0).Rune != 'H' || s.Cell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenPrintCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.PrintCentered(2, "Hi")

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Cell(x, 2).Rune != 'H' || s.Cell(x+1, 2).Rune != 'i' {
		t.Errorf("PrintCentered failed, row = %q", strings.Split(s.String(), "\n")[2])
	}
}

func TestScreenSetFancy(t *testing.T) {
	tests := []struct {
		name   string
		sprite Sprite
		cells  [][2]int
	}{
		{
			name:   "unit scale",
			sprite: Sprite{X: 3.7, Y: 2.2, ScaleX: 1, ScaleY: 1, Glyph: '@'},
			cells:  [][2]int{{3, 2}},
		},
		{
			name:   "double scale",
			sprite: Sprite{X: 0, Y: 4.9, ScaleX: 2, ScaleY: 2, Glyph: '@'},
			cells:  [][2]int{{0, 4}, {1, 4}, {0, 5}, {1, 5}},
		},
		{
			name:   "half turn grows up-left",
			sprite: Sprite{X: 5, Y: 5, Rotation: 180, ScaleX: 2, ScaleY: 1, Glyph: '@'},
			cells:  [][2]int{{5, 5}, {4, 5}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.SetFancy(tc.sprite)

			count := 0
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if s.Cell(x, y).Rune == '@' {
						count++
					}
				}
			}
			if count != len(tc.cells) {
				t.Errorf("expected %d stamped cells, got %d", len(tc.cells), count)
			}
			for _, c := range tc.cells {
				if s.Cell(c[0], c[1]).Rune != '@' {
					t.Errorf("expected sprite at (%d, %d)", c[0], c[1])
				}
			}
		})
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, ColorWhite, ColorNavy, '#')

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := ' '
			if r.Contains(x, y) {
				want = '#'
			}
			if got := s.Cell(x, y).Rune; got != want {
				t.Errorf("DrawRect: expected %q at (%d, %d), got %q", want, x, y, got)
			}
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, ColorWhite, ColorWhite, '-')
	s.DrawHLine(7, 4, 10, ColorWhite, ColorWhite, '=')

	for x := 2; x < 7; x++ {
		if got := s.Cell(x, 2).Rune; got != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, got)
		}
	}
	if got := s.Cell(7, 2).Rune; got != ' ' {
		t.Errorf("DrawHLine overran its length, got %q at (7, 2)", got)
	}
	// Clipped at the right edge
	for x := 7; x < 10; x++ {
		if got := s.Cell(x, 4).Rune; got != '=' {
			t.Errorf("DrawHLine: expected '=' at (%d, 4), got %q", x, got)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.Print(0, 0, "AAAAA")
	s.Print(0, 1, "BBBBB")
	s.Print(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}
