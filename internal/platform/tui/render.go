package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// Painter converts a Screen buffer to a styled string. Styles are built
// once per colour pair through the painter's renderer, so SSH sessions get
// the colour profile of their own terminal.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses lipgloss's default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (p *Painter) style(key cellStyle) lipgloss.Style {
	if st, ok := p.styles[key]; ok {
		return st
	}

	st := p.renderer.NewStyle()
	if code, ok := key.fg.ANSI(); ok {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	if code, ok := key.bg.ANSI(); ok {
		st = st.Background(lipgloss.Color(strconv.Itoa(code)))
	}
	p.styles[key] = st
	return st
}

// Render paints the screen. Adjacent cells with the same colours are grouped
// to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.Cell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.Cell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen paints s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewPainter(nil).Render(s)
}
