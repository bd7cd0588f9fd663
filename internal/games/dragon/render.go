package dragon

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters for rendering
const (
	WallChar   = '│'
	GroundChar = '#'
)

// drawWorld draws gates, ground, the dragon and the HUD. The dragon is
// always drawn at column 0; gates are placed relative to its world column.
func (s *Session) drawWorld(dst core.Canvas) {
	ground := s.cfg.GroundRow()

	dst.DrawHLine(0, ground, s.cfg.Screen.Width, core.ColorWhite, core.ColorWhite, GroundChar)

	for _, o := range s.stream.Obstacles() {
		for _, wall := range []core.Rect{o.TopWall(), o.BottomWall(ground)} {
			wall.X -= s.player.X
			dst.DrawRect(wall, core.ColorWhite, core.ColorNavy, WallChar)
		}
	}

	dst.SetFancy(core.Sprite{
		X:      0,
		Y:      s.player.Y,
		ScaleX: 2,
		ScaleY: 2,
		Fg:     core.ColorYellow,
		Bg:     core.ColorNavy,
		Glyph:  s.player.Glyph(),
	})

	dst.Print(0, 0, "Press SPACE to flap.")
	dst.Print(0, 1, "Press ESC to pause.")
	dst.Print(0, 2, fmt.Sprintf("Score %d", s.score))
}

func drawMainMenu(dst core.Canvas) {
	dst.Cls()
	dst.PrintCentered(5, "Welcome to Flappy Dragon")
	dst.PrintCentered(8, "(P) Play Game")
	dst.PrintCentered(9, "(Q) Quit Game")
}

func drawPauseMenu(dst core.Canvas) {
	dst.Cls()
	dst.PrintCentered(5, "Pause!")
	dst.PrintCentered(8, "(ESC) Continue Game")
	dst.PrintCentered(9, "(Q) Quit Game")
}

func drawDead(dst core.Canvas, score, best int) {
	dst.Cls()
	dst.PrintCentered(5, "You are dead!")
	dst.PrintCentered(6, fmt.Sprintf("You earned %d points", score))
	if best > 0 {
		dst.PrintCentered(7, fmt.Sprintf("Best: %d", max(best, score)))
	}
	dst.PrintCentered(8, "(P) Play Game")
	dst.PrintCentered(9, "(Q) Quit Game")
}
