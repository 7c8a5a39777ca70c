package tui

import (
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

// Glyphs used for field cells.
const (
	glyphHead  = '☻'
	glyphBody  = '☺'
	glyphBlock = '█'
	glyphFood  = '♥'
)

// DrawField draws every field cell into dst, starting at the top-left corner.
// Cells outside dst are clipped.
func DrawField(dst *core.Screen, g *snake.Game) {
	f := g.Field()
	size := f.Size()
	head := g.SnakeHead()

	w := min(size.Width, dst.Width())
	h := min(size.Height, dst.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch f.Get(x, y).Kind {
			case snake.KindSnake:
				if x == head.X && y == head.Y {
					dst.SetColored(x, y, glyphHead, core.ColorBrightGreen)
				} else {
					dst.SetColored(x, y, glyphBody, core.ColorGreen)
				}
			case snake.KindBlock:
				dst.SetColored(x, y, glyphBlock, core.ColorGray)
			case snake.KindFood:
				dst.SetColored(x, y, glyphFood, core.ColorRed)
			}
		}
	}
}

// DrawOverlay draws a boxed one-line message in the middle of dst.
func DrawOverlay(dst *core.Screen, text string) {
	w := core.Clamp(len([]rune(text))+4, 3, dst.Width())
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 3)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, text)
}
