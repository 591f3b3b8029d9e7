package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilesnake/internal/gamedata"
	"github.com/samdwyer/tilesnake/internal/world"
)

// HUD is the score line drawn under the board.
type HUD struct {
	Score  int
	Ate    int
	Paused bool
	Over   bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the board inside a frame with the HUD below it.
// The board starts at (1,1); row and column 0 hold the frame.
func (r *Renderer) Render(grid *world.Grid, hud HUD) {
	r.screen.Clear()

	r.drawFrame(grid.Cols+2, grid.Rows+2)
	grid.Each(func(p world.Pos, c world.Cell) {
		r.screen.SetContent(p.X+1, p.Y+1, r.theme.Glyph(c.Role), r.theme.RoleStyle(c.Role))
	})

	status := fmt.Sprintf("Score: %d  Ate: %d", hud.Score, hud.Ate)
	if hud.Paused {
		status += "  [paused]"
	}
	r.RenderMessage(status, grid.Rows+2)

	if hud.Over {
		r.RenderMessage("Game over!", grid.Rows+3)
		r.RenderMessage(fmt.Sprintf("Your score is: %d", hud.Score), grid.Rows+4)
		r.RenderMessage("Press Space to restart", grid.Rows+5)
	}

	r.screen.Show()
}

// drawFrame draws a box of the given outer size at the origin.
func (r *Renderer) drawFrame(width, height int) {
	style := r.theme.BorderStyle()
	for x := 1; x < width-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, style)
		r.screen.SetContent(x, height-1, tcell.RuneHLine, style)
	}
	for y := 1; y < height-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, style)
		r.screen.SetContent(width-1, y, tcell.RuneVLine, style)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, style)
	r.screen.SetContent(width-1, 0, tcell.RuneURCorner, style)
	r.screen.SetContent(0, height-1, tcell.RuneLLCorner, style)
	r.screen.SetContent(width-1, height-1, tcell.RuneLRCorner, style)
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := r.theme.TextStyle()
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
