package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilesnake/internal/world"
)

// KeyDirection maps arrow keys, WASD and hjkl to a heading.
func KeyDirection(ev *tcell.EventKey) (world.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return world.DirUp, true
	case tcell.KeyDown:
		return world.DirDown, true
	case tcell.KeyLeft:
		return world.DirLeft, true
	case tcell.KeyRight:
		return world.DirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return world.DirUp, true
		case 's', 'S', 'j':
			return world.DirDown, true
		case 'a', 'A', 'h':
			return world.DirLeft, true
		case 'd', 'D', 'l':
			return world.DirRight, true
		}
	}
	return 0, false
}
