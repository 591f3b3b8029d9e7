// Package world provides the snake board: the tile grid, the snake chain
// embedded in it and the per-tick movement rules.
package world

// Role represents what occupies a single board cell.
type Role rune

const (
	// RoleField is an empty cell.
	RoleField Role = '.'
	// RoleBody is a snake segment behind the head.
	RoleBody Role = 'o'
	// RoleHead is the leading snake segment. Exactly one exists per active game.
	RoleHead Role = '@'
	// RoleApple is food that grows the snake when the head enters it.
	RoleApple Role = '*'
)

// IsSnake returns true if the role is part of the snake chain.
func (r Role) IsSnake() bool {
	return r == RoleHead || r == RoleBody
}

// Rune returns the role's display character.
func (r Role) Rune() rune {
	return rune(r)
}

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleField:
		return "field"
	case RoleBody:
		return "body"
	case RoleHead:
		return "head"
	case RoleApple:
		return "apple"
	default:
		return "unknown"
	}
}

// Pos identifies a cell by its grid coordinates.
type Pos struct {
	X, Y int
}

// NoLink marks the absence of a successor segment.
var NoLink = Pos{X: -1, Y: -1}

// Add returns the position shifted by the given delta, without wrapping.
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Cell is the state of one grid position.
type Cell struct {
	Role Role
	Next Pos // successor toward the tail, NoLink for the tail and non-snake cells
}

// Linked returns true if the cell points at a successor segment.
func (c Cell) Linked() bool {
	return c.Next != NoLink
}

// fieldCell is the zero state every cell starts in.
var fieldCell = Cell{Role: RoleField, Next: NoLink}
