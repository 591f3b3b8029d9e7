package world

// Direction is one of the four headings the snake can move in.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the unit vector for the heading. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Valid returns true for the four defined headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Loop adds step to v and wraps the result into [min, max].
// Any step size is accepted; the board only ever moves by one.
func Loop(v, step, min, max int) int {
	span := max - min + 1
	if span <= 0 {
		return min
	}
	off := (v - min + step) % span
	if off < 0 {
		off += span
	}
	return min + off
}
