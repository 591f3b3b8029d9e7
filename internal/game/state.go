// Package game provides the snake session, its clock and the terminal game loop.
package game

// State represents where a session is in its lifecycle.
type State int

const (
	// StateIdle is a session that has not been reset yet.
	StateIdle State = iota
	// StateRunning is an active game that advances on every tick.
	StateRunning
	// StatePaused keeps the board frozen until resumed.
	StatePaused
	// StateOver is reached when the snake runs into itself. Only a reset leaves it.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
