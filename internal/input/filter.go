// Package input turns key presses into snake headings.
package input

import (
	"sync"

	"github.com/samdwyer/tilesnake/internal/world"
)

// Filter arbitrates direction changes between ticks. A heading that would
// reverse the snake into its own neck is ignored.
type Filter struct {
	mu        sync.Mutex
	committed world.Direction // heading used by the last step
	pending   world.Direction // heading the next step will use
}

// NewFilter creates a filter heading in the initial direction.
func NewFilter(initial world.Direction) *Filter {
	return &Filter{committed: initial, pending: initial}
}

// Look requests a new heading. It returns false and leaves the pending heading
// unchanged if dir is the opposite of the committed one.
func (f *Filter) Look(dir world.Direction) bool {
	if !dir.Valid() {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir == f.committed.Opposite() {
		return false
	}
	f.pending = dir
	return true
}

// Commit promotes the pending heading and returns it. Call once at the start of each step.
func (f *Filter) Commit() world.Direction {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.committed = f.pending
	return f.committed
}

// Reset sets both headings to dir.
func (f *Filter) Reset(dir world.Direction) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.committed = dir
	f.pending = dir
}

// Committed returns the heading of the last step.
func (f *Filter) Committed() world.Direction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.committed
}

// Pending returns the heading the next step will use.
func (f *Filter) Pending() world.Direction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}
