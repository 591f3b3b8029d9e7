package world

import "testing"

func TestLoop(t *testing.T) {
	tests := []struct {
		v, step, min, max int
		want              int
	}{
		{0, -1, 0, 9, 9},
		{9, 1, 0, 9, 0},
		{5, 1, 0, 9, 6},
		{5, -1, 0, 9, 4},
		{3, 12, 0, 9, 5},
		{3, -14, 0, 9, 9},
		{2, 1, 2, 2, 2},
		{5, 3, 4, 6, 5},
	}

	for _, tt := range tests {
		if got := Loop(tt.v, tt.step, tt.min, tt.max); got != tt.want {
			t.Errorf("Loop(%d, %d, %d, %d) = %d, want %d", tt.v, tt.step, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", d, got, want)
		}
		dx, dy := d.Delta()
		ox, oy := want.Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s and %s deltas do not cancel", d, want)
		}
	}
}
