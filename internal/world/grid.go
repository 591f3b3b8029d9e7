package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilesnake/internal/telemetry"
)

var (
	// ErrInvariant is the parent of every board state that correct play never produces.
	ErrInvariant = errors.New("board invariant violated")
	// ErrNoHead means no cell holds the head role.
	ErrNoHead = fmt.Errorf("%w: no head", ErrInvariant)
	// ErrMultipleHeads means more than one cell holds the head role.
	ErrMultipleHeads = fmt.Errorf("%w: multiple heads", ErrInvariant)
	// ErrCycle means the snake chain revisits a cell.
	ErrCycle = fmt.Errorf("%w: cycle in snake chain", ErrInvariant)
	// ErrBrokenChain means a link points outside the board or at a non-snake cell,
	// or a body cell is not reachable from the head.
	ErrBrokenChain = fmt.Errorf("%w: broken snake chain", ErrInvariant)

	// ErrBoardFull means there is no free cell left to place an apple on.
	ErrBoardFull = errors.New("no free cell on board")
	// ErrInvalidSize is returned for boards without cells.
	ErrInvalidSize = errors.New("board must have at least one row and one column")
	// ErrInvalidLength is returned when the initial snake does not fit below the center.
	ErrInvalidLength = errors.New("initial snake length does not fit on board")
)

// Grid is the snake board. It owns every cell; the snake is a chain of
// coordinate links stored inside the cells.
type Grid struct {
	Rows  int
	Cols  int
	cells []Cell
	rng   *rand.Rand
}

// NewGrid creates an empty board that draws apple positions from rng.
// A nil rng is replaced by a time-seeded source.
func NewGrid(rng *rand.Rand) *Grid {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Grid{rng: rng}
}

// Reset rebuilds the board: all field, a vertical snake of the given length with
// its head in the center pointing up, and appleCount apples on random free cells.
func (g *Grid) Reset(ctx context.Context, rows, cols, snakeLength, appleCount int) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.reset")
	defer span.End()

	if rows < 1 || cols < 1 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidSize)
	}
	headY := rows / 2
	if snakeLength < 1 || headY+snakeLength > rows {
		return fmt.Errorf("length %d on %d rows: %w", snakeLength, rows, ErrInvalidLength)
	}
	if free := rows*cols - snakeLength; appleCount > free {
		return fmt.Errorf("%d apples for %d free cells: %w", appleCount, free, ErrBoardFull)
	}

	g.Rows = rows
	g.Cols = cols
	g.cells = make([]Cell, rows*cols)
	for i := range g.cells {
		g.cells[i] = fieldCell
	}

	x := cols / 2
	g.SetRole(Pos{X: x, Y: headY}, RoleHead, NoLink)
	for y := headY + 1; y < headY+snakeLength; y++ {
		g.SetRole(Pos{X: x, Y: y}, RoleBody, NoLink)
		g.link(Pos{X: x, Y: y - 1}, Pos{X: x, Y: y})
	}

	for i := 0; i < appleCount; i++ {
		if _, err := g.SpawnApple(); err != nil {
			return err
		}
	}

	span.SetAttributes(
		attribute.Int("grid.rows", rows),
		attribute.Int("grid.cols", cols),
		attribute.Int("snake.length", snakeLength),
		attribute.Int("grid.apples", appleCount),
	)
	return nil
}

// Contains returns true if the position lies on the board.
func (g *Grid) Contains(p Pos) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Wrap maps a position one step off the board back onto the opposite edge.
func (g *Grid) Wrap(p Pos) Pos {
	return Pos{
		X: Loop(p.X, 0, 0, g.Cols-1),
		Y: Loop(p.Y, 0, 0, g.Rows-1),
	}
}

// At returns the cell at the given position. Positions off the board read as field.
func (g *Grid) At(p Pos) Cell {
	if !g.Contains(p) {
		return fieldCell
	}
	return g.cells[g.index(p)]
}

// SetRole overwrites the role and link of a cell, discarding any previous link.
// Field and apple cells never carry a link.
func (g *Grid) SetRole(p Pos, role Role, next Pos) {
	if !g.Contains(p) {
		return
	}
	if !role.IsSnake() {
		next = NoLink
	}
	g.cells[g.index(p)] = Cell{Role: role, Next: next}
}

// link points a snake cell at its successor.
func (g *Grid) link(p, next Pos) {
	g.cells[g.index(p)].Next = next
}

// Count returns the number of cells holding the role.
func (g *Grid) Count(role Role) int {
	n := 0
	for _, c := range g.cells {
		if c.Role == role {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Pos, c Cell)) {
	for i, c := range g.cells {
		fn(Pos{X: i % g.Cols, Y: i / g.Cols}, c)
	}
}

// FindHead returns the position of the unique head cell.
func (g *Grid) FindHead() (Pos, error) {
	head := NoLink
	for i, c := range g.cells {
		if c.Role != RoleHead {
			continue
		}
		if head != NoLink {
			return NoLink, ErrMultipleHeads
		}
		head = Pos{X: i % g.Cols, Y: i / g.Cols}
	}
	if head == NoLink {
		return NoLink, ErrNoHead
	}
	return head, nil
}

// Snake returns the chain positions from head to tail.
func (g *Grid) Snake() ([]Pos, error) {
	head, err := g.FindHead()
	if err != nil {
		return nil, err
	}
	return g.walk(head)
}

// walk follows links from start until the tail, rejecting cycles and dangling links.
func (g *Grid) walk(start Pos) ([]Pos, error) {
	chain := []Pos{start}
	seen := map[Pos]bool{start: true}
	for p := g.At(start).Next; p != NoLink; p = g.At(p).Next {
		if !g.Contains(p) || !g.At(p).Role.IsSnake() {
			return nil, fmt.Errorf("link to %v: %w", p, ErrBrokenChain)
		}
		if seen[p] {
			return nil, fmt.Errorf("revisit %v: %w", p, ErrCycle)
		}
		seen[p] = true
		chain = append(chain, p)
	}
	return chain, nil
}

// Length returns the number of snake segments on the board.
func (g *Grid) Length() int {
	return g.Count(RoleHead) + g.Count(RoleBody)
}

// Validate checks every structural invariant of the board.
func (g *Grid) Validate() error {
	chain, err := g.Snake()
	if err != nil {
		return err
	}
	for _, p := range chain[1:] {
		if g.At(p).Role != RoleBody {
			return fmt.Errorf("segment %v is %s: %w", p, g.At(p).Role, ErrBrokenChain)
		}
	}
	if len(chain) != g.Length() {
		return fmt.Errorf("chain has %d segments, board has %d: %w", len(chain), g.Length(), ErrBrokenChain)
	}
	for _, c := range g.cells {
		if !c.Role.IsSnake() && c.Linked() {
			return fmt.Errorf("%s cell carries a link: %w", c.Role, ErrBrokenChain)
		}
	}
	return nil
}

func (g *Grid) index(p Pos) int {
	return p.Y*g.Cols + p.X
}
