package world

import (
	"errors"
	"fmt"
)

// Outcome describes what a single step did to the board.
type Outcome int

const (
	// OutcomeMoved means the snake shifted one cell without growing.
	OutcomeMoved Outcome = iota
	// OutcomeAte means the head entered an apple and the snake grew by one.
	OutcomeAte
	// OutcomeCollided means the head would have entered the snake itself.
	// The board is left untouched and the game is over.
	OutcomeCollided
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Scorer is notified every time the snake eats an apple.
type Scorer interface {
	Eat()
}

// StepResult reports the effect of one step.
type StepResult struct {
	Outcome Outcome
	Head    Pos  // head position after the step (the blocked target on collision)
	Apple   Pos  // replacement apple, only set when Outcome is OutcomeAte
	Spawned bool // false if the board had no free cell for a replacement apple
}

// Step advances the snake one cell in dir, wrapping around the board edges.
// scorer may be nil.
func (g *Grid) Step(dir Direction, scorer Scorer) (StepResult, error) {
	if !dir.Valid() {
		return StepResult{}, fmt.Errorf("step %d: invalid direction", dir)
	}
	head, err := g.FindHead()
	if err != nil {
		return StepResult{}, err
	}

	target := g.Wrap(head.Add(dir.Delta()))

	switch g.At(target).Role {
	case RoleHead, RoleBody:
		return StepResult{Outcome: OutcomeCollided, Head: target}, nil

	case RoleApple:
		// Spawn before re-tagging so the new apple cannot land on the target
		res := StepResult{Outcome: OutcomeAte, Head: target, Apple: NoLink}
		apple, err := g.SpawnApple()
		switch {
		case err == nil:
			res.Apple, res.Spawned = apple, true
		case !errors.Is(err, ErrBoardFull):
			return StepResult{}, err
		}
		if scorer != nil {
			scorer.Eat()
		}
		g.advanceHead(head, target)
		return res, nil

	default:
		g.advanceHead(head, target)
		if err := g.dropTail(head, target); err != nil {
			return StepResult{}, err
		}
		return StepResult{Outcome: OutcomeMoved, Head: target}, nil
	}
}

// advanceHead makes target the new head and demotes the old head to body,
// keeping the old head's successor. The chain grows by one.
func (g *Grid) advanceHead(oldHead, target Pos) {
	body := g.At(oldHead).Next
	g.SetRole(target, RoleHead, oldHead)
	g.SetRole(oldHead, RoleBody, body)
}

// dropTail removes the last segment after advanceHead so the length is unchanged.
func (g *Grid) dropTail(oldHead, newHead Pos) error {
	// A lone head has nothing behind it: the old head cell is the tail
	if g.At(oldHead).Next == NoLink {
		g.SetRole(oldHead, RoleField, NoLink)
		g.link(newHead, NoLink)
		return nil
	}

	prev := oldHead
	p := g.At(oldHead).Next
	for steps := 0; g.At(p).Next != NoLink; steps++ {
		if steps > len(g.cells) {
			return fmt.Errorf("walking from %v: %w", oldHead, ErrCycle)
		}
		prev, p = p, g.At(p).Next
	}
	g.SetRole(p, RoleField, NoLink)
	g.link(prev, NoLink)
	return nil
}
