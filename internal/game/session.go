package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tilesnake/internal/input"
	"github.com/samdwyer/tilesnake/internal/telemetry"
	"github.com/samdwyer/tilesnake/internal/world"
)

// Session is one snake game controller: the board, the score and the heading
// filter. It is driven by a single goroutine calling Tick; Steer may be called
// from anywhere.
type Session struct {
	cfg     Config
	grid    *world.Grid
	metrics *Metrics
	filter  *input.Filter
	state   State
	id      uuid.UUID
	ticks   int

	span trace.Span // open from Reset until the game ends
}

// NewSession creates an idle session. Call Reset to start the first game.
func NewSession(cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cfg:     cfg,
		grid:    world.NewGrid(rand.New(rand.NewSource(seed))),
		metrics: NewMetrics(cfg.Timer),
		filter:  input.NewFilter(world.DirUp),
		state:   StateIdle,
	}
}

// Reset starts a fresh game on a rebuilt board.
func (s *Session) Reset(ctx context.Context) error {
	s.endSpan()

	s.id = uuid.New()
	ctx, s.span = telemetry.Tracer("game").Start(ctx, "game.session",
		trace.WithAttributes(attribute.String("session.id", s.id.String())))

	if err := s.grid.Reset(ctx, s.cfg.Rows, s.cfg.Cols, s.cfg.SnakeLength, s.cfg.Apples); err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, "grid reset failed")
		s.endSpan()
		s.state = StateIdle
		return fmt.Errorf("reset session: %w", err)
	}

	s.metrics.Reset()
	s.filter.Reset(world.DirUp)
	s.ticks = 0
	s.state = StateRunning
	return nil
}

// Steer requests a new heading for the next tick. Reversals are ignored.
func (s *Session) Steer(dir world.Direction) bool {
	if s.state != StateRunning {
		return false
	}
	return s.filter.Look(dir)
}

// Tick advances the game by one step. It does nothing unless the game is running.
// A collision moves the session to StateOver; it is not an error.
func (s *Session) Tick(ctx context.Context) (world.StepResult, error) {
	if s.state != StateRunning {
		return world.StepResult{}, nil
	}

	dir := s.filter.Commit()
	res, err := s.grid.Step(dir, s.metrics)
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, "invariant violated")
		s.finish()
		return res, fmt.Errorf("tick %d: %w", s.ticks, err)
	}
	s.ticks++

	switch res.Outcome {
	case world.OutcomeAte:
		s.span.AddEvent("apple.eaten", trace.WithAttributes(
			attribute.Int("snake.head_x", res.Head.X),
			attribute.Int("snake.head_y", res.Head.Y),
			attribute.Int("game.score", s.metrics.Score()),
			attribute.Bool("apple.spawned", res.Spawned),
		))
	case world.OutcomeCollided:
		s.span.AddEvent("game.over")
		s.finish()
	}
	return res, nil
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// finish ends the game and closes its span.
func (s *Session) finish() {
	s.state = StateOver
	s.endSpan()
}

func (s *Session) endSpan() {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(
		attribute.Int("game.score", s.metrics.Score()),
		attribute.Int("game.apples_eaten", s.metrics.Ate()),
		attribute.Int("game.ticks", s.ticks),
		attribute.Int("snake.length", s.grid.Length()),
	)
	s.span.End()
	s.span = nil
}

// Running returns true while ticks advance the game.
func (s *Session) Running() bool { return s.state == StateRunning }

// State returns the session lifecycle state.
func (s *Session) State() State { return s.state }

// Grid returns the board. Callers must not mutate it.
func (s *Session) Grid() *world.Grid { return s.grid }

// Metrics returns score and speed bookkeeping.
func (s *Session) Metrics() *Metrics { return s.metrics }

// Heading returns the direction of the last completed step.
func (s *Session) Heading() world.Direction { return s.filter.Committed() }

// ID identifies the current game.
func (s *Session) ID() uuid.UUID { return s.id }

// Ticks returns the number of completed steps this game.
func (s *Session) Ticks() int { return s.ticks }

// Period returns the delay before the next tick.
func (s *Session) Period() time.Duration { return s.metrics.Speed() }
