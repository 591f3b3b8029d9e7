package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilesnake/internal/gamedata"
	"github.com/samdwyer/tilesnake/internal/input"
	"github.com/samdwyer/tilesnake/internal/telemetry"
	"github.com/samdwyer/tilesnake/internal/ui"
)

// Game runs a session in the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	clock    *Clock
	running  bool
}

// New creates a game drawing to a fresh terminal screen.
func New(cfg Config) (*Game, error) {
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, screen, theme), nil
}

// NewWithScreen creates a game on an existing screen.
func NewWithScreen(cfg Config, screen *ui.Screen, theme *gamedata.Theme) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		session:  NewSession(cfg),
		clock:    NewClock(),
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	tracer := telemetry.Tracer("game")
	initCtx, initSpan := tracer.Start(ctx, "game.init")
	err := g.restart(initCtx)
	if err == nil {
		initSpan.SetAttributes(
			attribute.String("session.id", g.session.ID().String()),
			attribute.Int("grid.rows", g.session.Grid().Rows),
			attribute.Int("grid.cols", g.session.Grid().Cols),
		)
	}
	initSpan.End()
	if err != nil {
		return err
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	for g.running {
		g.render()

		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			if err := g.handleEvent(ctx, ev); err != nil {
				return err
			}
		case <-g.clock.C():
			g.clock.Fired()
			if err := g.tick(ctx); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}

// pollEvents forwards terminal events until the screen is finalized or done is closed.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// tick advances the session and arms the clock for the next step while the game runs.
func (g *Game) tick(ctx context.Context) error {
	if _, err := g.session.Tick(ctx); err != nil {
		return err
	}
	g.schedule()
	return nil
}

// schedule arms the clock only for a running session, so a finished or paused
// game receives no further ticks.
func (g *Game) schedule() {
	if g.session.Running() {
		g.clock.Schedule(g.session.Period())
	} else {
		g.clock.Stop()
	}
}

func (g *Game) restart(ctx context.Context) error {
	if err := g.session.Reset(ctx); err != nil {
		return err
	}
	g.schedule()
	return nil
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	if dir, ok := input.KeyDirection(ev); ok {
		g.session.Steer(dir)
		return nil
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case ' ':
			if g.session.State() == StateOver {
				return g.restart(ctx)
			}
		case 'p', 'P':
			g.session.TogglePause()
			g.schedule()
		}
	}
	return nil
}

func (g *Game) render() {
	m := g.session.Metrics()
	g.renderer.Render(g.session.Grid(), ui.HUD{
		Score:  m.Score(),
		Ate:    m.Ate(),
		Paused: g.session.State() == StatePaused,
		Over:   g.session.State() == StateOver,
	})
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.clock.Stop()
	if g.screen != nil {
		g.screen.Close()
	}
}
