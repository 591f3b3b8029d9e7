package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tilesnake/internal/gamedata"
	"github.com/samdwyer/tilesnake/internal/ui"
	"github.com/samdwyer/tilesnake/internal/world"
)

func newTestGame(t *testing.T, cfg Config) (*Game, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.Wrap(sim)
	require.NoError(t, err)
	sim.SetSize(60, 30)
	return NewWithScreen(cfg, screen, gamedata.MustLoadTheme()), sim
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestGameKeysSteerAndRestart(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	defer g.Close()
	ctx := context.Background()
	require.NoError(t, g.restart(ctx))
	assert.True(t, g.clock.Armed())

	require.NoError(t, g.handleKeyEvent(ctx, key(tcell.KeyLeft, 0)))
	require.NoError(t, g.tick(ctx))
	assert.Equal(t, world.DirLeft, g.session.Heading())

	// Reverse into the neck is filtered, so force a collision by hand
	g.session.Grid().SetRole(world.Pos{X: 3, Y: 5}, world.RoleBody, world.NoLink)
	require.NoError(t, g.tick(ctx))
	assert.Equal(t, StateOver, g.session.State())
	assert.False(t, g.clock.Armed(), "no ticks after game over")

	require.NoError(t, g.handleKeyEvent(ctx, key(tcell.KeyRune, ' ')))
	assert.Equal(t, StateRunning, g.session.State())
	assert.True(t, g.clock.Armed())
}

func TestGamePauseStopsClock(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	defer g.Close()
	ctx := context.Background()
	require.NoError(t, g.restart(ctx))

	require.NoError(t, g.handleKeyEvent(ctx, key(tcell.KeyRune, 'p')))
	assert.Equal(t, StatePaused, g.session.State())
	assert.False(t, g.clock.Armed())

	require.NoError(t, g.handleKeyEvent(ctx, key(tcell.KeyRune, 'p')))
	assert.True(t, g.clock.Armed())
}

func TestGameRunQuits(t *testing.T) {
	g, sim := newTestGame(t, testConfig())

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game did not quit")
	}
}

func TestGameRunStopsOnCancel(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("game ignored cancellation")
	}
}

func TestPollEventsExitsWhenDone(t *testing.T) {
	g, sim := newTestGame(t, testConfig())
	defer g.Close()

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)

	events := make(chan tcell.Event)
	done := make(chan struct{})
	go g.pollEvents(events, done)
	close(done)

	// Nobody reads the pending keys; the poller must still return and close events
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event poller blocked after the loop stopped")
		}
	}
}
