package game

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/samdwyer/tilesnake/internal/telemetry"
)

// Metrics tracks score and derives the tick period from apples eaten.
type Metrics struct {
	timer TimerConfig
	score int
	ate   int
	cost  int

	eaten metric.Int64Counter
}

// NewMetrics creates zeroed metrics for the given timer settings.
func NewMetrics(timer TimerConfig) *Metrics {
	return newMetrics(timer, telemetry.Meter("game"))
}

// newMetrics records eaten apples on a counter from meter.
func newMetrics(timer TimerConfig, meter metric.Meter) *Metrics {
	eaten, err := meter.Int64Counter("snake.apples_eaten",
		metric.WithDescription("Apples eaten across all games"))
	if err != nil {
		eaten = noop.Int64Counter{}
	}
	m := &Metrics{timer: timer, eaten: eaten}
	m.Reset()
	return m
}

// Reset clears score and apples eaten for a new game.
func (m *Metrics) Reset() {
	m.score = 0
	m.ate = 0
	m.cost = 1
}

// Eat records an apple. Every Timer.Every apples the value of an apple rises by one.
func (m *Metrics) Eat() {
	m.ate++
	m.cost = m.level() + 1
	m.score += m.cost
	m.eaten.Add(context.Background(), 1)
}

// Speed returns the current tick period, never below Timer.Min.
func (m *Metrics) Speed() time.Duration {
	d := m.timer.Start - m.timer.Step*time.Duration(m.level())
	if d < m.timer.Min {
		return m.timer.Min
	}
	return d
}

// Score returns the points collected this game.
func (m *Metrics) Score() int { return m.score }

// Ate returns the number of apples eaten this game.
func (m *Metrics) Ate() int { return m.ate }

// Cost returns the points awarded for the last apple.
func (m *Metrics) Cost() int { return m.cost }

func (m *Metrics) level() int {
	if m.timer.Every <= 0 {
		return 0
	}
	return m.ate / m.timer.Every
}
