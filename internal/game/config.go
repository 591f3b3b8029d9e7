package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilesnake/internal/gamedata"
)

// TimerConfig controls how the tick period shrinks as apples are eaten.
type TimerConfig struct {
	Start time.Duration // Period before the first speed-up
	Step  time.Duration // Reduction per speed level
	Every int           // Apples eaten per speed level
	Min   time.Duration // Lower bound so the clock never spins
}

// Config holds game configuration options.
type Config struct {
	Rows        int
	Cols        int
	SnakeLength int // Initial segments including the head
	Apples      int // Apples on the board at all times
	Timer       TimerConfig

	// Seed for random number generation. Used for reproducible apple placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the configuration shipped in the embedded settings.
func DefaultConfig() (Config, error) {
	s, err := gamedata.LoadSettings()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Rows:        s.Board.Rows,
		Cols:        s.Board.Cols,
		SnakeLength: s.Snake.Length,
		Apples:      s.Apples.Count,
		Timer: TimerConfig{
			Start: time.Duration(s.Timer.StartMs) * time.Millisecond,
			Step:  time.Duration(s.Timer.StepMs) * time.Millisecond,
			Every: s.Timer.Every,
			Min:   time.Duration(s.Timer.MinMs) * time.Millisecond,
		},
	}, nil
}

// LoadConfig builds the configuration from the embedded defaults, then the
// variables in envFile (skipped when empty), then the process environment.
func LoadConfig(envFile string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	vars := map[string]string{}
	if envFile != "" {
		if vars, err = godotenv.Read(envFile); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	if err := cfg.apply(vars); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

var envKeys = []string{
	"SNAKE_ROWS", "SNAKE_COLS", "SNAKE_LENGTH", "SNAKE_APPLES",
	"SNAKE_TIMER_START_MS", "SNAKE_TIMER_STEP_MS", "SNAKE_TIMER_EVERY", "SNAKE_TIMER_MIN_MS",
	"SNAKE_SEED",
}

// apply overrides fields from SNAKE_* variables.
func (c *Config) apply(vars map[string]string) error {
	ints := map[string]*int{
		"SNAKE_ROWS":        &c.Rows,
		"SNAKE_COLS":        &c.Cols,
		"SNAKE_LENGTH":      &c.SnakeLength,
		"SNAKE_APPLES":      &c.Apples,
		"SNAKE_TIMER_EVERY": &c.Timer.Every,
	}
	millis := map[string]*time.Duration{
		"SNAKE_TIMER_START_MS": &c.Timer.Start,
		"SNAKE_TIMER_STEP_MS":  &c.Timer.Step,
		"SNAKE_TIMER_MIN_MS":   &c.Timer.Min,
	}

	var errs []error
	for key, dst := range ints {
		v, ok := vars[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		*dst = n
	}
	for key, dst := range millis {
		v, ok := vars[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		*dst = time.Duration(n) * time.Millisecond
	}
	if v, ok := vars["SNAKE_SEED"]; ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNAKE_SEED: %w", err))
		} else {
			c.Seed = seed
		}
	}
	return errors.Join(errs...)
}

// Validate reports every setting that would make the board unplayable.
func (c Config) Validate() error {
	var errs []error
	if c.Rows < 1 || c.Cols < 1 {
		errs = append(errs, fmt.Errorf("board %dx%d has no cells", c.Rows, c.Cols))
	}
	if c.SnakeLength < 1 {
		errs = append(errs, fmt.Errorf("snake length %d must be at least 1", c.SnakeLength))
	} else if c.Rows/2+c.SnakeLength > c.Rows {
		errs = append(errs, fmt.Errorf("snake length %d does not fit below the center of %d rows", c.SnakeLength, c.Rows))
	}
	if c.Apples < 0 {
		errs = append(errs, fmt.Errorf("apple count %d is negative", c.Apples))
	} else if free := c.Rows*c.Cols - c.SnakeLength; c.Rows > 0 && c.Cols > 0 && c.Apples >= free {
		// One free cell must remain so an eaten apple can be replaced
		errs = append(errs, fmt.Errorf("%d apples leave no free cell on a %dx%d board", c.Apples, c.Rows, c.Cols))
	}
	if c.Timer.Start <= 0 {
		errs = append(errs, fmt.Errorf("timer start %v must be positive", c.Timer.Start))
	}
	if c.Timer.Step < 0 {
		errs = append(errs, fmt.Errorf("timer step %v is negative", c.Timer.Step))
	}
	if c.Timer.Every < 1 {
		errs = append(errs, fmt.Errorf("timer every %d must be at least 1", c.Timer.Every))
	}
	if c.Timer.Min <= 0 {
		errs = append(errs, fmt.Errorf("timer minimum %v must be positive", c.Timer.Min))
	}
	return errors.Join(errs...)
}
