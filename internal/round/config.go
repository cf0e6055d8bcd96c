package round

import "github.com/Garsondee/Night-Shift/internal/difficulty"

// Fixed field geometry.
const (
	FieldSize      = 100 // 10x10 cells
	FieldColumns   = 10
	HomeCell       = 90
	targetBase     = 10
	targetStride   = 15
	targetJitter   = 10 // uniform [0,9]
	DefaultTargets = 3
	DefaultSeconds = 120

	// MaxTargets is the largest count whose placement bands all stay clear
	// of HomeCell; band 5 spans cells 85..94.
	MaxTargets = 5
)

// Config is fixed for the lifetime of a round.
type Config struct {
	TargetCount     int
	DurationSeconds int
	Difficulty      difficulty.Level // accepted, does not change the rules
}

func DefaultConfig() Config {
	return Config{
		TargetCount:     DefaultTargets,
		DurationSeconds: DefaultSeconds,
		Difficulty:      difficulty.Medium,
	}
}

// normalized replaces values Start cannot honour: a negative target count
// becomes 0 and a non-positive duration falls back to the default.
func (c Config) normalized() Config {
	if c.TargetCount < 0 {
		c.TargetCount = 0
	}
	if c.DurationSeconds <= 0 {
		c.DurationSeconds = DefaultSeconds
	}
	return c
}
