package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Garsondee/Night-Shift/internal/difficulty"
	"github.com/Garsondee/Night-Shift/internal/round"
)

// Environment keys read by Load.
const (
	EnvTargets      = "NIGHTSHIFT_TARGETS"
	EnvRoundSeconds = "NIGHTSHIFT_ROUND_SECONDS"
	EnvDifficulty   = "NIGHTSHIFT_DIFFICULTY"
	EnvSeed         = "NIGHTSHIFT_SEED"
	EnvTPS          = "NIGHTSHIFT_TPS"
)

// Bounds enforced by Validate and by the in-game settings page.
const (
	MaxTargets      = round.MaxTargets
	MinRoundSeconds = 1
	MaxRoundSeconds = 3600
	MaxTPS          = 240
)

var ErrInvalid = errors.New("invalid config")

// Settings holds the adjustable round parameters plus process-level knobs.
type Settings struct {
	TargetCount  int
	RoundSeconds int
	Difficulty   difficulty.Level // accepted, does not change round rules
	Seed         int64            // 0 = seed from the clock
	TPS          int
}

// Defaults returns the settings a fresh install starts with.
func Defaults() Settings {
	return Settings{
		TargetCount:  3,
		RoundSeconds: 120,
		Difficulty:   difficulty.Medium,
		TPS:          60,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalid.
func (s Settings) Validate() error {
	if s.TargetCount < 0 || s.TargetCount > MaxTargets {
		return fmt.Errorf("%w: target count %d outside 0..%d", ErrInvalid, s.TargetCount, MaxTargets)
	}
	if s.RoundSeconds < MinRoundSeconds || s.RoundSeconds > MaxRoundSeconds {
		return fmt.Errorf("%w: round seconds %d outside %d..%d", ErrInvalid, s.RoundSeconds, MinRoundSeconds, MaxRoundSeconds)
	}
	if s.TPS < 1 || s.TPS > MaxTPS {
		return fmt.Errorf("%w: tps %d outside 1..%d", ErrInvalid, s.TPS, MaxTPS)
	}
	return nil
}

// Load builds Settings from defaults, then the optional dotenv file at path,
// then the process environment (which wins). A missing file is not an error.
func Load(path string) (Settings, error) {
	fileVals := map[string]string{}
	if path != "" {
		vals, err := godotenv.Read(path)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Settings{}, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	s := Defaults()
	var err error
	if s.TargetCount, err = intVar(lookup, EnvTargets, s.TargetCount); err != nil {
		return Settings{}, err
	}
	if s.RoundSeconds, err = intVar(lookup, EnvRoundSeconds, s.RoundSeconds); err != nil {
		return Settings{}, err
	}
	if s.TPS, err = intVar(lookup, EnvTPS, s.TPS); err != nil {
		return Settings{}, err
	}
	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, perr := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if perr != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, perr)
		}
		s.Seed = seed
	}
	if v, ok := lookup(EnvDifficulty); ok && strings.TrimSpace(v) != "" {
		lvl, perr := difficulty.Parse(v)
		if perr != nil {
			return Settings{}, fmt.Errorf("%w: %s: %v", ErrInvalid, EnvDifficulty, perr)
		}
		s.Difficulty = lvl
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func intVar(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
	}
	return n, nil
}
