package round

import (
	"math/rand"
)

// Sim is a headless round harness used by tests and the report command.
// It mirrors the game's update loop without Ebitengine: every frame advances
// the FrameClock, and a scripted player eliminates targets on a schedule.
type Sim struct {
	Engine *Engine
	Clock  *FrameClock
	Log    *EventLog
	Frame  int
	Kills  int // successful scripted eliminations

	cfg           Config
	framesPerTick int
	rng           *rand.Rand
	verbose       bool
	schedule      map[int][]int // elapsed second → target indices
	killEvery     int
	second        int
}

// SimOption configures a Sim before its round starts.
type SimOption func(*Sim)

// WithSeed sets the RNG seed for deterministic target placement.
func WithSeed(seed int64) SimOption {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- harness
	}
}

// WithConfig replaces the whole round config.
func WithConfig(cfg Config) SimOption {
	return func(s *Sim) { s.cfg = cfg }
}

func WithTargets(n int) SimOption {
	return func(s *Sim) { s.cfg.TargetCount = n }
}

func WithDuration(seconds int) SimOption {
	return func(s *Sim) { s.cfg.DurationSeconds = seconds }
}

// WithFramesPerTick sets how many frames make one second (default 1).
func WithFramesPerTick(n int) SimOption {
	return func(s *Sim) { s.framesPerTick = n }
}

// WithVerbose keeps per-second countdown events in the log.
func WithVerbose(v bool) SimOption {
	return func(s *Sim) { s.verbose = v }
}

// WithEliminationAt eliminates the target at index once second seconds have
// elapsed. Second 0 fires right after the round starts.
func WithEliminationAt(second, index int) SimOption {
	return func(s *Sim) {
		s.schedule[second] = append(s.schedule[second], index)
	}
}

// WithKillEvery eliminates the first remaining target every n seconds.
func WithKillEvery(n int) SimOption {
	return func(s *Sim) { s.killEvery = n }
}

// NewSim builds the harness and starts the round.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		cfg:           DefaultConfig(),
		framesPerTick: 1,
		rng:           rand.New(rand.NewSource(1)), // #nosec G404 -- harness default
		schedule:      map[int][]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Clock = NewFrameClock(s.framesPerTick)
	s.Log = NewEventLog(s.verbose)
	s.Engine = NewEngine(s.Clock, s.rng, s.Log)
	s.Engine.Start(s.cfg)
	// Subscribed after the engine, so each second the countdown moves first
	// and the scripted player reacts to it.
	s.Clock.Subscribe(s.onSecond)
	s.act()
	return s
}

func (s *Sim) onSecond() {
	s.second++
	s.act()
}

func (s *Sim) act() {
	for _, idx := range s.schedule[s.second] {
		s.eliminate(idx)
	}
	if s.killEvery > 0 && s.second > 0 && s.second%s.killEvery == 0 {
		s.eliminate(0)
	}
}

func (s *Sim) eliminate(idx int) {
	if err := s.Engine.Eliminate(idx); err == nil {
		s.Kills++
	}
}

// RunFrames advances n frames.
func (s *Sim) RunFrames(n int) {
	for i := 0; i < n; i++ {
		s.Frame++
		s.Clock.Advance()
	}
}

// RunSeconds advances n whole seconds.
func (s *Sim) RunSeconds(n int) {
	s.RunFrames(n * s.Clock.FramesPerTick())
}

// RunToEnd advances until the round leaves the running phase and returns
// the final state. It gives up after twice the configured duration.
func (s *Sim) RunToEnd() State {
	limit := 2 * s.Engine.Config().DurationSeconds * s.Clock.FramesPerTick()
	for i := 0; i < limit && s.Engine.Phase() == PhaseRunning; i++ {
		s.RunFrames(1)
	}
	return s.Engine.State()
}
