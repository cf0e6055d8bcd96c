package round

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/google/uuid"
)

var (
	ErrInvalidTargetIndex = errors.New("invalid target index")
	ErrRoundNotRunning    = errors.New("round not running")
)

type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLose
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "unknown"
	}
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// State is a snapshot of one round. Targets holds grid cell indices in the
// order they were generated, minus eliminated ones.
type State struct {
	ID            uuid.UUID
	Running       bool
	TimeRemaining int
	PlayerCell    int
	Targets       []int
	TargetCount   int // targets at round start
	Eliminated    int
	Result        Result
}

// Engine runs one timed round at a time. All methods must be called from the
// goroutine that drives the TickSource.
type Engine struct {
	clock  TickSource
	rng    *rand.Rand
	log    *EventLog
	cancel func()

	cfg     Config
	state   State
	phase   Phase
	elapsed int

	onResolve func(State)
}

// NewEngine creates an idle engine. log may be nil.
func NewEngine(clock TickSource, rng *rand.Rand, log *EventLog) *Engine {
	if log == nil {
		log = NewEventLog(false)
	}
	return &Engine{
		clock: clock,
		rng:   rng,
		log:   log,
		cfg:   DefaultConfig(),
	}
}

// OnResolve registers a callback run once when a round reaches Win or Lose.
func (e *Engine) OnResolve(fn func(State)) {
	e.onResolve = fn
}

// Start discards any previous round and begins a new one.
func (e *Engine) Start(cfg Config) {
	e.unsubscribe()

	cfg = cfg.normalized()
	targets := make([]int, cfg.TargetCount)
	for i := range targets {
		targets[i] = targetBase + targetStride*i + e.rng.Intn(targetJitter)
	}

	e.cfg = cfg
	e.elapsed = 0
	e.phase = PhaseRunning
	e.state = State{
		ID:            uuid.New(),
		Running:       true,
		TimeRemaining: cfg.DurationSeconds,
		PlayerCell:    HomeCell,
		Targets:       targets,
		TargetCount:   cfg.TargetCount,
		Result:        ResultNone,
	}
	e.cancel = e.clock.Subscribe(e.Tick)

	e.log.Add(0, e.shortID(), "round", "start",
		fmt.Sprintf("targets=%d seconds=%d difficulty=%s cells=%v", cfg.TargetCount, cfg.DurationSeconds, cfg.Difficulty, targets),
		float64(cfg.TargetCount))
}

// Tick advances the countdown by one second. It does nothing unless a round
// is running with time left.
func (e *Engine) Tick() {
	if e.phase != PhaseRunning || e.state.TimeRemaining <= 0 {
		return
	}
	e.state.TimeRemaining--
	e.elapsed++
	e.log.AddVerbose(e.elapsed, e.shortID(), "tick", "countdown",
		fmt.Sprintf("%d left", e.state.TimeRemaining), float64(e.state.TimeRemaining))
	if e.state.TimeRemaining > 0 {
		return
	}

	e.unsubscribe()
	e.phase = PhaseResolved
	e.state.Running = false
	if e.state.Eliminated >= e.cfg.TargetCount {
		e.state.Result = ResultWin
	} else {
		e.state.Result = ResultLose
	}
	e.log.Add(e.elapsed, e.shortID(), "round", "resolve",
		fmt.Sprintf("%s eliminated=%d/%d", e.state.Result, e.state.Eliminated, e.cfg.TargetCount),
		float64(e.state.Eliminated))
	if e.onResolve != nil {
		e.onResolve(e.State())
	}
}

// Eliminate removes the target at index in the current target sequence.
// The round keeps running even when the last target goes.
func (e *Engine) Eliminate(index int) error {
	if e.phase != PhaseRunning {
		return ErrRoundNotRunning
	}
	if index < 0 || index >= len(e.state.Targets) {
		e.log.Add(e.elapsed, e.shortID(), "target", "reject", fmt.Sprintf("index %d of %d", index, len(e.state.Targets)), float64(index))
		return fmt.Errorf("%w: %d of %d", ErrInvalidTargetIndex, index, len(e.state.Targets))
	}
	cell := e.state.Targets[index]
	e.state.Targets = slices.Delete(e.state.Targets, index, index+1)
	e.state.Eliminated++
	e.log.Add(e.elapsed, e.shortID(), "target", "eliminate",
		fmt.Sprintf("cell %d (%d/%d)", cell, e.state.Eliminated, e.cfg.TargetCount), float64(cell))
	return nil
}

// TargetAt returns the sequence index of the target standing on cell.
func (e *Engine) TargetAt(cell int) (int, bool) {
	i := slices.Index(e.state.Targets, cell)
	return i, i >= 0
}

// Stop abandons a running round and releases its tick subscription. The
// engine returns to idle with no result. A resolved round is left as is.
func (e *Engine) Stop() {
	e.unsubscribe()
	if e.phase != PhaseRunning {
		return
	}
	e.phase = PhaseIdle
	e.state.Running = false
	e.state.Result = ResultNone
	e.log.Add(e.elapsed, e.shortID(), "round", "stop",
		fmt.Sprintf("abandoned with %ds left", e.state.TimeRemaining), float64(e.state.TimeRemaining))
}

// Reset releases the tick subscription and forgets the current or last
// round entirely, leaving the engine as NewEngine returned it.
func (e *Engine) Reset() {
	e.unsubscribe()
	if e.phase == PhaseIdle && e.state.ID == uuid.Nil {
		return
	}
	e.log.Add(e.elapsed, e.shortID(), "round", "reset", e.phase.String(), 0)
	e.phase = PhaseIdle
	e.state = State{}
	e.cfg = Config{}
	e.elapsed = 0
}

// State returns a copy of the current round.
func (e *Engine) State() State {
	s := e.state
	s.Targets = slices.Clone(e.state.Targets)
	return s
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// Config returns the configuration of the current or last round.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Log() *EventLog {
	return e.log
}

func (e *Engine) unsubscribe() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) shortID() string {
	if e.state.ID == uuid.Nil {
		return "--"
	}
	return e.state.ID.String()[:8]
}
