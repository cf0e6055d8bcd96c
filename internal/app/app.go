package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Garsondee/Night-Shift/internal/auth"
	"github.com/Garsondee/Night-Shift/internal/config"
	"github.com/Garsondee/Night-Shift/internal/logging"
	"github.com/Garsondee/Night-Shift/internal/round"
	"github.com/Garsondee/Night-Shift/internal/session"
)

var (
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrUnknownScreen = errors.New("unknown screen")
)

// Settings-page step sizes.
const (
	durationStep = 30
	minDuration  = 30
	maxDuration  = 600
)

// App owns every piece of game state and is the only mutation surface the
// presentation layer sees. It is driven from a single goroutine: intents are
// applied as they arrive and Update is called once per frame.
type App struct {
	screen    Screen
	form      auth.Form
	account   *auth.Account
	sessionID uuid.UUID
	session   *session.Session
	engine    *round.Engine
	clock     *round.FrameClock
	settings  config.Settings
	rng       *rand.Rand
	notify    func(string)
}

// New creates an app on the auth screen. Settings are assumed validated.
func New(settings config.Settings) *App {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	a := &App{
		screen:   ScreenAuth,
		settings: settings,
		rng:      rng,
		clock:    round.NewFrameClock(settings.TPS),
		session:  session.New(rng),
	}
	a.engine = round.NewEngine(a.clock, rng, nil)
	a.engine.OnResolve(a.roundResolved)
	return a
}

// OnEvent registers a sink for short human-readable event lines.
func (a *App) OnEvent(fn func(string)) {
	a.notify = fn
}

func (a *App) emit(format string, args ...interface{}) {
	if a.notify != nil {
		a.notify(fmt.Sprintf(format, args...))
	}
}

// --- auth ---

// Form exposes the auth form for text entry.
func (a *App) Form() *auth.Form {
	return &a.form
}

func (a *App) ToggleAuthMode() {
	a.form.ToggleMode()
}

// Login fills the form in login mode and submits it.
func (a *App) Login(username, password string) error {
	a.form = auth.Form{Mode: auth.ModeLogin, Username: username, Password: password}
	return a.SubmitForm()
}

// Register fills the form in registration mode and submits it.
func (a *App) Register(username, email, password string) error {
	a.form = auth.Form{Mode: auth.ModeRegister, Username: username, Email: email, Password: password}
	return a.SubmitForm()
}

// SubmitForm signs in with whatever the form holds and starts a fresh session.
func (a *App) SubmitForm() error {
	acct, err := a.form.Submit()
	if err != nil {
		return err
	}
	a.engine.Reset()
	a.account = &acct
	a.sessionID = uuid.New()
	a.session = session.New(a.rng)
	a.screen = ScreenMenu
	logging.Info("signed in", logging.Fields{
		"account": acct.ID.String(),
		"user":    acct.Username,
		"mode":    a.form.Mode.String(),
		"session": a.sessionID.String(),
	})
	a.emit("%s signed in", acct.Username)
	return nil
}

// Logout drops the account and its progress and returns to the auth screen.
func (a *App) Logout() {
	if a.account == nil {
		return
	}
	a.engine.Reset()
	logging.Info("signed out", logging.Fields{"user": a.account.Username, "session": a.sessionID.String()})
	a.account = nil
	a.sessionID = uuid.Nil
	a.session = session.New(a.rng)
	a.form = auth.Form{}
	a.screen = ScreenAuth
}

func (a *App) LoggedIn() bool {
	return a.account != nil
}

// --- navigation ---

// Navigate switches screens. Leaving the round screen abandons a running
// round and releases its tick.
func (a *App) Navigate(to Screen) error {
	if a.account == nil {
		return ErrNotLoggedIn
	}
	switch to {
	case ScreenMenu, ScreenMissions, ScreenRound, ScreenSettings:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownScreen, to)
	}
	if a.screen == ScreenRound && to != ScreenRound {
		if a.engine.Phase() == round.PhaseRunning {
			a.emit("hunt abandoned")
		}
		a.engine.Stop()
	}
	a.screen = to
	return nil
}

func (a *App) Screen() Screen {
	return a.screen
}

// --- round ---

// StartRound begins a round with the current settings, replacing any round
// in progress, and shows the round screen.
func (a *App) StartRound() error {
	if a.account == nil {
		return ErrNotLoggedIn
	}
	cfg := round.Config{
		TargetCount:     a.settings.TargetCount,
		DurationSeconds: a.settings.RoundSeconds,
		Difficulty:      a.settings.Difficulty,
	}
	a.engine.Start(cfg)
	a.screen = ScreenRound
	st := a.engine.State()
	logging.Info("round started", logging.Fields{
		"round":   st.ID.String(),
		"targets": st.Targets,
		"seconds": cfg.DurationSeconds,
	})
	a.emit("hunt started: %d targets, %s", cfg.TargetCount, FormatClock(cfg.DurationSeconds))
	return nil
}

// EliminateAt eliminates the target standing on cell and credits the
// profile. Cells without a target are rejected with round.ErrInvalidTargetIndex.
func (a *App) EliminateAt(cell int) error {
	if a.account == nil {
		return ErrNotLoggedIn
	}
	idx, ok := a.engine.TargetAt(cell)
	if !ok {
		idx = -1
	}
	if err := a.engine.Eliminate(idx); err != nil {
		return fmt.Errorf("eliminate at cell %d: %w", cell, err)
	}
	a.session.RecordElimination()
	st := a.engine.State()
	a.emit("target down at cell %d (%d/%d)", cell, st.Eliminated, st.TargetCount)
	return nil
}

func (a *App) roundResolved(st round.State) {
	logging.Info("round resolved", logging.Fields{
		"round":      st.ID.String(),
		"result":     st.Result.String(),
		"eliminated": st.Eliminated,
		"targets":    st.TargetCount,
	})
	a.emit("hunt over: %s (%d/%d)", st.Result, st.Eliminated, st.TargetCount)
}

// Update advances one frame of the tick clock.
func (a *App) Update() {
	a.clock.Advance()
}

// --- missions ---

// CompleteMission completes an available mission; anything else is ignored.
func (a *App) CompleteMission(id int) bool {
	if a.account == nil {
		return false
	}
	if !a.session.CompleteMission(id) {
		return false
	}
	if m, ok := a.session.Mission(id); ok {
		a.emit("mission done: %s (+%d)", m.Title, m.Reward)
	}
	return true
}

// --- settings ---

func (a *App) Settings() config.Settings {
	return a.settings
}

// AdjustTargets changes the target count by delta within 0..config.MaxTargets.
// It applies from the next round.
func (a *App) AdjustTargets(delta int) {
	a.settings.TargetCount = clamp(a.settings.TargetCount+delta, 0, config.MaxTargets)
	a.settingsChanged()
}

// AdjustDuration changes the round length by steps of 30 seconds.
func (a *App) AdjustDuration(steps int) {
	a.settings.RoundSeconds = clamp(a.settings.RoundSeconds+steps*durationStep, minDuration, maxDuration)
	a.settingsChanged()
}

func (a *App) CycleDifficulty() {
	a.settings.Difficulty = a.settings.Difficulty.Next()
	a.settingsChanged()
}

func (a *App) settingsChanged() {
	logging.Info("settings changed", logging.Fields{
		"targets":    a.settings.TargetCount,
		"seconds":    a.settings.RoundSeconds,
		"difficulty": a.settings.Difficulty.String(),
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
