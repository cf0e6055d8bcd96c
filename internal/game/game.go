package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Night-Shift/internal/app"
	"github.com/Garsondee/Night-Shift/internal/round"
)

const (
	screenW = 1280
	screenH = 800
	// mainW is the width left of the activity panel.
	mainW = screenW - logPanelWidth
)

var (
	bgColor     = color.RGBA{R: 8, G: 4, B: 6, A: 255}
	accentRed   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	accentDim   = color.RGBA{R: 90, G: 20, B: 24, A: 255}
	textColor   = color.RGBA{R: 230, G: 220, B: 220, A: 255}
	mutedColor  = color.RGBA{R: 140, G: 120, B: 120, A: 255}
	goodColor   = color.RGBA{R: 60, G: 180, B: 80, A: 255}
	lockedColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	purple      = color.RGBA{R: 130, G: 40, B: 170, A: 255}
	targetColor = color.RGBA{R: 220, G: 150, B: 20, A: 255}
)

// Game adapts app.App to ebiten.Game. It owns only view state (focus, frame
// counter, activity log); everything else is read from app snapshots.
type Game struct {
	app      *app.App
	log      *ActivityLog
	frame    int
	focus    int    // index into the auth form's visible fields
	runes    []rune // reused input buffer
	copyNote string // transient menu status line
	noteTTL  int

	// Offscreen buffer for headings, rendered at 1x then scaled.
	titleBuf *ebiten.Image
}

// New wraps a for rendering and wires its events into the activity log.
func New(a *app.App) *Game {
	g := &Game{
		app: a,
		log: NewActivityLog(logMaxEntries),
	}
	a.OnEvent(g.record)
	return g
}

// record adds msg to the activity log with the current screen and, during
// a hunt, the time left on the clock.
func (g *Game) record(msg string) {
	e := ActivityEntry{Second: g.second(), Screen: g.app.Screen(), Message: msg}
	if g.app.Screen() == app.ScreenRound {
		if snap := g.app.Snapshot(); snap.Phase == round.PhaseRunning {
			e.Clock = app.FormatClock(snap.Round.TimeRemaining)
		}
	}
	g.log.Add(e)
}

func (g *Game) Update() error {
	g.frame++
	if g.noteTTL > 0 {
		g.noteTTL--
	}

	g.handleInput()
	// The round countdown advances exactly once per frame, after input,
	// so an elimination in this frame lands before the tick.
	g.app.Update()
	return nil
}

// shortcuts is the set of shortcut keys pressed this frame.
type shortcuts struct {
	escape bool
	space  bool
	copy   bool
}

func pressedShortcuts() shortcuts {
	return shortcuts{
		escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		space:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		copy:   inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}

// applyShortcuts runs the keyboard shortcuts outside the auth screen.
// Each key acts on the screen showing when it is handled, so Escape and
// Space in the same frame leave the round instead of restarting it.
func (g *Game) applyShortcuts(k shortcuts) {
	if k.escape && g.app.Screen() != app.ScreenMenu {
		_ = g.app.Navigate(app.ScreenMenu)
	}
	if k.space && g.app.Screen() == app.ScreenRound {
		_ = g.app.StartRound()
	}
	if k.copy && g.app.Screen() == app.ScreenMenu {
		g.copyReport()
	}
}

// handleInput dispatches keyboard shortcuts, text entry and button clicks
// for the current screen.
func (g *Game) handleInput() {
	if g.app.Screen() == app.ScreenAuth {
		g.handleAuthKeys()
	} else {
		g.applyShortcuts(pressedShortcuts())
	}
	screen := g.app.Screen()

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for _, b := range g.buttons() {
		if b.enabled && b.hit(mx, my) {
			b.action()
			return
		}
	}
	switch screen {
	case app.ScreenRound:
		if cell, ok := cellAt(mx, my); ok {
			// Clicks on empty cells are rejected by the app and ignored here.
			_ = g.app.EliminateAt(cell)
		}
	case app.ScreenAuth:
		if i, ok := g.fieldAt(mx, my); ok {
			g.focus = i
		}
	}
}

// second is the wall-clock second since the window opened.
func (g *Game) second() int {
	return g.frame / ebiten.TPS()
}

func (g *Game) note(msg string) {
	g.copyNote = msg
	g.noteTTL = 3 * ebiten.TPS()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	snap := g.app.Snapshot()

	switch snap.Screen {
	case app.ScreenAuth:
		g.drawAuth(screen, snap)
	case app.ScreenMenu:
		g.drawMenu(screen, snap)
	case app.ScreenMissions:
		g.drawMissions(screen, snap)
	case app.ScreenRound:
		g.drawRound(screen, snap)
	case app.ScreenSettings:
		g.drawSettings(screen, snap)
	}
	for _, b := range g.buttons() {
		b.draw(screen)
	}
	g.log.Draw(screen, mainW, screenH)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}
