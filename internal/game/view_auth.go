package game

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Night-Shift/internal/app"
	"github.com/Garsondee/Night-Shift/internal/auth"
)

const (
	authFieldW   = 400
	authFieldH   = 36
	authFieldY   = 250
	authFieldGap = 70
	maxFieldLen  = 32
)

var fieldLabels = map[auth.Field]string{
	auth.FieldUsername: "Nickname",
	auth.FieldEmail:    "Email",
	auth.FieldPassword: "Password",
}

func (g *Game) fieldRects() []rect {
	fields := g.app.Form().Fields()
	out := make([]rect, len(fields))
	for i := range fields {
		out[i] = rect{x: (mainW - authFieldW) / 2, y: authFieldY + i*authFieldGap, w: authFieldW, h: authFieldH}
	}
	return out
}

func (g *Game) fieldAt(mx, my int) (int, bool) {
	for i, r := range g.fieldRects() {
		if r.hit(mx, my) {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) authButtons() []button {
	form := g.app.Form()
	y := authFieldY + len(form.Fields())*authFieldGap + 10
	label := "ENTER THE GAME"
	toggle := "No account? Register"
	if form.Mode == auth.ModeRegister {
		label = "CREATE ACCOUNT"
		toggle = "Have an account? Sign in"
	}
	submit := newButton((mainW-authFieldW)/2, y, authFieldW, 48, label, g.submitAuth)
	submit.enabled = form.Ready()
	swap := newButton((mainW-authFieldW)/2, y+64, authFieldW, 32, toggle, func() {
		g.app.ToggleAuthMode()
		g.focus = 0
	})
	swap.accent = accentDim
	return []button{submit, swap}
}

func (g *Game) submitAuth() {
	if err := g.app.SubmitForm(); err != nil {
		return
	}
	g.focus = 0
}

// handleAuthKeys edits the focused field: typed characters append,
// Backspace deletes (with key repeat), Tab moves focus, Enter submits.
func (g *Game) handleAuthKeys() {
	form := g.app.Form()
	fields := form.Fields()
	if g.focus >= len(fields) {
		g.focus = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.focus = (g.focus + 1) % len(fields)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.submitAuth()
		return
	}

	val := form.Value(fields[g.focus])
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if len([]rune(*val)) >= maxFieldLen || !unicode.IsPrint(r) {
			continue
		}
		*val += string(r)
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) && *val != "" {
		rs := []rune(*val)
		*val = string(rs[:len(rs)-1])
	}
}

// repeatingKeyPressed is true on the first frame of a press and then
// periodically while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) drawAuth(screen *ebiten.Image, snap app.Snapshot) {
	g.drawTitle(screen, "NIGHT SHIFT", 70, accentRed)
	heading, sub := "SIGN IN", "Enter Freddy's world"
	if snap.AuthMode == auth.ModeRegister {
		heading, sub = "REGISTER", "Create a killer's account"
	}
	drawTextCentered(screen, heading, 160, textColor)
	drawTextCentered(screen, sub, 182, mutedColor)

	form := g.app.Form()
	for i, r := range g.fieldRects() {
		field := form.Fields()[i]
		border := accentDim
		if i == g.focus {
			border = accentRed
		}
		drawText(screen, fieldLabels[field], r.x, r.y-6, mutedColor)
		drawPanel(screen, r, border)
		val := *form.Value(field)
		if field == auth.FieldPassword {
			val = strings.Repeat("*", len([]rune(val)))
		}
		if i == g.focus && (g.frame/30)%2 == 0 {
			val += "_"
		}
		drawText(screen, val, r.x+8, r.y+24, textColor)
	}
	drawTextCentered(screen, "Tab: next field   Enter: submit", screenH-40, mutedColor)
}
