package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Night-Shift/internal/app"
)

const (
	settingsRowY   = 190
	settingsRowGap = 80
	settingsValX   = mainW/2 + 40
)

func (g *Game) settingsButtons() []button {
	row := func(i int) int { return settingsRowY + i*settingsRowGap - 26 }
	small := func(x, y int, label string, fn func()) button {
		return newButton(x, y, 40, 36, label, fn)
	}
	return []button{
		backButton(g.navigate(app.ScreenMenu)),
		small(settingsValX+120, row(0), "-", func() { g.app.AdjustTargets(-1) }),
		small(settingsValX+170, row(0), "+", func() { g.app.AdjustTargets(1) }),
		small(settingsValX+120, row(1), "-", func() { g.app.AdjustDuration(-1) }),
		small(settingsValX+170, row(1), "+", func() { g.app.AdjustDuration(1) }),
		newButton(settingsValX+120, row(2), 90, 36, "cycle", g.app.CycleDifficulty),
	}
}

func (g *Game) drawSettings(screen *ebiten.Image, snap app.Snapshot) {
	g.drawTitle(screen, "MASK SETTINGS", 60, accentRed)
	s := snap.Settings
	rows := []struct {
		label string
		value string
	}{
		{"Victims per hunt", fmt.Sprint(s.TargetCount)},
		{"Hunt duration", app.FormatClock(s.RoundSeconds)},
		{"Difficulty", s.Difficulty.String()},
	}
	for i, r := range rows {
		y := settingsRowY + i*settingsRowGap
		drawText(screen, r.label, mainW/2-260, y, mutedColor)
		drawText(screen, r.value, settingsValX, y, textColor)
	}
	drawTextCentered(screen, "Changes apply from the next hunt and are not saved.", settingsRowY+3*settingsRowGap, mutedColor)
}

// buttons returns the clickable controls of the current screen.
func (g *Game) buttons() []button {
	switch g.app.Screen() {
	case app.ScreenAuth:
		return g.authButtons()
	case app.ScreenMenu:
		return g.menuButtons()
	case app.ScreenMissions:
		return g.missionButtons()
	case app.ScreenRound:
		return g.roundButtons()
	case app.ScreenSettings:
		return g.settingsButtons()
	}
	return nil
}
