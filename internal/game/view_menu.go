package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Night-Shift/internal/app"
)

const (
	menuBtnW = 320
	menuBtnH = 52
	menuBtnY = 190
	menuGap  = 66
)

func (g *Game) navigate(to app.Screen) func() {
	return func() { _ = g.app.Navigate(to) }
}

func (g *Game) menuButtons() []button {
	x := (mainW - menuBtnW) / 2
	hunt := newButton(x, menuBtnY+menuGap, menuBtnW, menuBtnH, "HUNT", g.navigate(app.ScreenRound))
	hunt.accent = purple
	settings := newButton(x, menuBtnY+2*menuGap, menuBtnW, menuBtnH, "Mask settings", g.navigate(app.ScreenSettings))
	settings.accent = lockedColor
	report := newButton(x, menuBtnY+3*menuGap, menuBtnW, 36, "Copy report [C]", g.copyReport)
	report.accent = accentDim
	logout := newButton(x, menuBtnY+3*menuGap+48, menuBtnW, 36, "Log out", g.app.Logout)
	logout.accent = accentDim
	return []button{
		newButton(x, menuBtnY, menuBtnW, menuBtnH, "CHOOSE A TARGET", g.navigate(app.ScreenMissions)),
		hunt,
		settings,
		report,
		logout,
	}
}

func (g *Game) drawMenu(screen *ebiten.Image, snap app.Snapshot) {
	g.drawTitle(screen, "NIGHT SHIFT", 50, accentRed)
	drawTextCentered(screen, fmt.Sprintf("Welcome back, %s. Put on the mask.", snap.Username), 140, mutedColor)

	p := snap.Profile
	panel := rect{x: (mainW - 520) / 2, y: 560, w: 520, h: 150}
	drawPanel(screen, panel, accentDim)
	drawText(screen, "FREDDY'S STATS", panel.x+16, panel.y+24, accentRed)
	cols := []struct {
		label string
		value string
	}{
		{"Level", fmt.Sprint(p.Level)},
		{"Experience", fmt.Sprint(p.Experience)},
		{"Money", fmt.Sprintf("$%d", p.Currency)},
		{"Missions", fmt.Sprint(p.CompletedMissions)},
		{"Kills", fmt.Sprint(p.Kills)},
	}
	colW := (panel.w - 32) / len(cols)
	for i, c := range cols {
		x := panel.x + 16 + i*colW
		drawText(screen, c.value, x, panel.y+80, textColor)
		drawText(screen, c.label, x, panel.y+104, mutedColor)
	}

	if g.noteTTL > 0 {
		drawTextCentered(screen, g.copyNote, panel.y+panel.h+30, goodColor)
	}
}
