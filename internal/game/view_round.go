package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Night-Shift/internal/app"
	"github.com/Garsondee/Night-Shift/internal/round"
)

func (g *Game) roundButtons() []button {
	label := "Start hunt [Space]"
	if g.app.Snapshot().Phase != round.PhaseIdle {
		label = "Restart hunt [Space]"
	}
	start := newButton(mainW-240, 20, 220, 36, label, func() { _ = g.app.StartRound() })
	start.accent = purple
	return []button{backButton(g.navigate(app.ScreenMenu)), start}
}

func (g *Game) drawRound(screen *ebiten.Image, snap app.Snapshot) {
	drawTextCentered(screen, "HUNTING GROUNDS", 44, accentRed)
	r := snap.Round
	hud := fmt.Sprintf("TIME %s   ELIMINATED %d/%d   DIFFICULTY %s",
		app.FormatClock(r.TimeRemaining), r.Eliminated, r.TargetCount, snap.Settings.Difficulty)
	if snap.Phase == round.PhaseIdle {
		hud = fmt.Sprintf("%d targets, %s on the clock", snap.Settings.TargetCount, app.FormatClock(snap.Settings.RoundSeconds))
	}
	drawTextCentered(screen, hud, 90, textColor)

	targets := map[int]bool{}
	if snap.Phase != round.PhaseIdle {
		for _, c := range r.Targets {
			targets[c] = true
		}
	}
	pulse := uint8(40 * ((g.frame / 15) % 2))
	for cell := 0; cell < round.FieldSize; cell++ {
		x, y := cellOrigin(cell)
		fill := color.RGBA{R: 20, G: 18, B: 20, A: 255}
		mark := ""
		switch {
		case snap.Phase != round.PhaseIdle && cell == r.PlayerCell:
			fill, mark = accentRed, "YOU"
		case targets[cell]:
			fill, mark = color.RGBA{R: 160 + pulse, G: 100, B: 10, A: 255}, "X"
		case obstacleCells[cell]:
			fill = color.RGBA{R: 55, G: 55, B: 60, A: 255}
		case darkZoneCells[cell]:
			fill = color.RGBA{R: 35, G: 10, B: 50, A: 255}
		}
		vector.FillRect(screen, float32(x+1), float32(y+1), cellPx-2, cellPx-2, fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), cellPx, cellPx, 1, color.RGBA{R: 40, G: 36, B: 40, A: 255}, false)
		if mark != "" {
			drawText(screen, mark, x+(cellPx-len(mark)*glyphW)/2, y+cellPx/2+5, textColor)
		}
	}

	switch {
	case snap.Phase == round.PhaseIdle:
		drawBanner(screen, "Press Start to begin the hunt", mutedColor)
	case r.Result == round.ResultWin:
		drawBanner(screen, "ALL TARGETS DOWN - YOU WIN", goodColor)
	case r.Result == round.ResultLose:
		drawBanner(screen, "TIME IS UP - YOU LOSE", accentRed)
	}
	drawTextCentered(screen, "YOU = Freddy   X = victim   grey = obstacle   purple = shadow", fieldY+fieldPx+30, mutedColor)
	drawTextCentered(screen, "Click a victim to take them out. Stay in the dark.", fieldY+fieldPx+52, mutedColor)
}

func drawBanner(screen *ebiten.Image, msg string, clr color.RGBA) {
	w := len(msg)*glyphW + 40
	r := rect{x: (mainW - w) / 2, y: fieldY + fieldPx/2 - 30, w: w, h: 60}
	drawPanel(screen, r, clr)
	drawText(screen, msg, r.x+20, r.y+35, clr)
}
