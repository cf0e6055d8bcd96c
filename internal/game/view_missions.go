package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Night-Shift/internal/app"
	"github.com/Garsondee/Night-Shift/internal/difficulty"
	"github.com/Garsondee/Night-Shift/internal/session"
)

const (
	cardW   = 290
	cardH   = 430
	cardGap = 15
	cardY   = 130
)

func backButton(action func()) button {
	b := newButton(20, 20, 150, 36, "< Back", action)
	b.accent = accentDim
	return b
}

func cardRect(i, n int) rect {
	total := n*cardW + (n-1)*cardGap
	return rect{x: (mainW-total)/2 + i*(cardW+cardGap), y: cardY, w: cardW, h: cardH}
}

func (g *Game) missionButtons() []button {
	missions := g.app.Snapshot().Missions
	out := []button{backButton(g.navigate(app.ScreenMenu))}
	for i, m := range missions {
		c := cardRect(i, len(missions))
		id := m.ID
		b := newButton(c.x+15, c.y+c.h-60, c.w-30, 44, missionAction(m.Status), func() { g.app.CompleteMission(id) })
		b.enabled = m.Status == session.MissionAvailable
		if m.Status == session.MissionCompleted {
			b.accent = goodColor
		}
		out = append(out, b)
	}
	return out
}

func missionAction(s session.MissionStatus) string {
	switch s {
	case session.MissionCompleted:
		return "Target eliminated"
	case session.MissionLocked:
		return "Locked"
	default:
		return "Start the hunt"
	}
}

func difficultyColor(l difficulty.Level) color.RGBA {
	switch l {
	case difficulty.Easy:
		return goodColor
	case difficulty.Medium:
		return targetColor
	default:
		return accentRed
	}
}

func (g *Game) drawMissions(screen *ebiten.Image, snap app.Snapshot) {
	g.drawTitle(screen, "TARGET LIST", 60, accentRed)
	for i, m := range snap.Missions {
		c := cardRect(i, len(snap.Missions))
		border := accentDim
		if m.Status == session.MissionCompleted {
			border = goodColor
		}
		drawPanel(screen, c, border)

		x := c.x + 15
		drawText(screen, m.Title, x, c.y+30, textColor)
		drawText(screen, strings.ToUpper(m.Difficulty.String()), c.x+c.w-15-len(m.Difficulty.String())*glyphW, c.y+30, difficultyColor(m.Difficulty))
		drawText(screen, "@ "+m.Location, x, c.y+56, mutedColor)
		y := c.y + 96
		for _, line := range wrap(m.Description, (c.w-30)/glyphW) {
			drawText(screen, line, x, y, textColor)
			y += glyphH + 5
		}
		drawText(screen, fmt.Sprintf("Reward: $%d", m.Reward), x, c.y+c.h-90, targetColor)
	}
}

// wrap splits s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
