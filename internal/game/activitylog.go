package game

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Night-Shift/internal/app"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 14
)

// ActivityEntry is one line of the activity panel, stamped with where the
// player was when it happened.
type ActivityEntry struct {
	Second  int // seconds since the window opened
	Screen  app.Screen
	Clock   string // round time left, empty outside a running hunt
	Message string
}

func (e ActivityEntry) tag() string {
	if e.Clock != "" {
		return e.Clock
	}
	return e.Screen.String()
}

// ActivityLog keeps the most recent entries up to a fixed limit.
type ActivityLog struct {
	entries []ActivityEntry
	limit   int
}

func NewActivityLog(limit int) *ActivityLog {
	if limit < 1 {
		limit = 1
	}
	return &ActivityLog{entries: make([]ActivityEntry, 0, limit), limit: limit}
}

// Add appends e, dropping the oldest entry once the log is full.
func (l *ActivityLog) Add(e ActivityEntry) {
	if len(l.entries) == l.limit {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.limit-1]
	}
	l.entries = append(l.entries, e)
}

// Recent returns a copy of the entries, oldest first.
func (l *ActivityLog) Recent() []ActivityEntry {
	return slices.Clone(l.entries)
}

// Last returns up to n of the newest entries, oldest first.
func (l *ActivityLog) Last(n int) []ActivityEntry {
	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return slices.Clone(l.entries[len(l.entries)-n:])
}

// On returns the entries recorded while s was showing.
func (l *ActivityLog) On(s app.Screen) []ActivityEntry {
	var out []ActivityEntry
	for _, e := range l.entries {
		if e.Screen == s {
			out = append(out, e)
		}
	}
	return out
}

// Draw renders the panel on the right side of the screen, newest at the bottom.
func (l *ActivityLog) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 14, G: 8, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, accentDim, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 40, G: 10, B: 14, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ACTIVITY", panelX+8, 0)

	entries := l.Last((panelH - 24) / logLineHeight)
	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 45, G: 14, B: 18, A: 160}, false)
		}
		line := fmt.Sprintf("%4d %-8s %s", e.Second, e.tag(), e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+6, y-2)
		y += logLineHeight
	}
}
