package game

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/Garsondee/Night-Shift/internal/app"
	"github.com/Garsondee/Night-Shift/internal/config"
	"github.com/Garsondee/Night-Shift/internal/logging"
	"github.com/Garsondee/Night-Shift/internal/round"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := config.Defaults()
	s.Seed = 3
	a := app.New(s)
	if err := a.Login("freddy", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return New(a)
}

// --- ActivityLog ---

func TestActivityLog_RecentInOrder(t *testing.T) {
	l := NewActivityLog(logMaxEntries)
	l.Add(ActivityEntry{Second: 1, Message: "a"})
	l.Add(ActivityEntry{Second: 2, Message: "b"})
	got := l.Recent()
	if len(got) != 2 || got[0].Message != "a" || got[1].Message != "b" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestActivityLog_DropsOldestAtLimit(t *testing.T) {
	l := NewActivityLog(logMaxEntries)
	for i := 0; i < logMaxEntries+5; i++ {
		l.Add(ActivityEntry{Second: i, Message: "x"})
	}
	got := l.Recent()
	if len(got) != logMaxEntries {
		t.Fatalf("expected %d entries, got %d", logMaxEntries, len(got))
	}
	if got[0].Second != 5 || got[len(got)-1].Second != logMaxEntries+4 {
		t.Fatalf("oldest entries should be dropped first: first=%d last=%d", got[0].Second, got[len(got)-1].Second)
	}
	last := l.Last(3)
	if len(last) != 3 || last[2].Second != logMaxEntries+4 {
		t.Fatalf("unexpected tail %+v", last)
	}
}

func TestActivityLog_FiltersByScreen(t *testing.T) {
	l := NewActivityLog(4)
	l.Add(ActivityEntry{Screen: app.ScreenMenu, Message: "menu"})
	l.Add(ActivityEntry{Screen: app.ScreenRound, Clock: "1:59", Message: "kill"})
	got := l.On(app.ScreenRound)
	if len(got) != 1 || got[0].Message != "kill" || got[0].tag() != "1:59" {
		t.Fatalf("unexpected round entries %+v", got)
	}
	if l.Recent()[0].tag() != "menu" {
		t.Fatal("entries outside a hunt should be tagged with the screen")
	}
}

// --- field geometry ---

func TestCellAt_RoundTrip(t *testing.T) {
	for cell := 0; cell < round.FieldSize; cell++ {
		x, y := cellOrigin(cell)
		got, ok := cellAt(x+cellPx/2, y+cellPx/2)
		if !ok || got != cell {
			t.Fatalf("cell %d: centre maps to %d ok=%v", cell, got, ok)
		}
	}
}

func TestCellAt_OutsideField(t *testing.T) {
	if _, ok := cellAt(fieldX-1, fieldY); ok {
		t.Fatal("left of the field should miss")
	}
	if _, ok := cellAt(fieldX, fieldY+fieldPx); ok {
		t.Fatal("below the field should miss")
	}
}

func TestField_FitsMainArea(t *testing.T) {
	if fieldX < 0 || fieldX+fieldPx > mainW || fieldY+fieldPx > screenH {
		t.Fatalf("field %d+%d does not fit %dx%d", fieldX, fieldPx, mainW, screenH)
	}
}

// --- widgets ---

func TestWrap(t *testing.T) {
	lines := wrap("Take out the target in the old building", 12)
	for _, l := range lines {
		if len(l) > 12 {
			t.Fatalf("line %q longer than 12", l)
		}
	}
	if strings.Join(lines, " ") != "Take out the target in the old building" {
		t.Fatalf("wrap lost words: %q", lines)
	}
}

func TestButtons_MissionStatesDriveEnabled(t *testing.T) {
	g := newTestGame(t)
	_ = g.app.Navigate(app.ScreenMissions)
	bs := g.buttons()
	// back + one per mission
	if len(bs) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(bs))
	}
	if !bs[1].enabled || !bs[2].enabled || bs[3].enabled {
		t.Fatal("missions 1 and 2 should be clickable and 3 locked")
	}
	bs[2].action()
	bs = g.buttons()
	if bs[2].enabled || !bs[3].enabled {
		t.Fatal("completing mission 2 should disable it and unlock mission 3")
	}
}

func TestAuthButtons_SubmitDisabledUntilReady(t *testing.T) {
	s := config.Defaults()
	g := New(app.New(s))
	if g.authButtons()[0].enabled {
		t.Fatal("empty form should disable submit")
	}
	g.app.Form().Username = "freddy"
	g.app.Form().Password = "pw"
	if !g.authButtons()[0].enabled {
		t.Fatal("filled form should enable submit")
	}
}

// --- clipboard ---

func TestCopyReport_WritesClipboard(t *testing.T) {
	g := newTestGame(t)
	var got string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		got = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })
	g.copyReport()
	if !strings.Contains(got, "player:     freddy") {
		t.Fatalf("clipboard did not receive the report: %q", got)
	}
	if g.copyNote != "report copied" {
		t.Fatalf("unexpected note %q", g.copyNote)
	}
}

func TestCopyReport_FailureIsNoted(t *testing.T) {
	g := newTestGame(t)
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { writeClipboard = orig })
	g.copyReport()
	if g.copyNote != "clipboard unavailable" {
		t.Fatalf("unexpected note %q", g.copyNote)
	}
}

func TestEvents_ReachActivityLog(t *testing.T) {
	g := newTestGame(t)
	_ = g.app.StartRound()
	recent := g.log.Recent()
	last := recent[len(recent)-1]
	if !strings.Contains(last.Message, "hunt started") {
		t.Fatalf("expected round start in activity log, got %+v", recent)
	}
	if last.Screen != app.ScreenRound || last.Clock != app.FormatClock(g.app.Settings().RoundSeconds) {
		t.Fatalf("round entry should carry screen and clock, got %+v", last)
	}
}

// --- shortcuts ---

func TestShortcuts_EscapeAndSpaceLeaveRound(t *testing.T) {
	g := newTestGame(t)
	_ = g.app.StartRound()
	g.applyShortcuts(shortcuts{escape: true, space: true})
	snap := g.app.Snapshot()
	if snap.Screen != app.ScreenMenu || snap.Phase != round.PhaseIdle {
		t.Fatalf("escape should win over space, got screen=%s phase=%s", snap.Screen, snap.Phase)
	}
}

func TestShortcuts_SpaceRestartsOnRoundOnly(t *testing.T) {
	g := newTestGame(t)
	g.applyShortcuts(shortcuts{space: true})
	if g.app.Screen() != app.ScreenMenu {
		t.Fatal("space on the menu should do nothing")
	}
	_ = g.app.StartRound()
	first := g.app.Snapshot().Round.ID
	g.applyShortcuts(shortcuts{space: true})
	if g.app.Snapshot().Round.ID == first || g.app.Snapshot().Phase != round.PhaseRunning {
		t.Fatal("space on the round screen should start a new hunt")
	}
}
