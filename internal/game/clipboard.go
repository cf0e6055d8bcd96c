package game

import (
	"github.com/atotto/clipboard"

	"github.com/Garsondee/Night-Shift/internal/logging"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyReport puts the session report on the system clipboard.
func (g *Game) copyReport() {
	if err := writeClipboard(g.app.Report()); err != nil {
		logging.Error("clipboard copy failed", err, nil)
		g.note("clipboard unavailable")
		return
	}
	g.note("report copied")
	g.record("report copied to clipboard")
}
