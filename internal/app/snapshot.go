package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Garsondee/Night-Shift/internal/auth"
	"github.com/Garsondee/Night-Shift/internal/config"
	"github.com/Garsondee/Night-Shift/internal/round"
	"github.com/Garsondee/Night-Shift/internal/session"
)

// Snapshot is the read-only view the presentation layer renders from.
type Snapshot struct {
	Screen    Screen
	Username  string
	SessionID uuid.UUID
	AuthMode  auth.Mode
	FormReady bool
	Profile   session.PlayerProfile
	Missions  []session.Mission
	Round     round.State
	Phase     round.Phase
	Settings  config.Settings
}

func (a *App) Snapshot() Snapshot {
	s := Snapshot{
		Screen:    a.screen,
		SessionID: a.sessionID,
		AuthMode:  a.form.Mode,
		FormReady: a.form.Ready(),
		Profile:   a.session.Profile(),
		Missions:  a.session.Missions(),
		Round:     a.engine.State(),
		Phase:     a.engine.Phase(),
		Settings:  a.settings,
	}
	if a.account != nil {
		s.Username = a.account.Username
	}
	return s
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Report is a plain-text summary of the session, suitable for the clipboard.
func (a *App) Report() string {
	snap := a.Snapshot()
	p := snap.Profile

	var sb strings.Builder
	sb.WriteString("=== Night Shift report ===\n")
	user := snap.Username
	if user == "" {
		user = "(guest)"
	}
	fmt.Fprintf(&sb, "player:     %s\n", user)
	if snap.SessionID != uuid.Nil {
		fmt.Fprintf(&sb, "session:    %s\n", snap.SessionID)
	}
	fmt.Fprintf(&sb, "level:      %d\n", p.Level)
	fmt.Fprintf(&sb, "experience: %d\n", p.Experience)
	fmt.Fprintf(&sb, "currency:   $%d\n", p.Currency)
	fmt.Fprintf(&sb, "missions:   %d\n", p.CompletedMissions)
	fmt.Fprintf(&sb, "kills:      %d\n", p.Kills)
	sb.WriteString("--- missions ---\n")
	for _, m := range snap.Missions {
		fmt.Fprintf(&sb, "#%d %-16s %-6s $%-5d %s\n", m.ID, m.Title, m.Difficulty, m.Reward, m.Status)
	}
	if snap.Phase != round.PhaseIdle {
		r := snap.Round
		sb.WriteString("--- last hunt ---\n")
		fmt.Fprintf(&sb, "phase %s, result %s, %d/%d eliminated, %s left\n",
			snap.Phase, r.Result, r.Eliminated, r.TargetCount, FormatClock(r.TimeRemaining))
	}
	return sb.String()
}
