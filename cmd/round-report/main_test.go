package main

import (
	"testing"

	"github.com/Garsondee/Night-Shift/internal/round"
)

func TestTally(t *testing.T) {
	all := []runStats{
		{result: round.ResultWin},
		{result: round.ResultLose},
		{result: round.ResultWin},
		{result: round.ResultNone},
	}
	wins, losses := tally(all)
	if wins != 2 || losses != 1 {
		t.Fatalf("expected wins=2 losses=1, got wins=%d losses=%d", wins, losses)
	}
}

func TestWinRate(t *testing.T) {
	if got := winRate(3, 4); got != 75 {
		t.Fatalf("expected 75, got %.1f", got)
	}
	if got := winRate(0, 0); got != 0 {
		t.Fatalf("zero runs should give 0, got %.1f", got)
	}
}

func TestCollect_FastKillerWins(t *testing.T) {
	sim := round.NewSim(round.WithSeed(1), round.WithDuration(60), round.WithKillEvery(10))
	sim.RunToEnd()
	rs := collect(1, 1, sim)
	if rs.result != round.ResultWin || rs.eliminated != 3 {
		t.Fatalf("expected a win with 3 eliminations, got %+v", rs)
	}
	if rs.firstKill != 10 || rs.lastKill != 30 || rs.resolveSecond != 60 {
		t.Fatalf("unexpected timing %+v", rs)
	}
	// seconds 40 and 50 find no target left
	if rs.rejected != 2 {
		t.Fatalf("expected 2 rejected eliminations, got %d", rs.rejected)
	}
}

func TestCollect_SlowKillerLoses(t *testing.T) {
	sim := round.NewSim(round.WithSeed(1), round.WithDuration(120), round.WithKillEvery(45))
	sim.RunToEnd()
	rs := collect(1, 1, sim)
	if rs.result != round.ResultLose || rs.eliminated != 2 {
		t.Fatalf("two kills in 120s should lose, got %+v", rs)
	}
}

func TestCollect_NoKills(t *testing.T) {
	sim := round.NewSim(round.WithDuration(5), round.WithKillEvery(0))
	sim.RunToEnd()
	rs := collect(1, 1, sim)
	if rs.firstKill != -1 || secondString(rs.firstKill) != "n/a" {
		t.Fatalf("expected no kills, got %+v", rs)
	}
}

func TestAvgSecondString(t *testing.T) {
	if got := avgSecondString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
	if got := avgSecondString([]int{10, 20}); got != "15.0s" {
		t.Fatalf("expected 15.0s, got %q", got)
	}
}
