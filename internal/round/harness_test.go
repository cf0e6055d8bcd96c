package round

import "testing"

func TestSim_TwoKillsLoses(t *testing.T) {
	sim := NewSim(
		WithSeed(11),
		WithTargets(3),
		WithDuration(120),
		WithEliminationAt(0, 0),
		WithEliminationAt(0, 0),
	)
	s := sim.RunToEnd()
	if s.Result != ResultLose || s.Eliminated != 2 {
		t.Fatalf("expected lose with 2 eliminated, got %+v\n%s", s, sim.Log.Format())
	}
}

func TestSim_ThreeKillsBeforeLastTickWins(t *testing.T) {
	sim := NewSim(
		WithSeed(11),
		WithEliminationAt(10, 2),
		WithEliminationAt(60, 0),
		WithEliminationAt(119, 0),
	)
	s := sim.RunToEnd()
	if s.Result != ResultWin || s.Eliminated != 3 {
		t.Fatalf("expected win, got %+v\n%s", s, sim.Log.Format())
	}
}

func TestSim_KillAtFinalSecondIsTooLate(t *testing.T) {
	sim := NewSim(
		WithEliminationAt(1, 0),
		WithEliminationAt(2, 0),
		WithEliminationAt(120, 0),
	)
	s := sim.RunToEnd()
	if s.Result != ResultLose || sim.Kills != 2 {
		t.Fatalf("elimination after the last tick must not count: %+v kills=%d", s, sim.Kills)
	}
}

func TestSim_RealTimeCadence(t *testing.T) {
	sim := NewSim(WithFramesPerTick(60), WithDuration(10))
	sim.RunSeconds(4)
	if got := sim.Engine.State().TimeRemaining; got != 6 {
		t.Fatalf("expected 6s left after 240 frames, got %d", got)
	}
	s := sim.RunToEnd()
	if sim.Frame != 600 || s.TimeRemaining != 0 {
		t.Fatalf("expected resolution at frame 600, got frame %d state %+v", sim.Frame, s)
	}
}

func TestSim_KillEvery(t *testing.T) {
	sim := NewSim(WithTargets(3), WithDuration(30), WithKillEvery(5))
	s := sim.RunToEnd()
	if s.Eliminated != 3 || s.Result != ResultWin {
		t.Fatalf("expected all 3 eliminated by second 15, got %+v", s)
	}
	if sim.Kills != 3 {
		t.Fatalf("kill counter should stop at pool size, got %d", sim.Kills)
	}
}

func TestSim_EliminatedNeverExceedsPool(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		sim := NewSim(WithSeed(seed), WithTargets(int(seed%5)), WithDuration(20), WithKillEvery(1))
		s := sim.RunToEnd()
		if s.Eliminated > s.TargetCount {
			t.Fatalf("seed %d: eliminated %d > pool %d", seed, s.Eliminated, s.TargetCount)
		}
	}
}
