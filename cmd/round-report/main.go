package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/Garsondee/Night-Shift/internal/logging"
	"github.com/Garsondee/Night-Shift/internal/round"
)

type runStats struct {
	runIndex int
	seed     int64

	result        round.Result
	eliminated    int
	targets       int
	resolveSecond int
	firstKill     int // seconds; -1 when nothing was eliminated
	lastKill      int
	rejected      int
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var targets int
	var seconds int
	var killEvery int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless rounds")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&targets, "targets", round.DefaultTargets, "targets per round")
	flag.IntVar(&seconds, "seconds", round.DefaultSeconds, "round duration in seconds")
	flag.IntVar(&killEvery, "kill-every", 45, "seconds between scripted eliminations (0 = never)")
	flag.BoolVar(&verbose, "v", false, "print each round's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if seconds <= 0 {
		fmt.Println("error: -seconds must be > 0")
		return
	}
	if targets < 0 {
		fmt.Println("error: -targets must be >= 0")
		return
	}
	logging.SetOutput(io.Discard)

	fmt.Printf("=== Headless Round Report ===\n")
	fmt.Printf("runs=%d targets=%d seconds=%d kill_every=%d seed_base=%d seed_step=%d\n\n",
		runs, targets, seconds, killEvery, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		sim := round.NewSim(
			round.WithSeed(seed),
			round.WithTargets(targets),
			round.WithDuration(seconds),
			round.WithKillEvery(killEvery),
		)
		sim.RunToEnd()
		rs := collect(i+1, seed, sim)
		all = append(all, rs)
		printRun(rs)
		if verbose {
			fmt.Print(sim.Log.Format())
		}
	}

	printAggregate(all)
}

func collect(runIndex int, seed int64, sim *round.Sim) runStats {
	st := sim.Engine.State()
	rs := runStats{
		runIndex:   runIndex,
		seed:       seed,
		result:     st.Result,
		eliminated: st.Eliminated,
		targets:    st.TargetCount,
		firstKill:  -1,
		lastKill:   -1,
		rejected:   sim.Log.CountCategory("target", "reject"),
	}
	if e, ok := sim.Log.LastOf("round", "resolve"); ok {
		rs.resolveSecond = e.Second
	}
	for _, e := range sim.Log.Filter("target", "eliminate") {
		if rs.firstKill < 0 {
			rs.firstKill = e.Second
		}
		rs.lastKill = e.Second
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result=%s eliminated=%d/%d resolved_at=%ds first_kill=%s last_kill=%s rejected=%d\n",
		rs.result, rs.eliminated, rs.targets, rs.resolveSecond,
		secondString(rs.firstKill), secondString(rs.lastKill), rs.rejected)
}

func printAggregate(all []runStats) {
	wins, losses := tally(all)
	elimSum := 0
	var firstKills []int
	for _, rs := range all {
		elimSum += rs.eliminated
		if rs.firstKill >= 0 {
			firstKills = append(firstKills, rs.firstKill)
		}
	}
	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("runs=%d wins=%d losses=%d win_rate=%.0f%%\n", len(all), wins, losses, winRate(wins, len(all)))
	fmt.Printf("avg_eliminated=%.1f avg_first_kill=%s\n", avg(elimSum, len(all)), avgSecondString(firstKills))
}

func tally(all []runStats) (wins, losses int) {
	for _, rs := range all {
		switch rs.result {
		case round.ResultWin:
			wins++
		case round.ResultLose:
			losses++
		}
	}
	return wins, losses
}

func winRate(wins, runs int) float64 {
	if runs <= 0 {
		return 0
	}
	return 100 * float64(wins) / float64(runs)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func secondString(s int) string {
	if s < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%ds", s)
}

func avgSecondString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1fs", float64(sum)/float64(len(vals)))
}
