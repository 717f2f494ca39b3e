package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"gorillas/internal/game"
	"gorillas/internal/persistence"
)

type runStats struct {
	runIndex int
	seed     int64

	finished bool
	throws   int
	rounds   int

	terrainHits int
	oobMisses   int
	gorillaHits int
	selfHits    int

	winner  string
	tally   [2]int
	logText string // full match log, only kept with -v
}

func main() {
	var runs int
	var maxThrows int
	var seedBase int64
	var seedStep int64
	var scoresPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 10, "number of headless matches")
	flag.IntVar(&maxThrows, "max-throws", 400, "throw cap per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scoresPath, "scores", "", "optional scores.json to record winners into")
	flag.BoolVar(&verbose, "v", false, "print the full match log after each run")
	flag.Parse()

	if runs <= 0 {
		log.Fatal("-runs must be positive", "runs", runs)
	}
	if maxThrows <= 0 {
		log.Fatal("-max-throws must be positive", "max-throws", maxThrows)
	}

	var rec game.ScoreRecorder
	if scoresPath != "" {
		rec = persistence.NewStore(scoresPath)
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d max_throws=%d seed_base=%d seed_step=%d\n\n", runs, maxThrows, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runMatch(i+1, seed, maxThrows, rec, verbose)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

func runMatch(runIndex int, seed int64, maxThrows int, rec game.ScoreRecorder, verbose bool) runStats {
	m := game.NewSeededMatch(seed, rec)
	m.Log().SetVerbose(verbose)
	throws := game.NewAutoplayer(m, seed).PlayMatch(maxThrows)

	l := m.Log()
	tally := m.RoundWins()
	finished := m.Phase() == game.PhaseMatchEnd
	rs := runStats{
		runIndex:    runIndex,
		seed:        seed,
		finished:    finished,
		throws:      throws,
		rounds:      l.CountCategory("round", "start"),
		terrainHits: l.CountCategory("impact", "terrain_hit"),
		oobMisses:   l.CountCategory("impact", "out_of_bounds"),
		gorillaHits: l.CountCategory("impact", "gorilla_hit"),
		selfHits:    countSelfHits(l.Filter("impact", "gorilla_hit")),
		winner:      winnerName(m.Name(0), m.Name(1), tally, finished),
		tally:       tally,
	}
	if verbose {
		rs.logText = l.Format()
	}
	return rs
}

// countSelfHits counts gorilla hits where the thrower struck itself.
func countSelfHits(hits []game.MatchLogEntry) int {
	n := 0
	for _, e := range hits {
		if strings.Contains(e.Value, "self=true") {
			n++
		}
	}
	return n
}

// winnerName resolves the display name of the match winner, or "none" for a
// match that hit the throw cap.
func winnerName(name0, name1 string, tally [2]int, finished bool) string {
	if !finished {
		return "none"
	}
	if tally[0] > tally[1] {
		return name0
	}
	return name1
}

// hitRate is the percentage of throws that struck a gorilla.
func hitRate(hits, throws int) float64 {
	if throws <= 0 {
		return 0
	}
	return float64(hits) / float64(throws) * 100
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	status := "finished"
	if !rs.finished {
		status = "throw_cap_reached"
	}
	fmt.Printf("status=%s winner=%s tally=%d-%d rounds=%d throws=%d\n",
		status, rs.winner, rs.tally[0], rs.tally[1], rs.rounds, rs.throws)
	fmt.Printf("impacts: terrain=%d out_of_bounds=%d gorilla=%d self=%d\n",
		rs.terrainHits, rs.oobMisses, rs.gorillaHits, rs.selfHits)
	fmt.Printf("hit_rate=%.1f%%\n", hitRate(rs.gorillaHits, rs.throws))
	if rs.logText != "" {
		fmt.Print(rs.logText)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	finished := 0
	totalThrows := 0
	totalRounds := 0
	totalTerrain := 0
	totalOOB := 0
	totalHits := 0
	totalSelf := 0
	winsByName := map[string]int{}

	for _, rs := range all {
		if rs.finished {
			finished++
			winsByName[rs.winner]++
		}
		totalThrows += rs.throws
		totalRounds += rs.rounds
		totalTerrain += rs.terrainHits
		totalOOB += rs.oobMisses
		totalHits += rs.gorillaHits
		totalSelf += rs.selfHits
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d finished=%d\n", len(all), finished)
	fmt.Printf("avg_per_run: throws=%.1f rounds=%.1f terrain_hits=%.1f out_of_bounds=%.1f gorilla_hits=%.1f self_hits=%.1f\n",
		avg(totalThrows, len(all)), avg(totalRounds, len(all)), avg(totalTerrain, len(all)),
		avg(totalOOB, len(all)), avg(totalHits, len(all)), avg(totalSelf, len(all)))
	fmt.Printf("overall_hit_rate=%.1f%%\n", hitRate(totalHits, totalThrows))
	fmt.Printf("win_totals: %s\n", joinWins(winsByName))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// joinWins renders the win tally as "name=count" pairs in name order.
func joinWins(wins map[string]int) string {
	if len(wins) == 0 {
		return "none"
	}
	names := make([]string, 0, len(wins))
	for name := range wins {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, wins[name]))
	}
	return strings.Join(parts, ",")
}
