package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/luxscale/go-engine/internal/catalog"
	"github.com/luxscale/go-engine/internal/compliance"
	"github.com/luxscale/go-engine/internal/params"
	"github.com/luxscale/go-engine/internal/replay"
	"github.com/luxscale/go-engine/internal/report"
	"github.com/luxscale/go-engine/internal/store"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	dbPath := flag.String("db", "", "path to runs database (DB mode)")
	runID := flag.String("run", "", "run to replay in DB mode (default: latest)")
	catalogPath := flag.String("catalog", envOr("CATALOG_PATH", "standards.json"), "catalog for DB mode")
	aliasPath := flag.String("aliases", envOr("ALIAS_PATH", ""), "alias table for DB mode (empty = built-in)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/luxscale.db [--run id] [--catalog path]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *runID, *catalogPath, *aliasPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	outcome, err := replay.Run(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	if f.Description != "" {
		fmt.Printf("Fixture: %s\n\n", f.Description)
	}
	return printComparison(outcome.Comparisons, outcome.Matches, outcome.Diverges)
}

// #endregion fixture-mode

// #region db-mode

// runDBMode re-runs a stored report against the current catalog and diffs
// per-room outcomes against what was persisted at the time.
func runDBMode(dbPath, runID, catalogPath, aliasPath string) int {
	runs, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer runs.Close()

	var rec store.RunRecord
	if runID != "" {
		rec, err = runs.GetRun(runID)
	} else {
		rec, err = runs.LatestRun()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load run: %v\n", err)
		return 2
	}
	if rec.ReportJSON == "" {
		fmt.Fprintf(os.Stderr, "run %s has no stored report\n", rec.RunID)
		return 2
	}

	rep, err := report.Parse([]byte(rec.ReportJSON))
	if err != nil {
		fmt.Fprintf(os.Stderr, "stored report: %v\n", err)
		return 2
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		return 2
	}

	aliases := params.DefaultAliasTable()
	if aliasPath != "" {
		aliases, err = params.LoadTable(aliasPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load alias table: %v\n", err)
			return 2
		}
	}

	result := compliance.NewEvaluator(aliases).CheckReport(rep, cat)

	byRoom := make(map[string]compliance.RoomResult, len(result.Checks))
	for _, room := range result.Checks {
		byRoom[room.Room] = room
	}

	var comparisons []replay.Comparison
	matches, diverges := 0, 0
	for _, stored := range rec.Rooms {
		cmp := replay.Comparison{
			Room:           stored.Room,
			ExpectedStatus: string(stored.Status),
			ExpectedTier:   stored.MatchTier,
		}
		if stored.Standard != nil {
			cmp.ExpectedRefNo = stored.Standard.RefNo
		}

		got, ok := byRoom[stored.Room]
		if ok {
			cmp.GotStatus = string(got.Status)
			cmp.GotTier = got.MatchTier
			if got.Standard != nil {
				cmp.GotRefNo = got.Standard.RefNo
			}
			cmp.Match = cmp.ExpectedStatus == cmp.GotStatus &&
				cmp.ExpectedRefNo == cmp.GotRefNo &&
				cmp.ExpectedTier == cmp.GotTier
		}

		if cmp.Match {
			matches++
		} else {
			diverges++
		}
		comparisons = append(comparisons, cmp)
	}

	fmt.Printf("Replaying run %s against %s\n\n", rec.RunID, catalogPath)
	return printComparison(comparisons, matches, diverges)
}

// #endregion db-mode

// #region output

func printComparison(comparisons []replay.Comparison, matches, diverges int) int {
	fmt.Printf("%-28s| %-24s| %-24s| %s\n", "Room", "Expected", "Replayed", "Match")
	fmt.Printf("%-28s+%-25s+%-25s+%s\n",
		"----------------------------", "-------------------------", "-------------------------", "------")

	for _, cmp := range comparisons {
		expected := describeSide(cmp.ExpectedStatus, cmp.ExpectedRefNo, cmp.ExpectedTier)
		got := describeSide(cmp.GotStatus, cmp.GotRefNo, cmp.GotTier)
		label := "DIFF"
		if cmp.Match {
			label = "OK"
		}
		fmt.Printf("%-28s| %-24s| %-24s| %s\n", truncate(cmp.Room, 28), expected, got, label)
	}

	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", len(comparisons), matches, diverges)
	if diverges > 0 {
		return 1
	}
	return 0
}

func describeSide(status, refNo string, tier int) string {
	if status == "" {
		return "(missing)"
	}
	if refNo == "" {
		return status
	}
	if tier == 0 {
		return fmt.Sprintf("%s %s", status, refNo)
	}
	return fmt.Sprintf("%s %s t%d", status, refNo, tier)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// #endregion output

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
