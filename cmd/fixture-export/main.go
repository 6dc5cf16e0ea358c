package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/luxscale/go-engine/internal/replay"
	"github.com/luxscale/go-engine/internal/report"
	"github.com/luxscale/go-engine/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("LUX_DB", "luxscale.db"), "path to runs database")
	runID := flag.String("run", "", "run to export (default: latest)")
	catalogPath := flag.String("catalog", envOr("CATALOG_PATH", "standards.json"), "catalog to embed in the fixture")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --out path/to/fixture.json [--db path] [--run id] [--catalog path]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *catalogPath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run snapshots a stored run as a replay fixture: the catalog in use, the
// stored report, and the persisted per-room outcomes as expectations.
func run(dbPath, runID, catalogPath, outPath string) error {
	runs, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer runs.Close()

	var rec store.RunRecord
	if runID != "" {
		rec, err = runs.GetRun(runID)
	} else {
		rec, err = runs.LatestRun()
	}
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}
	if rec.ReportJSON == "" {
		return fmt.Errorf("run %s has no stored report", rec.RunID)
	}

	rep, err := report.Parse([]byte(rec.ReportJSON))
	if err != nil {
		return fmt.Errorf("stored report: %w", err)
	}

	catalogJSON, err := os.ReadFile(catalogPath)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	fixture := replay.Fixture{
		Description: fmt.Sprintf("exported from run %s (%s)", rec.RunID, rec.SourceFile),
		Catalog:     json.RawMessage(catalogJSON),
		Report:      *rep,
	}
	for _, room := range rec.Rooms {
		exp := replay.ExpectedResult{
			Room:   room.Room,
			Status: string(room.Status),
			Tier:   room.MatchTier,
		}
		if room.Standard != nil {
			exp.RefNo = room.Standard.RefNo
		}
		fixture.ExpectedResults = append(fixture.ExpectedResults, exp)
	}

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("Exported run %s (%d rooms) to %s\n", rec.RunID, len(fixture.ExpectedResults), outPath)
	return nil
}

// #endregion export

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
