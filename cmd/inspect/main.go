package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/luxscale/go-engine/internal/logging"
	"github.com/luxscale/go-engine/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("LUX_DB", "luxscale.db"), "path to runs database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	audit := flag.Bool("audit", false, "include audit events in run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	runs, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer runs.Close()

	if *runID != "" {
		err = runDetailMode(runs, *runID, *audit, *jsonOut)
	} else {
		err = runListMode(runs, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID       string  `json:"run_id"`
	Project     string  `json:"project,omitempty"`
	SourceFile  string  `json:"source_file,omitempty"`
	Overall     string  `json:"overall"`
	TotalRooms  int     `json:"total_rooms"`
	Passed      int     `json:"passed"`
	Failed      int     `json:"failed"`
	NoStandard  int     `json:"no_standard"`
	PassRate    float64 `json:"pass_rate"`
	CreatedAt   string  `json:"created_at"`
}

func runListMode(runs *store.Store, last int, jsonOut bool) error {
	records, err := runs.ListRuns(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, len(records))
	for i, rec := range records {
		rows[i] = listRow{
			RunID:      rec.RunID,
			Project:    rec.ProjectName,
			SourceFile: rec.SourceFile,
			Overall:    string(rec.Overall),
			TotalRooms: rec.Summary.TotalRooms,
			Passed:     rec.Summary.Passed,
			Failed:     rec.Summary.Failed,
			NoStandard: rec.Summary.NoStandardFound,
			PassRate:   rec.Summary.PassRate,
			CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-36s  %-20s  %-8s  %5s  %5s  %5s  %6s  %s\n",
		"Run", "Project", "Overall", "Rooms", "Pass", "Fail", "Rate", "Time")
	for _, r := range rows {
		fmt.Printf("%-36s  %-20s  %-8s  %5d  %5d  %5d  %5.1f%%  %s\n",
			r.RunID, truncate(r.Project, 20), r.Overall,
			r.TotalRooms, r.Passed, r.Failed, r.PassRate, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(runs *store.Store, runID string, audit, jsonOut bool) error {
	rec, err := runs.GetRun(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rec)
	}

	fmt.Printf("Run:      %s\n", rec.RunID)
	fmt.Printf("Project:  %s\n", rec.ProjectName)
	fmt.Printf("Source:   %s\n", rec.SourceFile)
	fmt.Printf("Overall:  %s\n", rec.Overall)
	fmt.Printf("Summary:  rooms=%d passed=%d failed=%d no_standard=%d pass_rate=%.1f%%\n",
		rec.Summary.TotalRooms, rec.Summary.Passed, rec.Summary.Failed,
		rec.Summary.NoStandardFound, rec.Summary.PassRate)
	fmt.Printf("Created:  %s\n\n", rec.CreatedAt.Format("2006-01-02T15:04:05Z"))

	for _, room := range rec.Rooms {
		ref := "-"
		if room.Standard != nil {
			ref = fmt.Sprintf("%s (tier %d)", room.Standard.RefNo, room.MatchTier)
		}
		fmt.Printf("%-28s  %-34s  %-16s  %s\n",
			truncate(room.Room, 28), truncate(room.UtilisationProfile, 34), ref, room.Status)

		names := make([]string, 0, len(room.Checks))
		for name := range room.Checks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			check := room.Checks[name]
			fmt.Printf("    %-12s required=%.2f actual=%.2f margin=%+.2f compliant=%v\n",
				name, check.Required, check.Actual, check.Margin, check.Compliant)
		}
	}

	if audit {
		events, err := logging.ListEvents(runs.DB(), runID)
		if err != nil {
			return err
		}
		fmt.Printf("\nAudit events (%d):\n", len(events))
		for _, e := range events {
			room := e.Room
			if room == "" {
				room = "-"
			}
			fmt.Printf("  %-16s  %-28s  %s\n", e.Type, truncate(room, 28), e.Detail)
		}
	}
	return nil
}

// #endregion detail-mode

// #region helpers

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
