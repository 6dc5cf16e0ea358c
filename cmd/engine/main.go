package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/luxscale/go-engine/internal/catalog"
	"github.com/luxscale/go-engine/internal/compliance"
	"github.com/luxscale/go-engine/internal/extract"
	"github.com/luxscale/go-engine/internal/logging"
	"github.com/luxscale/go-engine/internal/params"
	"github.com/luxscale/go-engine/internal/report"
	"github.com/luxscale/go-engine/internal/store"
)

// #region main
func main() {
	catalogPath := flag.String("catalog", envOr("CATALOG_PATH", "standards.json"), "path to standards catalog JSON")
	aliasPath := flag.String("aliases", envOr("ALIAS_PATH", ""), "path to parameter alias table JSON (empty = built-in)")
	dbPath := flag.String("db", envOr("LUX_DB", "luxscale.db"), "path to runs database")
	extractAddr := flag.String("addr", envOr("EXTRACT_ADDR", "localhost:50051"), "extraction service address (for PDF inputs)")
	ocr := flag.Bool("ocr", false, "allow OCR fallback when extracting PDFs")
	noSave := flag.Bool("no-save", false, "skip persisting the run")
	jsonOut := flag.Bool("json", false, "print full result JSON instead of a table")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: engine [flags] report.json|report.pdf|dir ...")
		os.Exit(2)
	}

	// Load catalog; nothing works without it.
	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	for _, skip := range cat.Skipped() {
		log.Printf("warning: catalog record %d (ref_no %q) skipped: %s", skip.Index, skip.RefNo, skip.Reason)
	}

	aliases := params.DefaultAliasTable()
	if *aliasPath != "" {
		aliases, err = params.LoadTable(*aliasPath)
		if err != nil {
			log.Fatalf("failed to load alias table: %v", err)
		}
	}

	var runs *store.Store
	if !*noSave {
		runs, err = store.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer runs.Close()
	}

	evaluator := compliance.NewEvaluator(aliases)
	inputs := collectInputs(flag.Args())
	if len(inputs) == 0 {
		log.Fatalf("no report files found in arguments")
	}

	var extractor *extract.Client
	failures := 0
	for _, path := range inputs {
		rep, err := loadInput(path, *extractAddr, *ocr, &extractor)
		if err != nil {
			log.Printf("%s: %v", path, err)
			failures++
			continue
		}

		result := evaluator.CheckReport(rep, cat)
		if *jsonOut {
			printJSON(result)
		} else {
			printResult(path, result)
		}

		if runs != nil {
			if err := persistRun(runs, cat, path, rep, result); err != nil {
				log.Printf("%s: persist run: %v", path, err)
			}
		}
	}
	if extractor != nil {
		extractor.Close()
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region inputs

// collectInputs expands directory arguments into their *.json entries.
func collectInputs(args []string) []string {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			entries, err := filepath.Glob(filepath.Join(arg, "*.json"))
			if err == nil {
				sort.Strings(entries)
				inputs = append(inputs, entries...)
			}
			continue
		}
		inputs = append(inputs, arg)
	}
	return inputs
}

// loadInput reads a report from JSON, or extracts it via the gRPC service
// for PDF inputs. The extraction client is connected lazily on first use.
func loadInput(path, addr string, ocr bool, extractor **extract.Client) (*report.Report, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		if *extractor == nil {
			client, err := extract.NewClient(addr)
			if err != nil {
				return nil, fmt.Errorf("connect extraction service at %s: %w", addr, err)
			}
			*extractor = client
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		result, err := (*extractor).ExtractFile(ctx, path, ocr)
		if err != nil {
			return nil, err
		}
		for _, w := range result.Warnings {
			log.Printf("%s: extraction warning: %s", path, w)
		}
		return result.Report, nil
	}
	return report.Load(path)
}

// #endregion inputs

// #region persist

func persistRun(runs *store.Store, cat *catalog.Catalog, path string, rep *report.Report, result compliance.ReportResult) error {
	reportJSON, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	rec, err := runs.SaveRun(rep.Metadata.ProjectName, path, reportJSON, result)
	if err != nil {
		return err
	}
	if err := logging.AuditRun(runs.DB(), rec.RunID, result); err != nil {
		return err
	}
	if err := logging.AuditCatalogSkips(runs.DB(), rec.RunID, cat.Skipped()); err != nil {
		return err
	}
	fmt.Printf("[run %s] saved\n", rec.RunID)
	return nil
}

// #endregion persist

// #region output

func printResult(path string, result compliance.ReportResult) {
	fmt.Printf("\n=== %s ===\n", path)
	fmt.Printf("%-28s| %-34s| %-8s| %-5s| %s\n", "Room", "Profile", "Ref", "Tier", "Status")

	for _, room := range result.Checks {
		ref := "-"
		tier := "-"
		if room.Standard != nil {
			ref = room.Standard.RefNo
			tier = fmt.Sprintf("%d", room.MatchTier)
		}
		fmt.Printf("%-28s| %-34s| %-8s| %-5s| %s\n",
			truncate(room.Room, 28), truncate(room.UtilisationProfile, 34), ref, tier, room.Status)

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

	s := result.Summary
	fmt.Printf("\nOverall: %s | rooms=%d passed=%d failed=%d no_standard=%d pass_rate=%.1f%%\n",
		result.OverallCompliance, s.TotalRooms, s.Passed, s.Failed, s.NoStandardFound, s.PassRate)
}

func printJSON(result compliance.ReportResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Printf("encode result: %v", err)
	}
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
