package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/luxscale/go-engine/internal/catalog"
)

// #region main
func main() {
	catalogPath := flag.String("catalog", envOr("CATALOG_PATH", "standards.json"), "path to standards catalog JSON")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	summary := summarize(cat)
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			log.Fatalf("encode summary: %v", err)
		}
		return
	}

	fmt.Println("=== Catalog Check ===")
	fmt.Printf("  File: %s\n", *catalogPath)
	fmt.Printf("  Usable records:        %d\n", summary.Usable)
	fmt.Printf("  Skipped records:       %d\n", len(summary.Skipped))
	fmt.Printf("  With lighting reqs:    %d\n", summary.WithLighting)
	fmt.Printf("  With uniformity:       %d\n", summary.WithUniformity)
	fmt.Printf("  Matchable tier 1 pool: %d (lighting + uniformity)\n", summary.Tier1Pool)

	if len(summary.Skipped) > 0 {
		fmt.Println("\nSkipped:")
		for _, skip := range summary.Skipped {
			fmt.Printf("  record %d (ref_no %q): %s\n", skip.Index, skip.RefNo, skip.Reason)
		}
	}

	fmt.Println("\nCategories:")
	for _, c := range summary.Categories {
		fmt.Printf("  %-50s %d\n", c.Name, c.Count)
	}
}

// #endregion main

// #region summary

type categoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type checkSummary struct {
	Usable         int                     `json:"usable"`
	WithLighting   int                     `json:"with_lighting"`
	WithUniformity int                     `json:"with_uniformity"`
	Tier1Pool      int                     `json:"tier1_pool"`
	Skipped        []catalog.SkippedRecord `json:"skipped,omitempty"`
	Categories     []categoryCount         `json:"categories"`
}

func summarize(cat *catalog.Catalog) checkSummary {
	s := checkSummary{
		Usable:  cat.Len(),
		Skipped: cat.Skipped(),
	}

	byCategory := make(map[string]int)
	for i := range cat.Records() {
		rec := &cat.Records()[i]
		if rec.HasLightingRequirements() {
			s.WithLighting++
		}
		if rec.HasUniformity() {
			s.WithUniformity++
		}
		if rec.HasLightingRequirements() && rec.HasUniformity() {
			s.Tier1Pool++
		}
		byCategory[rec.Category]++
	}

	for name, count := range byCategory {
		s.Categories = append(s.Categories, categoryCount{Name: name, Count: count})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		return s.Categories[i].Name < s.Categories[j].Name
	})
	return s
}

// #endregion summary

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
