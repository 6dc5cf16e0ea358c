package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/luxscale/go-engine/internal/compliance"
	"github.com/luxscale/go-engine/internal/report"
)

func TestRun_AlAmalBaseline(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "al_amal_baseline.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	out, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if out.Diverges != 0 {
		t.Fatalf("expected full match, got %d divergences: %+v", out.Diverges, out.Comparisons)
	}
	if out.Matches != 1 {
		t.Errorf("matches: got %d, want 1", out.Matches)
	}

	if out.Result.OverallCompliance != compliance.OverallFail {
		t.Errorf("overall: got %q, want FAIL", out.Result.OverallCompliance)
	}
	room := out.Result.Checks[0]
	if room.MatchTier != 3 || room.Standard == nil || room.Standard.RefNo != "6.2.1" {
		t.Errorf("room result: got %+v", room)
	}
	lux := room.Checks[compliance.CheckLux]
	if lux.Margin != -87 {
		t.Errorf("lux margin: got %v, want -87", lux.Margin)
	}
}

func TestRun_Divergence(t *testing.T) {
	f := &Fixture{
		Catalog: json.RawMessage(`[
			{"ref_no": "26.1", "category": "Offices", "task_or_activity": "Offices", "Em_r_lx": 500, "Uo": 0.6}
		]`),
		Report: report.Report{
			Rooms: []report.Room{
				{Name: "Office 1", UtilisationProfile: "Offices"},
			},
			Scenes: []report.Scene{
				{Name: "s1", Fields: map[string]any{"average_lux": 600.0, "uniformity": 0.7}},
			},
		},
		ExpectedResults: []ExpectedResult{
			{Room: "Office 1", Status: "FAIL"},
			{Room: "Missing room", Status: "PASS"},
		},
	}

	out, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// The office passes, so the FAIL expectation diverges; the second room
	// is absent from the result entirely.
	if out.Diverges != 2 || out.Matches != 0 {
		t.Fatalf("got %d/%d matches/diverges: %+v", out.Matches, out.Diverges, out.Comparisons)
	}
	if out.Comparisons[0].GotStatus != "PASS" {
		t.Errorf("got status: %q", out.Comparisons[0].GotStatus)
	}
	if out.Comparisons[1].GotStatus != "" {
		t.Errorf("missing room should have empty got status, got %q", out.Comparisons[1].GotStatus)
	}
}

func TestRun_BadCatalog(t *testing.T) {
	f := &Fixture{
		Catalog: json.RawMessage(`[]`),
		Report: report.Report{
			Rooms: []report.Room{{Name: "r"}},
		},
	}
	if _, err := Run(f); err == nil {
		t.Fatal("expected catalog error")
	}
}

func TestMatches(t *testing.T) {
	got := compliance.RoomResult{
		Status:    compliance.StatusFail,
		MatchTier: 3,
		Standard:  &compliance.StandardRef{RefNo: "6.2.1"},
	}

	tests := []struct {
		name string
		exp  ExpectedResult
		want bool
	}{
		{"status-only", ExpectedResult{Status: "FAIL"}, true},
		{"status-mismatch", ExpectedResult{Status: "PASS"}, false},
		{"ref-match", ExpectedResult{Status: "FAIL", RefNo: "6.2.1"}, true},
		{"ref-mismatch", ExpectedResult{Status: "FAIL", RefNo: "1.1"}, false},
		{"tier-match", ExpectedResult{Status: "FAIL", Tier: 3}, true},
		{"tier-mismatch", ExpectedResult{Status: "FAIL", Tier: 1}, false},
		{"full-match", ExpectedResult{Status: "FAIL", RefNo: "6.2.1", Tier: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if have := matches(tt.exp, got); have != tt.want {
				t.Errorf("got %v, want %v", have, tt.want)
			}
		})
	}
}
