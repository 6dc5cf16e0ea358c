package match

import (
	"encoding/json"
	"testing"

	"github.com/luxscale/go-engine/internal/catalog"
)

func f(v float64) *float64 { return &v }

func rec(refNo, category, task string, em, uo *float64) catalog.StandardRecord {
	return catalog.StandardRecord{
		RefNo:          refNo,
		Category:       category,
		TaskOrActivity: task,
		EmRLx:          em,
		Uo:             uo,
	}
}

func buildCatalog(t *testing.T, records []catalog.StandardRecord) *catalog.Catalog {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal records: %v", err)
	}
	cat, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return cat
}

func TestMatch_TierSelection(t *testing.T) {
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("1.1", "Offices", "Filing, copying", f(300), nil),
		rec("1.2", "Offices", "Writing, typing, reading, data processing", f(500), f(0.6)),
		rec("6.2.1", "Industrial", "Industrial activities and crafts - General assembly work", f(300), f(0.4)),
		rec("9.9", "Misc", "Entrance halls", nil, f(0.4)),
	})

	tests := []struct {
		name     string
		profile  string
		wantRef  string
		wantTier int
	}{
		// Exact match with uniformity, case-insensitive.
		{"tier1-exact", "Writing, typing, reading, data processing", "1.2", 1},
		{"tier1-exact-upper", "WRITING, TYPING, READING, DATA PROCESSING", "1.2", 1},
		// Exact without uniformity only reachable at tier 2.
		{"tier2-exact-no-uniformity", "Filing, copying", "1.1", 2},
		// Profile is a substring of the task text.
		{"tier3-partial", "Industrial activities and crafts", "6.2.1", 3},
		// Token overlap also counts as partial.
		{"tier3-token", "data entry", "1.2", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.profile, cat)
			if !got.Found {
				t.Fatal("expected a match")
			}
			if got.Record.RefNo != tt.wantRef {
				t.Errorf("ref: got %q, want %q", got.Record.RefNo, tt.wantRef)
			}
			if got.Tier != tt.wantTier {
				t.Errorf("tier: got %d, want %d", got.Tier, tt.wantTier)
			}
		})
	}
}

func TestMatch_ExactBeatsEarlierPartial(t *testing.T) {
	// A partial candidate earlier in catalog order must not shadow an exact
	// match with uniformity later in the file.
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("a", "Industrial", "General assembly work", f(200), f(0.5)),
		rec("b", "Industrial", "Assembly", f(300), f(0.6)),
	})

	got := Match("assembly", cat)
	if !got.Found || got.Tier != 1 {
		t.Fatalf("got %+v, want tier 1", got)
	}
	if got.Record.RefNo != "b" {
		t.Errorf("ref: got %q, want exact record 'b'", got.Record.RefNo)
	}
}

func TestMatch_Tier4IndustrialGuard(t *testing.T) {
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("6.1", "Industrial", "Rough machine work in factories", f(200), nil),
	})

	// Industrial-looking profiles reach the industrial keyword tier.
	got := Match("warehouse operations", cat)
	if !got.Found || got.Tier != 4 {
		t.Fatalf("industrial profile: got %+v, want tier 4 hit", got)
	}

	// Non-industrial profiles never enter tier 4, and this catalog offers
	// nothing else without uniformity.
	got = Match("restaurants and hotels", cat)
	if got.Found {
		t.Errorf("non-industrial profile matched tier-4-only catalog: %+v", got)
	}
}

func TestMatch_Tier5GeneralKeywords(t *testing.T) {
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("4.1", "General", "General assembly hall", f(300), f(0.4)),
	})

	got := Match("traffic zones inside buildings", cat)
	if !got.Found || got.Tier != 5 {
		t.Fatalf("got %+v, want tier 5 hit", got)
	}
	if got.Record.RefNo != "4.1" {
		t.Errorf("ref: got %q, want 4.1", got.Record.RefNo)
	}
}

func TestMatch_Tier6AnyUniformity(t *testing.T) {
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("7.1", "Misc", "Plant rooms", nil, f(0.4)),
	})

	got := Match("completely unrelated profile", cat)
	if !got.Found || got.Tier != 6 {
		t.Fatalf("got %+v, want tier 6 hit", got)
	}
}

func TestMatch_NoMatch(t *testing.T) {
	// Lighting requirements but no uniformity and no keyword overlap.
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("2.1", "Misc", "Escalators", f(150), nil),
	})

	got := Match("restaurants and hotels", cat)
	if got.Found {
		t.Errorf("expected no match, got %+v", got)
	}
	if got.Record != nil {
		t.Errorf("expected nil record, got %+v", got.Record)
	}
	if got.Tier != 0 {
		t.Errorf("expected zero tier, got %d", got.Tier)
	}
}

func TestMatch_FirstInCatalogOrderWins(t *testing.T) {
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("a", "Industrial", "General industrial work", f(200), f(0.4)),
		rec("b", "Industrial", "General industrial work", f(500), f(0.6)),
	})

	got := Match("industrial activities", cat)
	if !got.Found || got.Record.RefNo != "a" {
		t.Errorf("got %+v, want first record 'a'", got)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	cat := buildCatalog(t, []catalog.StandardRecord{
		rec("1.1", "Offices", "Writing, typing, reading, data processing", f(500), f(0.6)),
		rec("6.2.1", "Industrial", "Industrial activities and crafts - General assembly work", f(300), f(0.4)),
	})

	first := Match("Industrial activities and crafts", cat)
	for i := 0; i < 10; i++ {
		again := Match("Industrial activities and crafts", cat)
		if again.Found != first.Found || again.Tier != first.Tier ||
			again.Record.RefNo != first.Record.RefNo {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

func TestPartialMatch(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		task    string
		cat     string
		want    bool
	}{
		{"profile-in-task", "offices", "Open plan offices", "", true},
		{"profile-in-category", "offices", "Filing", "Offices - general", true},
		{"token-in-task", "assembly work", "General assembly hall", "", true},
		{"no-overlap", "restaurants", "Escalators", "Transport", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rec("x", tt.cat, tt.task, f(100), nil)
			if got := partialMatch(tt.profile, &r); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
