package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const arrayCatalog = `[
	{"ref_no": "6.2.1", "category": "Industrial", "task_or_activity": "General assembly work", "Em_r_lx": 300, "Uo": 0.4, "Ra": 80},
	{"ref_no": "", "category": "Broken", "task_or_activity": "No ref"},
	{"ref_no": "9.9", "category": "Broken", "task_or_activity": ""},
	{"ref_no": "26.1", "category": "Offices", "task_or_activity": "Writing, typing", "Em_r_lx": 500, "Uo": 0.6}
]`

const wrappedCatalog = `{"standards": [
	{"ref_no": "5.1", "category": "Traffic", "task_or_activity": "Corridors", "Em_r_lx": 100}
]}`

func TestParse_ArrayFormat(t *testing.T) {
	cat, err := Parse([]byte(arrayCatalog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 usable records, got %d", cat.Len())
	}
	if got := cat.Records()[0].RefNo; got != "6.2.1" {
		t.Errorf("first ref: got %q, want 6.2.1", got)
	}
}

func TestParse_WrapperFormat(t *testing.T) {
	cat, err := Parse([]byte(wrappedCatalog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", cat.Len())
	}
	if got := cat.Records()[0].TaskOrActivity; got != "Corridors" {
		t.Errorf("task: got %q, want Corridors", got)
	}
}

func TestParse_SkipsMalformed(t *testing.T) {
	cat, err := Parse([]byte(arrayCatalog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	skipped := cat.Skipped()
	if len(skipped) != 2 {
		t.Fatalf("expected 2 skipped records, got %d", len(skipped))
	}
	if skipped[0].Index != 1 || skipped[0].Reason != "missing ref_no" {
		t.Errorf("first skip: got %+v", skipped[0])
	}
	if skipped[1].Index != 2 || skipped[1].RefNo != "9.9" || skipped[1].Reason != "missing task_or_activity" {
		t.Errorf("second skip: got %+v", skipped[1])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"bad-json", `[{"ref_no": }`},
		{"all-malformed", `[{"ref_no": "", "task_or_activity": ""}]`},
		{"empty-array", `[]`},
		{"empty-wrapper", `{"standards": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standards.json")
	if err := os.WriteFile(path, []byte(wrappedCatalog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("expected 1 record, got %d", cat.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRecordPresence(t *testing.T) {
	v300 := 300.0
	v0 := 0.0
	v04 := 0.4

	tests := []struct {
		name           string
		rec            StandardRecord
		wantLighting   bool
		wantUniformity bool
	}{
		{"em-r-only", StandardRecord{EmRLx: &v300}, true, false},
		{"uo-only", StandardRecord{Uo: &v04}, true, true},
		{"zero-is-absent", StandardRecord{EmRLx: &v0, Uo: &v0}, false, false},
		{"nil-everything", StandardRecord{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.HasLightingRequirements(); got != tt.wantLighting {
				t.Errorf("lighting: got %v, want %v", got, tt.wantLighting)
			}
			if got := tt.rec.HasUniformity(); got != tt.wantUniformity {
				t.Errorf("uniformity: got %v, want %v", got, tt.wantUniformity)
			}
		})
	}
}

func TestRequiredIlluminance(t *testing.T) {
	vR := 300.0
	vU := 500.0
	v0 := 0.0

	tests := []struct {
		name   string
		rec    StandardRecord
		want   float64
		wantOK bool
	}{
		{"prefers-reference", StandardRecord{EmRLx: &vR, EmULx: &vU}, 300, true},
		{"falls-back-to-upper", StandardRecord{EmULx: &vU}, 500, true},
		{"zero-reference-falls-back", StandardRecord{EmRLx: &v0, EmULx: &vU}, 500, true},
		{"absent", StandardRecord{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rec.RequiredIlluminance()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got %v/%v, want %v/%v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	first, err := Parse([]byte(wrappedCatalog))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	snap := NewSnapshot(first)
	if snap.Current() != first {
		t.Fatal("expected initial catalog")
	}

	second, err := Parse([]byte(arrayCatalog))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	snap.Swap(second)
	if snap.Current() != second {
		t.Fatal("expected swapped catalog")
	}
}

func TestSnapshot_ReloadKeepsOldOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standards.json")
	if err := os.WriteFile(path, []byte(wrappedCatalog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	snap := NewSnapshot(cat)

	if err := os.WriteFile(path, []byte(`{"standards": []}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := snap.Reload(path); err == nil {
		t.Fatal("expected reload error")
	}
	if snap.Current() != cat {
		t.Error("previous catalog should stay active after failed reload")
	}
}
