package catalog

// #region imports
import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
)

// #endregion

// #region catalog

// Catalog is an immutable, in-memory list of standard records. Records that
// cannot ever be matched by subject (missing ref_no or task_or_activity) are
// excluded at parse time and reported via Skipped.
type Catalog struct {
	records []StandardRecord
	skipped []SkippedRecord
}

// Records returns the catalog records in load order.
func (c *Catalog) Records() []StandardRecord {
	return c.records
}

// Len returns the number of usable records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Skipped returns the records excluded at load time.
func (c *Catalog) Skipped() []SkippedRecord {
	return c.skipped
}

// #endregion catalog

// #region load

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes catalog JSON. Both shipped formats are accepted: a raw array
// of records, or an object with a "standards" array.
func Parse(data []byte) (*Catalog, error) {
	var raw []StandardRecord

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty catalog data")
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
	} else {
		var wrapper struct {
			Standards []StandardRecord `json:"standards"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("decode wrapper: %w", err)
		}
		raw = wrapper.Standards
	}

	cat := &Catalog{}
	for i, rec := range raw {
		if reason := validate(rec); reason != "" {
			cat.skipped = append(cat.skipped, SkippedRecord{
				Index:  i,
				RefNo:  rec.RefNo,
				Reason: reason,
			})
			continue
		}
		cat.records = append(cat.records, rec)
	}

	if len(cat.records) == 0 {
		return nil, fmt.Errorf("catalog contains no usable records (%d skipped)", len(cat.skipped))
	}
	return cat, nil
}

// validate returns a non-empty reason if the record must be excluded.
func validate(rec StandardRecord) string {
	if rec.RefNo == "" {
		return "missing ref_no"
	}
	if rec.TaskOrActivity == "" {
		return "missing task_or_activity"
	}
	return ""
}

// #endregion load

// #region snapshot

// Snapshot holds an atomically swappable catalog reference. Readers always
// observe a complete catalog; hot reloads replace the whole snapshot rather
// than mutating records in place.
type Snapshot struct {
	ptr atomic.Pointer[Catalog]
}

// NewSnapshot wraps an initial catalog.
func NewSnapshot(c *Catalog) *Snapshot {
	s := &Snapshot{}
	s.ptr.Store(c)
	return s
}

// Current returns the active catalog.
func (s *Snapshot) Current() *Catalog {
	return s.ptr.Load()
}

// Swap installs a new catalog.
func (s *Snapshot) Swap(c *Catalog) {
	s.ptr.Store(c)
}

// Reload loads a catalog file and swaps it in. On error the previous catalog
// stays active.
func (s *Snapshot) Reload(path string) error {
	cat, err := Load(path)
	if err != nil {
		return err
	}
	s.ptr.Store(cat)
	return nil
}

// #endregion snapshot
