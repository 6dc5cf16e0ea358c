package params

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// #endregion

// #region canonical-names

// Canonical parameter names used across the engine.
const (
	AverageLux       = "average_lux"
	MinLux           = "min_lux"
	MaxLux           = "max_lux"
	Uniformity       = "uniformity"
	ColorRenderingRa = "color_rendering_ra"
)

// #endregion canonical-names

// #region table

// AliasTable maps a canonical parameter name to an ordered list of alternate
// names the extraction layer is known to produce. Alias order matters: the
// first alias that yields a value wins.
type AliasTable struct {
	Parameters map[string][]string `json:"parameters"`
}

// DefaultAliasTable returns the compiled-in alias mapping, used when no
// external table is configured.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		Parameters: map[string][]string{
			AverageLux: {"ē", "eavg", "average lux", "lux", "illumination", "lighting level"},
			MinLux:     {"emin", "minimum lux", "e_min"},
			MaxLux:     {"emax", "maximum lux", "e_max"},
			Uniformity: {"uniformity", "uo", "emin/eavg", "e_min/e_avg"},
			ColorRenderingRa: {
				"ra", "cri", "color rendering index", "r_a",
				"colour rendering index", "color rendering", "colour rendering",
			},
		},
	}
}

// LoadTable reads an alias table from a JSON config file. Unknown top-level
// keys (the extraction layer's "places" section, for instance) are ignored.
func LoadTable(path string) (AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AliasTable{}, fmt.Errorf("read alias table %s: %w", path, err)
	}
	var t AliasTable
	if err := json.Unmarshal(data, &t); err != nil {
		return AliasTable{}, fmt.Errorf("parse alias table %s: %w", path, err)
	}
	if len(t.Parameters) == 0 {
		return AliasTable{}, fmt.Errorf("alias table %s has no parameters section", path)
	}
	return t, nil
}

// #endregion table

// #region resolved

// Resolved is the outcome of an alias lookup. SourceKey records the actual
// field key the value came from, for audit trails when the report used a
// non-canonical name.
type Resolved struct {
	Found     bool
	SourceKey string
	Value     any
}

// #endregion resolved

// #region resolve

// Resolve finds the value for a canonical parameter in a bag of extracted
// fields. The canonical name is tried directly first; then each alias in
// configured order gets an exact key match, a case-insensitive key match,
// and finally a substring match (alias contained in some field key). Nil
// values are treated as absent.
func (t AliasTable) Resolve(fields map[string]any, canonical string) Resolved {
	if len(fields) == 0 {
		return Resolved{}
	}

	if v, ok := fields[canonical]; ok && v != nil {
		return Resolved{Found: true, SourceKey: canonical, Value: v}
	}

	// Field maps come from JSON objects, so key order is random; sort once
	// so ties resolve the same way on every call.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, alias := range t.Parameters[canonical] {
		if v, ok := fields[alias]; ok && v != nil {
			return Resolved{Found: true, SourceKey: alias, Value: v}
		}

		aliasLower := strings.ToLower(alias)
		for _, k := range keys {
			if strings.ToLower(k) == aliasLower && fields[k] != nil {
				return Resolved{Found: true, SourceKey: k, Value: fields[k]}
			}
		}

		for _, k := range keys {
			if strings.Contains(strings.ToLower(k), aliasLower) && fields[k] != nil {
				return Resolved{Found: true, SourceKey: k, Value: fields[k]}
			}
		}
	}

	return Resolved{}
}

// Numeric coerces a resolved value to float64. Extracted JSON carries
// numbers as float64, but the field bag is untyped, so anything else is
// reported as unusable.
func (r Resolved) Numeric() (float64, bool) {
	if !r.Found {
		return 0, false
	}
	switch v := r.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// #endregion resolve
