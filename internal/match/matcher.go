package match

// #region imports
import (
	"strings"

	"github.com/luxscale/go-engine/internal/catalog"
)

// #endregion

// #region keywords

// industrialProfileKeywords gate tier 4: it only runs for profiles that look
// industrial, because profile inference frequently emits the literal
// "Industrial activities and crafts" label that may not appear verbatim in
// the catalog.
var industrialProfileKeywords = []string{"factory", "industrial", "warehouse", "manufacturing"}

var industrialTaskKeywords = []string{"industrial", "factory", "warehouse", "manufacturing"}

var generalTaskKeywords = []string{"general", "work", "office"}

// #endregion keywords

// #region result

// Result is the outcome of a catalog match: the selected record plus the
// tier (1-6) that produced it, or Found=false when every tier came up empty.
type Result struct {
	Found  bool
	Record *catalog.StandardRecord
	Tier   int
}

// #endregion result

// #region tiers

// tier is one ranked stage of the cascade. guard decides whether the tier is
// entered at all for this profile; accept tests one record. Within a tier the
// first accepting record in catalog order wins.
type tier struct {
	n      int
	guard  func(profile string) bool
	accept func(profile string, rec *catalog.StandardRecord) bool
}

// tiers in priority order. Uniformity-bearing records are systematically
// preferred: uniformity is the strongest completeness signal a record can
// carry, so exact-with-uniformity outranks exact-without, and the terminal
// fallback still insists on it.
var tiers = []tier{
	{
		n: 1,
		accept: func(p string, rec *catalog.StandardRecord) bool {
			return strings.ToLower(rec.TaskOrActivity) == p &&
				rec.HasLightingRequirements() && rec.HasUniformity()
		},
	},
	{
		n: 2,
		accept: func(p string, rec *catalog.StandardRecord) bool {
			return strings.ToLower(rec.TaskOrActivity) == p &&
				rec.HasLightingRequirements()
		},
	},
	{
		n: 3,
		accept: func(p string, rec *catalog.StandardRecord) bool {
			return partialMatch(p, rec) &&
				rec.HasLightingRequirements() && rec.HasUniformity()
		},
	},
	{
		n: 4,
		guard: func(p string) bool {
			return containsAny(p, industrialProfileKeywords)
		},
		accept: func(p string, rec *catalog.StandardRecord) bool {
			return containsAny(strings.ToLower(rec.TaskOrActivity), industrialTaskKeywords) &&
				rec.HasLightingRequirements()
		},
	},
	{
		n: 5,
		accept: func(p string, rec *catalog.StandardRecord) bool {
			return containsAny(strings.ToLower(rec.TaskOrActivity), generalTaskKeywords) &&
				rec.HasLightingRequirements() && rec.HasUniformity()
		},
	},
	{
		n: 6,
		accept: func(p string, rec *catalog.StandardRecord) bool {
			return rec.HasUniformity()
		},
	},
}

// #endregion tiers

// #region match

// Match resolves a utilisation profile to a single standard record via the
// tier cascade. The first tier that yields any record stops the search.
func Match(profile string, cat *catalog.Catalog) Result {
	p := strings.ToLower(profile)
	records := cat.Records()

	for _, t := range tiers {
		if t.guard != nil && !t.guard(p) {
			continue
		}
		for i := range records {
			if t.accept(p, &records[i]) {
				return Result{Found: true, Record: &records[i], Tier: t.n}
			}
		}
	}
	return Result{}
}

// #endregion match

// #region predicates

// partialMatch implements the tier-3 fuzzy test: profile contained in the
// record's task or category, or any whitespace token of the profile found in
// the task text. Unanchored substrings, same as the profile resolver.
func partialMatch(profile string, rec *catalog.StandardRecord) bool {
	task := strings.ToLower(rec.TaskOrActivity)
	category := strings.ToLower(rec.Category)

	if strings.Contains(task, profile) || strings.Contains(category, profile) {
		return true
	}
	for _, token := range strings.Fields(profile) {
		if strings.Contains(task, token) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// #endregion predicates
