package replay

// #region imports
import (
	"fmt"

	"github.com/luxscale/go-engine/internal/catalog"
	"github.com/luxscale/go-engine/internal/compliance"
)

// #endregion

// #region types
// Comparison pairs one room's expected outcome with what the pipeline
// actually produced.
type Comparison struct {
	Room           string
	ExpectedStatus string
	GotStatus      string
	ExpectedRefNo  string
	GotRefNo       string
	ExpectedTier   int
	GotTier        int
	Match          bool
}

// Outcome bundles the replayed report result with per-room comparisons.
type Outcome struct {
	Result      compliance.ReportResult
	Comparisons []Comparison
	Matches     int
	Diverges    int
}

// #endregion types

// #region run
// Run replays a fixture through the full pipeline in memory: catalog parse,
// profile inference, matching, and evaluation, then diffs against the
// fixture's expected per-room outcomes.
func Run(f *Fixture) (Outcome, error) {
	cat, err := catalog.Parse(f.Catalog)
	if err != nil {
		return Outcome{}, fmt.Errorf("fixture catalog: %w", err)
	}

	evaluator := compliance.NewEvaluator(f.AliasTable())
	result := evaluator.CheckReport(&f.Report, cat)

	byRoom := make(map[string]compliance.RoomResult, len(result.Checks))
	for _, room := range result.Checks {
		byRoom[room.Room] = room
	}

	out := Outcome{Result: result}
	for _, exp := range f.ExpectedResults {
		cmp := Comparison{
			Room:           exp.Room,
			ExpectedStatus: exp.Status,
			ExpectedRefNo:  exp.RefNo,
			ExpectedTier:   exp.Tier,
		}

		got, ok := byRoom[exp.Room]
		if ok {
			cmp.GotStatus = string(got.Status)
			cmp.GotTier = got.MatchTier
			if got.Standard != nil {
				cmp.GotRefNo = got.Standard.RefNo
			}
			cmp.Match = matches(exp, got)
		}

		if cmp.Match {
			out.Matches++
		} else {
			out.Diverges++
		}
		out.Comparisons = append(out.Comparisons, cmp)
	}

	return out, nil
}

// matches compares an expected result against an actual room result. RefNo
// and Tier only participate when the fixture sets them.
func matches(exp ExpectedResult, got compliance.RoomResult) bool {
	if exp.Status != string(got.Status) {
		return false
	}
	if exp.RefNo != "" {
		if got.Standard == nil || got.Standard.RefNo != exp.RefNo {
			return false
		}
	}
	if exp.Tier != 0 && exp.Tier != got.MatchTier {
		return false
	}
	return true
}

// #endregion run
