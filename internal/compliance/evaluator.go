package compliance

// #region imports
import (
	"github.com/luxscale/go-engine/internal/catalog"
	"github.com/luxscale/go-engine/internal/match"
	"github.com/luxscale/go-engine/internal/params"
	"github.com/luxscale/go-engine/internal/profile"
	"github.com/luxscale/go-engine/internal/report"
)

// #endregion

// #region evaluator

// Evaluator compares measured report parameters against matched standard
// requirements. It holds no mutable state, so one Evaluator serves any
// number of concurrent report checks.
type Evaluator struct {
	aliases params.AliasTable
}

// NewEvaluator creates an evaluator using the given alias table for
// measured-value lookup.
func NewEvaluator(aliases params.AliasTable) *Evaluator {
	return &Evaluator{aliases: aliases}
}

// #endregion evaluator

// #region evaluate-room

// EvaluateRoom builds the compliance outcome for a single room. A parameter
// missing on either side (no measured value, or no requirement in the
// standard) is omitted from the check set rather than counted as a failure.
// A matched room with zero evaluated parameters passes by convention.
func (e *Evaluator) EvaluateRoom(roomName string, res profile.Resolution, m match.Result, fields map[string]any) RoomResult {
	rr := RoomResult{
		Room:               roomName,
		UtilisationProfile: res.Profile,
		ProfileSource:      res.Source,
		Status:             StatusPass,
	}

	if !m.Found {
		rr.Status = StatusNoStandard
		return rr
	}

	rr.Standard = &StandardRef{
		RefNo:          m.Record.RefNo,
		Category:       m.Record.Category,
		TaskOrActivity: m.Record.TaskOrActivity,
	}
	rr.MatchTier = m.Tier
	rr.Checks = make(map[string]Check)

	e.compare(&rr, CheckLux, fields, params.AverageLux, m.Record.RequiredIlluminance)
	e.compare(&rr, CheckUniformity, fields, params.Uniformity, m.Record.RequiredUniformity)
	e.compare(&rr, CheckRa, fields, params.ColorRenderingRa, m.Record.RequiredColorRendering)

	return rr
}

// compare evaluates one canonical parameter and records the check if both
// sides are present. Equality counts as compliant.
func (e *Evaluator) compare(rr *RoomResult, name string, fields map[string]any, canonical string, required func() (float64, bool)) {
	req, ok := required()
	if !ok {
		return
	}
	resolved := e.aliases.Resolve(fields, canonical)
	actual, ok := resolved.Numeric()
	if !ok {
		return
	}

	compliant := actual >= req
	rr.Checks[name] = Check{
		Required:  req,
		Actual:    actual,
		Compliant: compliant,
		Margin:    actual - req,
		Source:    resolved.SourceKey,
	}
	if !compliant {
		rr.Status = StatusFail
	}
}

// #endregion evaluate-room

// #region check-report

// CheckReport runs the full pipeline for every room in a report: profile
// inference, standard matching, and per-parameter evaluation. Rooms pair
// with scenes by index, falling back to the first scene.
func (e *Evaluator) CheckReport(rep *report.Report, cat *catalog.Catalog) ReportResult {
	rooms := make([]RoomResult, 0, len(rep.Rooms))
	for i, room := range rep.Rooms {
		res := profile.Resolve(room, rep.SceneForRoom(i), rep.Metadata)
		m := match.Match(res.Profile, cat)
		rooms = append(rooms, e.EvaluateRoom(room.Name, res, m, rep.FieldsForRoom(i)))
	}

	return ReportResult{
		OverallCompliance: overall(rooms),
		Checks:            rooms,
		Summary:           Summarize(rooms),
	}
}

// #endregion check-report

// #region aggregate

// overall folds per-room statuses into a single verdict. Any failure makes
// the report FAIL; otherwise unmatched rooms downgrade it to PARTIAL.
func overall(rooms []RoomResult) Overall {
	if len(rooms) == 0 {
		return OverallNoChecks
	}

	anyFail := false
	anyNoStandard := false
	for _, r := range rooms {
		switch r.Status {
		case StatusFail:
			anyFail = true
		case StatusNoStandard:
			anyNoStandard = true
		}
	}

	switch {
	case anyFail:
		return OverallFail
	case anyNoStandard:
		return OverallPartial
	default:
		return OverallPass
	}
}

// Summarize computes aggregate stats over per-room results.
func Summarize(rooms []RoomResult) Summary {
	s := Summary{TotalRooms: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		case StatusNoStandard:
			s.NoStandardFound++
		}
	}
	if s.TotalRooms > 0 {
		s.PassRate = float64(s.Passed) / float64(s.TotalRooms) * 100
	}
	return s
}

// #endregion aggregate
