package compliance

// #region imports
import (
	"github.com/luxscale/go-engine/internal/profile"
)

// #endregion

// #region status

// Status is the per-room outcome.
type Status string

const (
	StatusPass       Status = "PASS"
	StatusFail       Status = "FAIL"
	StatusNoStandard Status = "NO_STANDARD_FOUND"
)

// Overall is the whole-report outcome.
type Overall string

const (
	OverallPass     Overall = "PASS"
	OverallFail     Overall = "FAIL"
	OverallPartial  Overall = "PARTIAL"
	OverallNoChecks Overall = "NO_CHECKS"
)

// #endregion status

// #region check

// Check is one per-parameter comparison against the matched standard.
// Margin is signed: actual minus required, negative on a shortfall.
type Check struct {
	Required  float64 `json:"required"`
	Actual    float64 `json:"actual"`
	Compliant bool    `json:"compliant"`
	Margin    float64 `json:"margin"`
	Source    string  `json:"source,omitempty"`
}

// Output keys for the three canonical checks.
const (
	CheckLux        = "lux"
	CheckUniformity = "uniformity"
	CheckRa         = "ra"
)

// #endregion check

// #region room-result

// StandardRef identifies the matched standard in output.
type StandardRef struct {
	RefNo          string `json:"ref_no"`
	Category       string `json:"category"`
	TaskOrActivity string `json:"task_or_activity"`
}

// RoomResult is the full compliance outcome for one room.
type RoomResult struct {
	Room               string           `json:"room"`
	UtilisationProfile string           `json:"utilisation_profile"`
	ProfileSource      profile.Source   `json:"profile_source"`
	Standard           *StandardRef     `json:"standard"`
	MatchTier          int              `json:"match_tier,omitempty"`
	Checks             map[string]Check `json:"checks,omitempty"`
	Status             Status           `json:"status"`
}

// #endregion room-result

// #region summary

// Summary aggregates per-room outcomes. PassRate is a percentage.
type Summary struct {
	TotalRooms      int     `json:"total_rooms"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	NoStandardFound int     `json:"no_standard_found"`
	PassRate        float64 `json:"pass_rate"`
}

// ReportResult is the engine's output for one report.
type ReportResult struct {
	OverallCompliance Overall      `json:"overall_compliance"`
	Checks            []RoomResult `json:"checks"`
	Summary           Summary      `json:"summary"`
}

// #endregion summary
