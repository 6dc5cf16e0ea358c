package profile

// #region imports
import (
	"strings"

	"github.com/luxscale/go-engine/internal/report"
)

// #endregion

// #region profiles

// Canonical utilisation profiles emitted by inference. These are the labels
// the matcher receives when the report itself carries no profile.
const (
	ProfileIndustrial = "Industrial activities and crafts"
	ProfileOffices    = "Offices"
	ProfileTraffic    = "Traffic zones inside buildings"
	ProfileStoreRooms = "General areas inside buildings – Store rooms, cold stores"
	ProfileGeneral    = "General areas inside buildings"
)

// #endregion profiles

// #region keywords

var sceneIndustrialKeywords = []string{
	"factory", "industrial", "warehouse", "manufacturing", "production",
}

// roomNameTable is checked in order; the first row with a matching keyword
// wins. The generic building/room row is handled separately because it
// consults the project name.
var roomNameTable = []struct {
	keywords []string
	profile  string
}{
	{[]string{"factory", "industrial", "warehouse", "manufacturing", "production", "workshop"}, ProfileIndustrial},
	{[]string{"office"}, ProfileOffices},
	{[]string{"corridor", "hallway"}, ProfileTraffic},
	{[]string{"storage", "store"}, ProfileStoreRooms},
}

var genericRoomKeywords = []string{"building", "room"}

var projectIndustrialKeywords = []string{"factory", "industrial", "warehouse"}

// #endregion keywords

// #region source

// Source identifies which resolution tier produced the profile.
type Source string

const (
	SourceRoomProfile  Source = "room_profile"
	SourceSceneName    Source = "scene_name"
	SourceSceneProfile Source = "scene_profile"
	SourceSceneWork    Source = "scene_work"
	SourceRoomName     Source = "room_name"
	SourceProjectName  Source = "project_name"
	SourceDefault      Source = "default"
)

// #endregion source

// #region resolution

// Resolution is the outcome of profile inference. Profile is always
// non-empty; Source records the tier that fired, with SourceDefault marking
// a low-confidence fallthrough.
type Resolution struct {
	Profile string
	Source  Source
}

// #endregion resolution

// #region resolve

// Resolve infers a room's utilisation profile from room, scene, and project
// fields. Tiers are tried in strict order and the first non-empty result
// wins; all keyword checks are unanchored case-insensitive substring tests.
func Resolve(room report.Room, scene *report.Scene, meta report.Metadata) Resolution {
	// 1. Explicit room profile wins outright.
	if room.UtilisationProfile != "" {
		return Resolution{Profile: room.UtilisationProfile, Source: SourceRoomProfile}
	}

	if scene != nil {
		sceneName := strings.ToLower(scene.Name)

		// 2. Industrial scene names override the scene's own profile.
		if containsAny(sceneName, sceneIndustrialKeywords) {
			return Resolution{Profile: ProfileIndustrial, Source: SourceSceneName}
		}

		// 3. Explicit scene profile.
		if scene.UtilisationProfile != "" {
			return Resolution{Profile: scene.UtilisationProfile, Source: SourceSceneProfile}
		}

		// 4. Generic working-place scene names. "work" is unanchored, so it
		// also fires on e.g. "network room" scenes; this matches the source
		// system and is flagged imprecise in the tests.
		if strings.Contains(sceneName, "working place") || strings.Contains(sceneName, "work") {
			return Resolution{Profile: ProfileIndustrial, Source: SourceSceneWork}
		}
	}

	// 5. Room-name keyword table.
	roomName := strings.ToLower(room.Name)
	for _, row := range roomNameTable {
		if containsAny(roomName, row.keywords) {
			return Resolution{Profile: row.profile, Source: SourceRoomName}
		}
	}

	// Generic building/room names disambiguate via the project name.
	if containsAny(roomName, genericRoomKeywords) {
		if containsAny(strings.ToLower(meta.ProjectName), projectIndustrialKeywords) {
			return Resolution{Profile: ProfileIndustrial, Source: SourceProjectName}
		}
		return Resolution{Profile: ProfileGeneral, Source: SourceRoomName}
	}

	// 6. Nothing matched.
	return Resolution{Profile: ProfileGeneral, Source: SourceDefault}
}

// #endregion resolve

// #region helpers

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// #endregion helpers
