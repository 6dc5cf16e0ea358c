package report

// #region imports
import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// #endregion

// #region errors

// ErrNoRooms is returned when a report contains no room entries.
var ErrNoRooms = errors.New("report contains no rooms")

// #endregion errors

// #region types

// Metadata carries project-level fields from the extracted report.
type Metadata struct {
	ProjectName string `json:"project_name"`
}

// Room is one surveyed room. The utilisation profile is optional and often
// empty in extracted data.
type Room struct {
	Name               string `json:"name"`
	UtilisationProfile string `json:"utilisation_profile"`
}

// Scene is one measurement scene. Measured parameters arrive under whatever
// keys the extraction layer produced, so everything beyond the two known
// fields is kept verbatim in Fields.
type Scene struct {
	Name               string
	UtilisationProfile string
	Fields             map[string]any
}

// Report is the extracted survey structure the engine operates on.
type Report struct {
	Metadata      Metadata       `json:"metadata"`
	Rooms         []Room         `json:"rooms"`
	Scenes        []Scene        `json:"scenes"`
	LightingSetup map[string]any `json:"lighting_setup,omitempty"`
}

// #endregion types

// #region scene-json

// sceneKnownKeys are lifted out of the field bag during decoding.
const (
	sceneNameKey    = "scene_name"
	sceneProfileKey = "utilisation_profile"
)

// UnmarshalJSON decodes the known scene fields and collects the rest into
// Fields unchanged.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Fields = make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case sceneNameKey:
			if name, ok := v.(string); ok {
				s.Name = name
			}
		case sceneProfileKey:
			if profile, ok := v.(string); ok {
				s.UtilisationProfile = profile
			}
		default:
			s.Fields[k] = v
		}
	}
	return nil
}

// MarshalJSON emits the scene as a flat object, the shape the extraction
// layer produces.
func (s Scene) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(s.Fields)+2)
	for k, v := range s.Fields {
		flat[k] = v
	}
	if s.Name != "" {
		flat[sceneNameKey] = s.Name
	}
	if s.UtilisationProfile != "" {
		flat[sceneProfileKey] = s.UtilisationProfile
	}
	return json.Marshal(flat)
}

// #endregion scene-json

// #region load

// Load reads and parses a report JSON file.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	rep, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return rep, nil
}

// Parse decodes report JSON and validates that rooms are present.
func Parse(data []byte) (*Report, error) {
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if len(rep.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	return &rep, nil
}

// #endregion load

// #region pairing

// SceneForRoom pairs room index i with scene i, falling back to the first
// scene when the report has fewer scenes than rooms. Returns nil if the
// report has no scenes at all.
func (r *Report) SceneForRoom(i int) *Scene {
	if len(r.Scenes) == 0 {
		return nil
	}
	if i >= 0 && i < len(r.Scenes) {
		return &r.Scenes[i]
	}
	return &r.Scenes[0]
}

// FieldsForRoom returns the measured-parameter bag for room index i: the
// paired scene's fields, or the report-level lighting setup when the report
// carries no scenes.
func (r *Report) FieldsForRoom(i int) map[string]any {
	if scene := r.SceneForRoom(i); scene != nil {
		return scene.Fields
	}
	return r.LightingSetup
}

// #endregion pairing
