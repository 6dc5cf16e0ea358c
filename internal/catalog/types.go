package catalog

// #region record

// StandardRecord is one row of the lighting-standards catalog.
// Numeric requirement fields are pointers: a JSON null and a literal 0 both
// count as "absent" for requirement-presence checks.
type StandardRecord struct {
	RefNo                string   `json:"ref_no"`
	Category             string   `json:"category"`
	TaskOrActivity       string   `json:"task_or_activity"`
	EmRLx                *float64 `json:"Em_r_lx"`
	EmULx                *float64 `json:"Em_u_lx"`
	Uo                   *float64 `json:"Uo"`
	Ra                   *float64 `json:"Ra"`
	RUGL                 *float64 `json:"RUGL"`
	EzLx                 *float64 `json:"Ez_lx"`
	EmWallLx             *float64 `json:"Em_wall_lx"`
	EmCeilingLx          *float64 `json:"Em_ceiling_lx"`
	SpecificRequirements string   `json:"specific_requirements"`
}

// #endregion record

// #region presence

// present reports whether a requirement field carries a usable value.
func present(v *float64) bool {
	return v != nil && *v != 0
}

// HasLightingRequirements reports whether the record specifies at least one
// non-null, non-zero lighting requirement.
func (r *StandardRecord) HasLightingRequirements() bool {
	fields := []*float64{r.EmRLx, r.EmULx, r.Uo, r.Ra, r.RUGL, r.EzLx, r.EmWallLx, r.EmCeilingLx}
	for _, f := range fields {
		if present(f) {
			return true
		}
	}
	return false
}

// HasUniformity reports whether the record specifies a uniformity requirement.
func (r *StandardRecord) HasUniformity() bool {
	return present(r.Uo)
}

// RequiredIlluminance returns the illuminance requirement, preferring the
// reference value and falling back to the upper value.
func (r *StandardRecord) RequiredIlluminance() (float64, bool) {
	if present(r.EmRLx) {
		return *r.EmRLx, true
	}
	if present(r.EmULx) {
		return *r.EmULx, true
	}
	return 0, false
}

// RequiredUniformity returns the uniformity requirement if present.
func (r *StandardRecord) RequiredUniformity() (float64, bool) {
	if present(r.Uo) {
		return *r.Uo, true
	}
	return 0, false
}

// RequiredColorRendering returns the Ra requirement if present.
func (r *StandardRecord) RequiredColorRendering() (float64, bool) {
	if present(r.Ra) {
		return *r.Ra, true
	}
	return 0, false
}

// #endregion presence

// #region skipped

// SkippedRecord describes a catalog entry excluded at load time.
type SkippedRecord struct {
	Index  int
	RefNo  string
	Reason string
}

// #endregion skipped
