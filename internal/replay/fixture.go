package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/luxscale/go-engine/internal/params"
	"github.com/luxscale/go-engine/internal/report"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a catalog,
// an extracted report, and the per-room outcomes the pipeline must produce.
type Fixture struct {
	Description     string             `json:"description"`
	Catalog         json.RawMessage    `json:"catalog"`
	Aliases         *params.AliasTable `json:"aliases,omitempty"`
	Report          report.Report      `json:"report"`
	ExpectedResults []ExpectedResult   `json:"expected_results"`
}

// ExpectedResult captures the expected outcome for one room. RefNo and Tier
// are optional; zero values are not compared.
type ExpectedResult struct {
	Room   string `json:"room"`
	Status string `json:"status"`
	RefNo  string `json:"ref_no,omitempty"`
	Tier   int    `json:"tier,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Catalog) == 0 {
		return nil, fmt.Errorf("fixture %s has no catalog", path)
	}
	if len(f.Report.Rooms) == 0 {
		return nil, fmt.Errorf("fixture %s report has no rooms", path)
	}
	return &f, nil
}

// AliasTable returns the fixture's alias table, or the compiled-in default.
func (f *Fixture) AliasTable() params.AliasTable {
	if f.Aliases != nil && len(f.Aliases.Parameters) > 0 {
		return *f.Aliases
	}
	return params.DefaultAliasTable()
}

// #endregion fixture-loader
