// Package models defines the persisted database records.
package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/oxhq/pycov/core"
)

// Analysis is the stored record of the most recent coverage run for one
// identifier. Re-running with the same identifier overwrites the row, the
// same way the published HTML report tree is overwritten. There is no
// per-run history.
type Analysis struct {
	ID string `gorm:"primaryKey;type:varchar(255)"`

	TestsPassed int `gorm:"not null"`
	TestsFailed int `gorm:"not null"`
	TotalTests  int `gorm:"not null"`

	LineCoverage      float64
	StatementCoverage float64
	BranchCoverage    *float64 // null when the run reported no branches
	StatementsCovered int
	StatementsTotal   int

	Interpretation string         `gorm:"type:text"`
	ErrorDetails   datatypes.JSON `gorm:"type:jsonb"`
	HTMLReportPath string         `gorm:"type:text"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// FromResult converts a pipeline result into its stored form.
func FromResult(r core.CoverageResult) (Analysis, error) {
	details, err := json.Marshal(r.ErrorDetails)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		ID:                r.ID,
		TestsPassed:       r.TestsPassed,
		TestsFailed:       r.TestsFailed,
		TotalTests:        r.TotalTests,
		LineCoverage:      r.LineCoverage,
		StatementCoverage: r.StatementCoverage,
		BranchCoverage:    r.BranchCoverage,
		StatementsCovered: r.StatementsCovered,
		StatementsTotal:   r.StatementsTotal,
		Interpretation:    r.Interpretation,
		ErrorDetails:      datatypes.JSON(details),
		HTMLReportPath:    r.HTMLReportPath,
	}, nil
}

// ToResult converts a stored record back into a pipeline result.
func (a Analysis) ToResult() core.CoverageResult {
	var details []string
	if len(a.ErrorDetails) > 0 {
		_ = json.Unmarshal(a.ErrorDetails, &details)
	}
	return core.CoverageResult{
		ID:                a.ID,
		TestsPassed:       a.TestsPassed,
		TestsFailed:       a.TestsFailed,
		TotalTests:        a.TotalTests,
		LineCoverage:      a.LineCoverage,
		StatementCoverage: a.StatementCoverage,
		BranchCoverage:    a.BranchCoverage,
		StatementsCovered: a.StatementsCovered,
		StatementsTotal:   a.StatementsTotal,
		Interpretation:    a.Interpretation,
		ErrorDetails:      details,
		HTMLReportPath:    a.HTMLReportPath,
	}
}
