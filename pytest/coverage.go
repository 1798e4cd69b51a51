package pytest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Coverage holds the numbers extracted from one coverage.json summary.
// Statement coverage follows the same model as line coverage; the counts
// make the ratio explicit.
type Coverage struct {
	LinePercent       float64
	StatementPercent  float64
	BranchPercent     *float64 // nil when the run reports no branches
	StatementsCovered int
	StatementsTotal   int
}

// coverage.py JSON report shapes, reduced to the fields we consume.
type coverageReport struct {
	Files map[string]coverageFile `json:"files"`
}

type coverageFile struct {
	Summary coverageSummary `json:"summary"`
}

type coverageSummary struct {
	PercentCovered  float64 `json:"percent_covered"`
	NumStatements   int     `json:"num_statements"`
	CoveredLines    int     `json:"covered_lines"`
	NumBranches     int     `json:"num_branches"`
	CoveredBranches int     `json:"covered_branches"`
}

// ParseCoverage reads the machine-readable summary and returns the numbers
// for the entry matching sourceFile, located by basename containment or
// absolute-path equality. A missing summary, missing entry or parse error
// yields the zero Coverage.
func ParseCoverage(jsonPath, sourceFile string) Coverage {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return Coverage{}
	}

	var report coverageReport
	if err := json.Unmarshal(data, &report); err != nil {
		return Coverage{}
	}

	base := filepath.Base(sourceFile)
	abs, _ := filepath.Abs(sourceFile)

	for path, file := range report.Files {
		if !strings.Contains(path, base) && path != abs {
			continue
		}
		return file.Summary.toCoverage()
	}

	return Coverage{}
}

// ParseAllCoverage reads the summary of every file in a coverage.json
// report, keyed by the path coverage.py recorded.
func ParseAllCoverage(jsonPath string) (map[string]Coverage, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, err
	}

	var report coverageReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}

	out := make(map[string]Coverage, len(report.Files))
	for path, file := range report.Files {
		out[path] = file.Summary.toCoverage()
	}
	return out, nil
}

func (s coverageSummary) toCoverage() Coverage {
	cov := Coverage{
		LinePercent:       s.PercentCovered,
		StatementPercent:  s.PercentCovered,
		StatementsCovered: s.CoveredLines,
		StatementsTotal:   s.NumStatements,
	}
	if s.NumBranches > 0 {
		branch := float64(s.CoveredBranches) / float64(s.NumBranches) * 100
		cov.BranchPercent = &branch
	}
	return cov
}
