package core

// AnalysisRequest describes one coverage analysis run
type AnalysisRequest struct {
	SourceFile string   `json:"source_file"`  // Python file under test
	TestCases  []string `json:"test_cases"`   // assertion strings, in order
	ID         string   `json:"id,omitempty"` // filesystem-safe identifier, "analysis" if empty
}

// CoverageResult is the complete outcome of one analysis run.
// It is always fully populated: failure modes (missing file, timeout,
// unexpected error) produce zeroed counters plus a descriptive
// Interpretation rather than a partial record.
type CoverageResult struct {
	ID                string   `json:"id"`
	TestsPassed       int      `json:"tests_passed"`
	TestsFailed       int      `json:"tests_failed"`
	TotalTests        int      `json:"total_tests"`
	LineCoverage      float64  `json:"line_coverage"`             // percent, 0-100
	StatementCoverage float64  `json:"statement_coverage"`        // percent, same model as line coverage
	BranchCoverage    *float64 `json:"branch_coverage,omitempty"` // nil when the run reports no branches
	StatementsCovered int      `json:"statements_covered"`
	StatementsTotal   int      `json:"statements_total"`
	Interpretation    string   `json:"interpretation"`
	ErrorDetails      []string `json:"error_details,omitempty"`
	HTMLReportPath    string   `json:"html_report_path,omitempty"`
}

// DefaultID is used when the caller supplies no identifier.
const DefaultID = "analysis"
