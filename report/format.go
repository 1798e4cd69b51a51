package report

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/oxhq/pycov/core"
)

// FormatResult renders a CoverageResult as the banner-style summary printed
// after each analysis.
func FormatResult(r core.CoverageResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\nRESULTS\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Problem ID:          %s\n", r.ID)
	fmt.Fprintf(&b, "Tests Passed:        %d/%d\n", r.TestsPassed, r.TotalTests)
	fmt.Fprintf(&b, "Tests Failed:        %d/%d\n", r.TestsFailed, r.TotalTests)
	fmt.Fprintf(&b, "Statement Coverage:  %.1f%% (%d/%d statements)\n",
		r.StatementCoverage, r.StatementsCovered, r.StatementsTotal)
	if r.BranchCoverage != nil {
		fmt.Fprintf(&b, "Branch Coverage:     %.1f%%\n", *r.BranchCoverage)
	} else {
		fmt.Fprintf(&b, "Branch Coverage:     n/a\n")
	}
	fmt.Fprintf(&b, "\nInterpretation:      %s\n", r.Interpretation)

	for _, detail := range r.ErrorDetails {
		fmt.Fprintf(&b, "%s\n", detail)
	}
	if r.HTMLReportPath != "" {
		fmt.Fprintf(&b, "\nHTML Report:         %s\n", r.HTMLReportPath)
	}
	return b.String()
}

// DiffResults returns a unified diff between the rendered summaries of two
// runs with the same identifier, or "" when nothing changed. Used to show
// what a re-run changed before its record overwrites the previous one.
func DiffResults(prev, curr core.CoverageResult) string {
	a := FormatResult(prev)
	b := FormatResult(curr)
	if a == b {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "previous",
		ToFile:   "current",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}
