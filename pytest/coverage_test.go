package pytest

import (
	"os"
	"path/filepath"
	"testing"
)

const coverageFixture = `{
  "meta": {"version": "7.4.0", "branch_coverage": true},
  "files": {
    "solution.py": {
      "summary": {
        "covered_lines": 14,
        "num_statements": 15,
        "percent_covered": 93.33333333333333,
        "num_branches": 8,
        "covered_branches": 7
      }
    },
    "conftest.py": {
      "summary": {
        "covered_lines": 2,
        "num_statements": 2,
        "percent_covered": 100.0,
        "num_branches": 0,
        "covered_branches": 0
      }
    }
  },
  "totals": {"percent_covered": 94.1}
}`

func writeCoverageJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coverage.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCoverageByBasename(t *testing.T) {
	path := writeCoverageJSON(t, coverageFixture)

	cov := ParseCoverage(path, "/somewhere/else/solution.py")
	if cov.LinePercent < 93.3 || cov.LinePercent > 93.4 {
		t.Errorf("LinePercent = %v, want ~93.33", cov.LinePercent)
	}
	if cov.StatementPercent != cov.LinePercent {
		t.Errorf("statement coverage %v should equal line coverage %v", cov.StatementPercent, cov.LinePercent)
	}
	if cov.StatementsCovered != 14 || cov.StatementsTotal != 15 {
		t.Errorf("statements = %d/%d, want 14/15", cov.StatementsCovered, cov.StatementsTotal)
	}
	if cov.StatementsCovered > cov.StatementsTotal {
		t.Error("covered statements exceed total")
	}
	if cov.BranchPercent == nil {
		t.Fatal("expected branch coverage")
	}
	if *cov.BranchPercent != 87.5 {
		t.Errorf("BranchPercent = %v, want 87.5", *cov.BranchPercent)
	}
}

func TestParseCoverageNoBranches(t *testing.T) {
	path := writeCoverageJSON(t, coverageFixture)

	cov := ParseCoverage(path, "conftest.py")
	if cov.LinePercent != 100.0 {
		t.Errorf("LinePercent = %v, want 100", cov.LinePercent)
	}
	if cov.BranchPercent != nil {
		t.Errorf("BranchPercent = %v, want nil for zero branches", *cov.BranchPercent)
	}
}

func TestParseCoverageDegradesToZero(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "coverage.json")
	if cov := ParseCoverage(missing, "solution.py"); cov != (Coverage{}) {
		t.Errorf("missing file: got %+v, want zero", cov)
	}

	garbage := writeCoverageJSON(t, "{not json")
	if cov := ParseCoverage(garbage, "solution.py"); cov != (Coverage{}) {
		t.Errorf("bad json: got %+v, want zero", cov)
	}

	valid := writeCoverageJSON(t, coverageFixture)
	if cov := ParseCoverage(valid, "unrelated.py"); cov != (Coverage{}) {
		t.Errorf("no matching entry: got %+v, want zero", cov)
	}
}

func TestParseAllCoverage(t *testing.T) {
	path := writeCoverageJSON(t, coverageFixture)

	files, err := ParseAllCoverage(path)
	if err != nil {
		t.Fatalf("ParseAllCoverage: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files["solution.py"].StatementsTotal != 15 {
		t.Errorf("solution.py statements = %d, want 15", files["solution.py"].StatementsTotal)
	}

	if _, err := ParseAllCoverage(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing report")
	}
}
