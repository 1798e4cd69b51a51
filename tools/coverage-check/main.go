// coverage-check reads a pytest coverage.json report and fails when any
// file is below the line or branch coverage thresholds.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/oxhq/pycov/pytest"
)

// Thresholds defines minimum coverage percentages per metric
type Thresholds struct {
	Line   float64
	Branch float64
}

var defaultThresholds = Thresholds{
	Line:   80.0,
	Branch: 70.0,
}

// Strict thresholds for CI/CD
var strictThresholds = Thresholds{
	Line:   90.0,
	Branch: 85.0,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <coverage.json> [--strict]\n", os.Args[0])
		os.Exit(1)
	}

	reportFile := os.Args[1]
	strict := len(os.Args) > 2 && os.Args[2] == "--strict"

	thresholds := defaultThresholds
	if strict {
		thresholds = strictThresholds
		fmt.Println("🔒 Using strict coverage thresholds")
	} else {
		fmt.Println("📊 Using default coverage thresholds")
	}

	files, err := pytest.ParseAllCoverage(reportFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading coverage report: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Coverage report contains no files")
		os.Exit(1)
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fmt.Printf("\n📈 Coverage Report:\n\n")

	failures := 0
	for _, path := range paths {
		cov := files[path]

		status := "✅"
		if cov.LinePercent < thresholds.Line ||
			(cov.BranchPercent != nil && *cov.BranchPercent < thresholds.Branch) {
			status = "❌"
			failures++
		}

		branch := "n/a"
		if cov.BranchPercent != nil {
			branch = fmt.Sprintf("%.1f%%", *cov.BranchPercent)
		}
		fmt.Printf("%s %-40s line %5.1f%% (target %.1f%%)  branch %s (target %.1f%%)\n",
			status, path, cov.LinePercent, thresholds.Line, branch, thresholds.Branch)
	}

	if failures > 0 {
		fmt.Printf("\n💥 Coverage check FAILED: %d file(s) below threshold\n", failures)
		os.Exit(1)
	}
	fmt.Printf("\n🎉 All coverage thresholds met!\n")
}
