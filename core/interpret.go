package core

import "fmt"

// Interpret maps test counts and coverage percentages to a human-readable
// verdict. The rule order is significant: failing tests win over everything,
// line coverage gates the branch checks, and some combinations (for example
// line coverage in [80,90) with high branch coverage) intentionally fall
// through to the generic verdict.
func Interpret(passed, failed int, lineCov float64, branchCov *float64) string {
	if failed > 0 {
		return fmt.Sprintf("%d test(s) failed - fix failing tests first", failed)
	}

	if lineCov < 50 {
		return "Low line coverage - significant untested code paths"
	} else if lineCov < 80 {
		return "Moderate line coverage - some untested code paths"
	}

	if branchCov != nil {
		if *branchCov < 50 {
			return "Low branch coverage - untested conditional logic and error paths"
		} else if *branchCov < 80 {
			return "Moderate branch coverage - some conditional branches untested"
		}
	}

	if lineCov >= 90 {
		switch {
		case branchCov != nil && *branchCov >= 90:
			return "Excellent coverage - well-tested code"
		case branchCov != nil:
			return "Good line coverage but some branches untested"
		default:
			return "Good line coverage achieved"
		}
	}

	return "Adequate coverage"
}
