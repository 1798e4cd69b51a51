package pytest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	testCaseRe  = regexp.MustCompile(`test_case_(\d+)`)
	assertEqRe  = regexp.MustCompile(`assert\s+(.+?)\s*==\s*(.+?)(?:\s|$)`)
	comparisons = []string{"==", "!=", ">", "<", ">=", "<="}
)

const (
	maxDetails        = 20 // global cap on collected detail lines
	assertionWindow   = 30 // lines scanned below a FAILED marker
	actualValueWindow = 5  // lines scanned below a matched assertion
	fallbackLimit     = 5  // raw lines collected when no markup matched
)

// ExtractFailures scans the combined output for failed test units and pulls
// out assertion details: the compared expression, the expected value and
// any "where"-style actual-value context pytest prints below the assertion.
// When the targeted markup yields nothing, a coarse pass collects raw
// failure lines instead.
func ExtractFailures(output string) []string {
	var details []string
	lines := strings.Split(output, "\n")

	for i, line := range lines {
		if !strings.Contains(line, "FAILED") || !strings.Contains(line, "test_case_") {
			continue
		}

		caseNum := "?"
		if m := testCaseRe.FindStringSubmatch(line); m != nil {
			// identifiers are zero-based, display is one-based
			n, _ := strconv.Atoi(m[1])
			caseNum = strconv.Itoa(n + 1)
		}
		details = append(details, fmt.Sprintf("\n❌ Test Case %s FAILED", caseNum))

		found := false
		for j := i + 1; j < min(i+assertionWindow, len(lines)); j++ {
			check := strings.TrimSpace(lines[j])
			if !strings.Contains(strings.ToLower(check), "assert") || !containsAny(check, comparisons) {
				continue
			}

			check = strings.TrimSpace(strings.TrimPrefix(check, "E "))
			check = strings.TrimSpace(strings.TrimPrefix(check, ">"))

			if strings.Contains(check, "==") {
				m := assertEqRe.FindStringSubmatch(check)
				if m == nil {
					continue
				}
				details = append(details, "   Expression: "+strings.TrimSpace(m[1]))
				details = append(details, "   Expected: "+strings.TrimSpace(m[2]))

				for k := j + 1; k < min(j+actualValueWindow, len(lines)); k++ {
					next := strings.TrimSpace(lines[k])
					if (strings.HasPrefix(next, "where") || strings.Contains(next, "=")) &&
						!strings.HasPrefix(next, "assert") {
						details = append(details, "   "+next)
					}
				}
				found = true
				break
			}

			details = append(details, "   "+check)
			found = true
			break
		}

		if !found {
			details = append(details, "   (See full output for details)")
		}
		if len(details) >= maxDetails {
			break
		}
	}

	if len(details) == 0 {
		for _, line := range lines {
			if strings.Contains(line, "FAILED") || strings.Contains(line, "AssertionError") ||
				strings.Contains(line, "ERROR") {
				details = append(details, strings.TrimSpace(line))
				if len(details) >= fallbackLimit {
					break
				}
			}
		}
	}

	return details
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
