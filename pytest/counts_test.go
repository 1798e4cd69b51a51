package pytest

import "testing"

func TestParseCountsExplicit(t *testing.T) {
	tests := []struct {
		name   string
		output string
		total  int
		want   Counts
	}{
		{
			name:   "all passed",
			output: "========= 12 passed in 0.08s =========",
			total:  12,
			want:   Counts{Passed: 12},
		},
		{
			name:   "mixed",
			output: "==================== 3 failed, 9 passed in 0.12s ====================",
			total:  12,
			want:   Counts{Passed: 9, Failed: 3},
		},
		{
			name:   "all failed",
			output: "========= 5 failed in 0.20s =========",
			total:  5,
			want:   Counts{Failed: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCounts(tt.output, tt.total)
			if got != tt.want {
				t.Errorf("ParseCounts = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCountsFallback(t *testing.T) {
	// Collection errors produce no per-test counts at all.
	collectError := `==================== ERRORS ====================
ERROR collecting test_coverage.py
ImportError while importing test module
==================== 1 error in 0.05s ====================`

	got := ParseCounts(collectError, 4)
	if got.Failed != 4 || got.Passed != 0 {
		t.Errorf("collection error: got %+v, want all 4 failed", got)
	}

	// No counts, but the output still says "passed" somewhere.
	got = ParseCounts("everything PASSED, nothing to report", 3)
	if got.Passed != 3 || got.Failed != 0 {
		t.Errorf("passed fallback: got %+v, want all 3 passed", got)
	}
}
