// Package pytest invokes the external pytest/coverage tool and parses its
// output. All parsing here is best-effort: malformed or missing output
// degrades to zero values, never to errors.
package pytest

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrTimeout is returned when a run exceeds its wall-clock bound. The
// child's output is unavailable in that case.
var ErrTimeout = errors.New("pytest execution timed out")

// Invocation describes one pytest run against a generated harness.
type Invocation struct {
	HarnessPath      string // generated test module
	SourceFile       string // original Python file under test
	WorkspaceDir     string // cwd for the run; all artifacts land here
	CoverageJSONPath string // machine-readable summary destination
	HTMLDir          string // HTML report tree destination
}

// Output is the captured text of one run. Pass/fail parsing works on the
// combined stream only; the JSON summary is reserved for coverage numbers.
type Output struct {
	Combined string
}

// Runner abstracts the subprocess so the pipeline can be exercised in tests
// without spawning real processes.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Output, error)
}

// ExecRunner runs the real pytest binary.
type ExecRunner struct {
	Bin     string        // pytest executable, "pytest" if empty
	Timeout time.Duration // hard limit per run, 30s if zero
}

// Run executes pytest with branch-aware coverage scoped to the source
// file's module. The exit code is deliberately ignored: downstream parsing
// consumes only the textual output and the workspace artifacts.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (Output, error) {
	bin := r.Bin
	if bin == "" {
		bin = "pytest"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, buildArgs(inv)...)
	cmd.Dir = inv.WorkspaceDir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return Output{}, ErrTimeout
	}
	// Failing tests make pytest exit nonzero; that is expected.
	_ = err

	return Output{Combined: buf.String()}, nil
}

// buildArgs assembles the pytest command line: branch-aware coverage scoped
// to the source module, a JSON summary and an HTML tree in the workspace,
// verbose output with short tracebacks.
func buildArgs(inv Invocation) []string {
	module := strings.TrimSuffix(filepath.Base(inv.SourceFile), filepath.Ext(inv.SourceFile))
	return []string{
		inv.HarnessPath,
		"--cov=" + module,
		"--cov-branch",
		"--cov-report=term-missing",
		"--cov-report=json:" + inv.CoverageJSONPath,
		"--cov-report=html:" + inv.HTMLDir,
		"-vv",
		"--tb=short",
		"-p", "no:warnings",
	}
}
