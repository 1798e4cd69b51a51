package pytest

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"time"
)

func TestBuildArgs(t *testing.T) {
	inv := Invocation{
		HarnessPath:      "/ws/test_coverage.py",
		SourceFile:       "/solutions/HumanEval_114.py",
		WorkspaceDir:     "/ws",
		CoverageJSONPath: "/ws/coverage.json",
		HTMLDir:          "/ws/htmlcov",
	}

	want := []string{
		"/ws/test_coverage.py",
		"--cov=HumanEval_114",
		"--cov-branch",
		"--cov-report=term-missing",
		"--cov-report=json:/ws/coverage.json",
		"--cov-report=html:/ws/htmlcov",
		"-vv",
		"--tb=short",
		"-p", "no:warnings",
	}
	if got := buildArgs(inv); !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs = %v, want %v", got, want)
	}
}

func TestExecRunnerTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns a process")
	}
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script")
	}

	ws := t.TempDir()

	// stands in for a hung pytest; ignores all arguments
	hang := filepath.Join(ws, "hang.sh")
	if err := os.WriteFile(hang, []byte("#!/bin/sh\nsleep 5\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := &ExecRunner{
		Bin:     hang,
		Timeout: 50 * time.Millisecond,
	}
	_, err := r.Run(context.Background(), Invocation{
		HarnessPath:      filepath.Join(ws, "test_coverage.py"),
		SourceFile:       filepath.Join(ws, "solution.py"),
		WorkspaceDir:     ws,
		CoverageJSONPath: filepath.Join(ws, "coverage.json"),
		HTMLDir:          filepath.Join(ws, "htmlcov"),
	})
	if err != ErrTimeout {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}
