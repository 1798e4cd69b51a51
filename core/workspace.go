package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is a uniquely named temporary directory scoped to a single
// analysis run. It owns the generated harness, the machine-readable coverage
// summary and the raw HTML report tree.
type Workspace struct {
	Dir string
}

// NewWorkspace creates the temporary directory for one run.
func NewWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "pycov-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{Dir: dir}, nil
}

// HarnessPath is the fixed location of the generated pytest file.
func (w *Workspace) HarnessPath() string {
	return filepath.Join(w.Dir, "test_coverage.py")
}

// CoverageJSONPath is the fixed location of the machine-readable summary.
func (w *Workspace) CoverageJSONPath() string {
	return filepath.Join(w.Dir, "coverage.json")
}

// HTMLDir is the fixed location of the raw HTML report tree.
func (w *Workspace) HTMLDir() string {
	return filepath.Join(w.Dir, "htmlcov")
}

// Remove deletes the workspace. Errors are ignored: cleanup runs on every
// exit path, including after failed runs where the directory may be gone.
func (w *Workspace) Remove() {
	if w == nil || w.Dir == "" {
		return
	}
	_ = os.RemoveAll(w.Dir)
}
