// Package harness materializes the generated pytest module for one run.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the fixed name of the generated module inside a workspace.
const FileName = "test_coverage.py"

// Alias is the name every assertion can target regardless of what the real
// function under test is called.
const Alias = "candidate"

// Generate writes the pytest module for sourceFile into workspaceDir and
// returns its path. One test_case_N function is emitted per test case, in
// input order, each wrapping exactly one assertion. Cases already starting
// with the assert keyword are used verbatim, otherwise the keyword is
// prepended.
func Generate(sourceFile, funcName string, testCases []string, workspaceDir string) (string, error) {
	module := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	sourceDir, err := filepath.Abs(filepath.Dir(sourceFile))
	if err != nil {
		return "", fmt.Errorf("resolve source dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Auto-generated pytest test file\n")
	b.WriteString("import sys\n")
	fmt.Fprintf(&b, "sys.path.insert(0, r'%s')\n\n", sourceDir)
	b.WriteString("try:\n")
	fmt.Fprintf(&b, "    from %s import %s\n", module, funcName)
	b.WriteString("except ImportError as e:\n")
	b.WriteString("    print(f\"Import error: {e}\")\n")
	fmt.Fprintf(&b, "    %s = None\n\n", funcName)
	fmt.Fprintf(&b, "# Alias so assertions can always call '%s'\n", Alias)
	fmt.Fprintf(&b, "%s = %s\n\n", Alias, funcName)

	for i, tc := range testCases {
		code := strings.TrimSpace(tc)
		if !strings.HasPrefix(code, "assert") {
			code = "assert " + code
		}
		fmt.Fprintf(&b, "def test_case_%d():\n", i)
		fmt.Fprintf(&b, "    \"\"\"Test case %d\"\"\"\n", i+1)
		fmt.Fprintf(&b, "    %s\n\n", code)
	}

	path := filepath.Join(workspaceDir, FileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write harness: %w", err)
	}
	return path, nil
}
