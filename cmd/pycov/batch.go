package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/oxhq/pycov/core"
	"github.com/oxhq/pycov/report"
)

func newBatchCmd() *cobra.Command {
	var (
		tests     []string
		testsFile string
	)

	cmd := &cobra.Command{
		Use:   "batch <glob>",
		Short: "Analyze every Python file matching a glob pattern",
		Long: `Analyze every Python file matching a doublestar glob pattern
(e.g. 'codes/**/*.py'), sequentially, running the same test cases against
each. The identifier for each run is derived from the file name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cases, err := readTestCases(tests, testsFile)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			matches, err := doublestar.FilepathGlob(args[0])
			if err != nil {
				return fmt.Errorf("bad glob pattern %q: %w", args[0], err)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no files match %q", args[0])
			}

			log := newLogger(cfg.Debug)
			defer log.Sync()

			publisher := report.NewPublisher(cfg.OutputDir, log)
			pipeline := core.NewPipeline(cfg, nil, publisher, log)

			// Runs are sequential: each analysis owns a pytest child
			// process and its own workspace.
			for _, file := range matches {
				id := batchID(file)
				result := pipeline.Analyze(cmd.Context(), file, cases, id)
				fmt.Fprint(cmd.OutOrStdout(), report.FormatResult(result))
				fmt.Fprintln(cmd.OutOrStdout())
				if err := persistResult(cmd, store, result); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tests, "test", "t", nil, "Assertion test case (repeatable).")
	cmd.Flags().StringVar(&testsFile, "tests-file", "", "File with one assertion per line.")
	return cmd
}

// batchID derives a filesystem-safe identifier from a source path: the
// parent directory plus the file stem.
func batchID(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parent := filepath.Base(filepath.Dir(path))
	if parent == "." || parent == string(filepath.Separator) {
		return stem
	}
	return parent + "_" + stem
}
