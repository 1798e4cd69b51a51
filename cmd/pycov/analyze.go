package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oxhq/pycov/core"
	"github.com/oxhq/pycov/db"
	"github.com/oxhq/pycov/report"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		tests     []string
		testsFile string
		id        string
	)

	cmd := &cobra.Command{
		Use:   "analyze <python-file>",
		Short: "Run test cases against a Python file under coverage",
		Args:  cobra.ExactArgs(1),
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

			if id == "" {
				id = "analysis-" + uuid.NewString()[:8]
			}

			log := newLogger(cfg.Debug)
			defer log.Sync()

			publisher := report.NewPublisher(cfg.OutputDir, log)
			pipeline := core.NewPipeline(cfg, nil, publisher, log)

			result := pipeline.Analyze(cmd.Context(), args[0], cases, id)
			fmt.Fprint(cmd.OutOrStdout(), report.FormatResult(result))

			return persistResult(cmd, store, result)
		},
	}

	cmd.Flags().StringArrayVarP(&tests, "test", "t", nil, "Assertion test case (repeatable).")
	cmd.Flags().StringVar(&testsFile, "tests-file", "", "File with one assertion per line.")
	cmd.Flags().StringVar(&id, "id", "", "Analysis identifier (generated if empty).")
	return cmd
}

// persistResult saves the result when a store is configured, printing a
// diff against the previous run with the same identifier first.
func persistResult(cmd *cobra.Command, store *db.Store, result core.CoverageResult) error {
	if store == nil {
		return nil
	}

	prev, ok, err := store.Get(result.ID)
	if err != nil {
		return err
	}
	if ok {
		if diff := report.DiffResults(prev, result); diff != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "\nChanges since previous run:\n%s", diff)
		}
	}
	return store.Save(result)
}
