// pycov analyzes a single-function Python file against a list of assertion
// test cases, running pytest under branch-aware coverage and reporting
// pass/fail counts, coverage percentages and a human-readable verdict.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxhq/pycov/core"
	"github.com/oxhq/pycov/db"
)

var (
	flagConfig    string
	flagOutputDir string
	flagDatabase  string
	flagDebug     bool
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "pycov",
		Short:        "Coverage analysis pipeline for Python exercise solutions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file.")
	root.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "Directory for published HTML reports.")
	root.PersistentFlags().StringVar(&flagDatabase, "db", "", "Database DSN for persisted results (file path or libsql URL).")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable verbose logging.")

	root.AddCommand(newAnalyzeCmd(), newBatchCmd(), newShowCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the effective config: file + environment, then flag
// overrides.
func loadConfig() (core.Config, error) {
	cfg, err := core.LoadConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagDatabase != "" {
		cfg.DatabaseURL = flagDatabase
	}
	if flagDebug {
		cfg.Debug = true
	}
	return cfg, nil
}

func newLogger(debug bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if debug {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openStore connects when a DSN is configured; a nil store disables
// persistence.
func openStore(cfg core.Config) (*db.Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	gdb, err := db.Connect(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		return nil, err
	}
	return db.NewStore(gdb), nil
}

// readTestCases merges repeated --test flags with the lines of an optional
// --tests-file, preserving order. Blank lines and #-comments are skipped.
func readTestCases(tests []string, testsFile string) ([]string, error) {
	cases := append([]string(nil), tests...)

	if testsFile != "" {
		f, err := os.Open(testsFile)
		if err != nil {
			return nil, fmt.Errorf("open tests file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			cases = append(cases, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read tests file: %w", err)
		}
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("no test cases given: use --test or --tests-file")
	}
	return cases, nil
}
