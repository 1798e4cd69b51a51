package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxhq/pycov/report"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the stored result of a previous analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("no database configured: set --db or PYCOV_DATABASE_URL")
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			result, ok, err := store.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no stored result for %q", args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), report.FormatResult(result))
			return nil
		},
	}
}
