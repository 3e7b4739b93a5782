package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database and apply the schema",
		Long: `Create the database file and apply the forum schema.

Safe to run repeatedly; every schema statement is idempotent.

Example:
  overflow init --db forum.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"db": rootOpts.DBPath})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", rootOpts.DBPath)
			return nil
		},
	}
}
