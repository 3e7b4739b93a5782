package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parnab/overflow/internal/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load a YAML fixture into the database",
		Long: `Load users, questions, answers, votes and comments from a YAML
fixture file. Content is created through the same store operations the
application uses.

Example:
  overflow seed fixtures/forum.yaml --db forum.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := seed.Load(args[0])
			if err != nil {
				return err
			}

			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := seed.Apply(cmd.Context(), s, fixture, time.Now().UTC()); err != nil {
				return err
			}

			summary := map[string]int{
				"users":     len(fixture.Users),
				"questions": len(fixture.Questions),
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d questions\n",
				summary["users"], summary["questions"])
			return nil
		},
	}
}
