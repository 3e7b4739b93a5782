package cli

import (
	"github.com/spf13/cobra"
)

// RecentOptions holds flags for the recent command.
type RecentOptions struct {
	*RootOptions
	Count int
}

// NewRecentCommand creates the recent command.
func NewRecentCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecentOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "recent",
		Short:         "List the most recently asked questions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			questions, err := s.RecentQuestions(cmd.Context(), opts.Count)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), questions)
			}
			renderQuestions(cmd.OutOrStdout(), questions)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10, "maximum questions to list")

	return cmd
}
