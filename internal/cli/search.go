package cli

import (
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <expression>",
		Short: "Search questions",
		Long: `Search questions with the leading-sigil grammar:

  @name      questions by users whose username contains "name"
  #tag       questions tagged with a matching tag
  :accepted  questions with an accepted answer
  >n         questions with more than n answers
  anything   free-text match against title and body

Example:
  overflow search '#css'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			questions, err := s.SearchQuestions(cmd.Context(), args[0])
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
}
