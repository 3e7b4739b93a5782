package cli

import (
	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags [expression]",
		Short: "List tags by popularity",
		Long: `List tags ordered by how many questions use them, most used
first. An optional expression restricts the list to tags whose name
contains it.

Example:
  overflow tags go`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := ""
			if len(args) == 1 {
				expr = args[0]
			}

			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			tags, err := s.PopularTags(cmd.Context(), expr)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), tags)
			}
			renderTags(cmd.OutOrStdout(), tags)
			return nil
		},
	}
}
