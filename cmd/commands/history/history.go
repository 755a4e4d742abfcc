package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and prune the local operation history",
		Long: "Every create and delete is recorded locally, including the instance ID,\n" +
			"so an instance can still be found if its id file is lost.\n\n" +
			"History is stored in devstork/devstork.db under the user config directory\n" +
			"($DEVSTORK_DB overrides the location).",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
