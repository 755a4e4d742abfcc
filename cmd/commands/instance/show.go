package instance

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/devstork/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the tracked instance",
		Long: `Display the instance named by id_file. Read-only: nothing is
created, deleted or rewritten.

Example:
  devstork show`,
		Args:         cobra.NoArgs,
		Annotations:  sessionAnnotations(),
		RunE:         runShow,
		SilenceUsage: true,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	manager, err := managerFrom(cmd)
	if err != nil {
		return err
	}

	lk, err := manager.Lookup(cmd.Context())
	if err != nil {
		return err
	}

	if !lk.Found() {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing tracked.")
		if lk.Stale {
			fmt.Fprintf(cmd.ErrOrStderr(), "Note: id file holds %q but %s has no such server.\n",
				lk.ID, manager.Provider().GetDisplayName())
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(lk.Server.Name))
	printServerDetail(cmd, lk.Server)
	return nil
}

// printServerDetail prints a vertical key-value table of the server.
func printServerDetail(cmd *cobra.Command, server *domain.Server) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%s\n", server.ID)
	fmt.Fprintf(w, "  Status:\t%s\n", server.Status)
	fmt.Fprintf(w, "  Provider:\t%s\n", server.Provider)
	fmt.Fprintf(w, "  Flavor:\t%s\n", server.Flavor)

	if server.Image != "" {
		fmt.Fprintf(w, "  Image:\t%s\n", server.Image)
	}

	fmt.Fprintf(w, "  Networks:\t%s\n", server.NetworksString())

	if !server.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Created:\t%s\n", server.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	}

	w.Flush()
}
