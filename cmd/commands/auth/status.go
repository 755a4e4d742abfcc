package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/devstork/internal/providers"
	"nathanbeddoewebdev/devstork/internal/services/auth"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	loggedInStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	notLoggedInStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which providers have a stored secret",
		Long: `Show which providers have a stored secret.

Example:
  devstork auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := newStore()
			providerNames := providers.List()

			if len(providerNames) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No providers registered.")
				return nil
			}

			for _, provider := range providerNames {
				_, err := store.GetToken(provider)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", provider, loggedInStyle.Render("logged in"))
				case errors.Is(err, auth.ErrTokenNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", provider, notLoggedInStyle.Render("not logged in"))
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", provider, errorStyle.Render(fmt.Sprintf("error (%v)", err)))
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
