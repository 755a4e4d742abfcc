package auth

import (
	"nathanbeddoewebdev/devstork/internal/services/auth"

	"github.com/spf13/cobra"
)

// newStore returns the credential store the commands operate on.
var newStore = auth.DefaultStore

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage provider credentials in the OS keychain",
		Long: `Manage provider credentials in the OS keychain.

A stored secret is used whenever the config's auth mapping leaves the
provider's password or token empty, so conf.yaml can be shared without it.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}
