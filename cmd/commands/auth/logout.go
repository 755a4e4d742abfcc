package auth

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/devstork/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout <provider>",
		Short: "Remove the stored secret for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := strings.TrimSpace(args[0])

			err := newStore().DeleteToken(provider)
			if errors.Is(err, auth.ErrTokenNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No secret stored for provider %s\n", provider)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed secret for provider %s\n", provider)
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
