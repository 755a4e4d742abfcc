package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nathanbeddoewebdev/devstork/internal/providers"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [provider]",
		Short: "Store a password or API token for a provider",
		Long: `Store a password or API token for a provider using the local keychain.

For openstack this is the Keystone password, for hetzner the API token.
In a terminal, the provider can be picked from a list and the secret is
typed without echo.

Example:
  devstork auth login openstack
  devstork auth login hetzner --token "$HCLOUD_TOKEN"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := ""
			if len(args) == 1 {
				provider = strings.TrimSpace(args[0])
			}

			token, err := cmd.Flags().GetString("token")
			if err != nil {
				return err
			}
			token = strings.TrimSpace(token)

			interactive := isTerminal(cmd.InOrStdin())
			if interactive && (provider == "" || token == "") {
				provider, token, err = loginForm(cmd, provider, token)
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Login cancelled.")
					return nil
				}
				if err != nil {
					return err
				}
			}

			if provider == "" {
				return errors.New("provider is required")
			}

			if token == "" && !interactive {
				fmt.Fprint(cmd.ErrOrStderr(), "Enter secret: ")
				token, err = readLine(cmd.InOrStdin())
				fmt.Fprintln(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("failed to read secret: %w", err)
				}
			}

			if token == "" {
				return errors.New("secret cannot be empty")
			}

			if err := newStore().SetToken(provider, token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved secret for provider %s\n", provider)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "Secret to store (optional, overrides prompt)")

	return cmd
}

// loginForm asks for whatever of provider and token is still missing.
func loginForm(cmd *cobra.Command, provider, token string) (string, string, error) {
	var fields []huh.Field

	if provider == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Provider").
			Options(huh.NewOptions(providers.List()...)...).
			Value(&provider))
	}

	if token == "" {
		fields = append(fields, huh.NewInput().
			Title("Secret").
			Description("Password or API token, stored in the OS keychain").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("secret cannot be empty")
				}
				return nil
			}).
			Value(&token))
	}

	err := huh.NewForm(huh.NewGroup(fields...)).
		WithInput(cmd.InOrStdin()).
		WithOutput(cmd.ErrOrStderr()).
		WithAccessible(os.Getenv("ACCESSIBLE") != "").
		Run()
	return strings.TrimSpace(provider), strings.TrimSpace(token), err
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLine reads one line of piped input.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
