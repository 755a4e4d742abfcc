package config

import (
	"fmt"

	"nathanbeddoewebdev/devstork/internal/config"
	"nathanbeddoewebdev/devstork/internal/providers"
	"nathanbeddoewebdev/devstork/internal/util"

	"github.com/spf13/cobra"
)

// CheckCommand returns the "config check" command.
func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report problems in the configuration file",
		Long: `Check the configuration file without contacting the provider.

Reports every required key that is missing, an unknown provider, an
unparsable timeout and a malformed auth mapping. Exits non-zero when
anything is wrong.`,
		Args:         cobra.NoArgs,
		RunE:         runCheck,
		SilenceUsage: true,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	problems := checkConfig(cfg)
	if len(problems) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", cfg.Path())
		return nil
	}

	for _, p := range problems {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", p)
	}
	return fmt.Errorf("%s: %d problem(s) found", cfg.Path(), len(problems))
}

func checkConfig(cfg *config.Config) []error {
	var problems []error

	for _, k := range config.Keys {
		if !k.Required {
			continue
		}
		if _, err := cfg.Require(k.Name); err != nil {
			problems = append(problems, err)
		}
	}

	if !isRegistered(cfg.ProviderName()) {
		problems = append(problems, fmt.Errorf("unknown provider %q", cfg.ProviderName()))
	}

	if _, err := cfg.OperationTimeout(); err != nil {
		problems = append(problems, err)
	}

	var probe map[string]any
	if err := cfg.DecodeAuth(&probe); err != nil {
		problems = append(problems, err)
	}

	return problems
}

func isRegistered(name string) bool {
	want := util.NormalizeKey(name)
	for _, p := range providers.List() {
		if p == want {
			return true
		}
	}
	return false
}
