package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/devstork/internal/config"

	"github.com/spf13/cobra"
)

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Print configuration values",
		Long: "Print one configuration value, or all of them when no key is given.\n" +
			"The auth mapping is never printed.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  devstork config get\n" +
			"  devstork --conf staging.yaml config get image",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	var spec *config.KeySpec
	if len(args) == 1 {
		spec = config.Lookup(args[0])
		if spec == nil {
			return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if spec != nil {
		value := spec.Get(cfg)
		if value == "" {
			value = "not set"
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	for _, k := range config.Keys {
		value := k.Get(cfg)
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k.Name, value)
	}
	return nil
}
