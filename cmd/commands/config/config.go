package config

import (
	"nathanbeddoewebdev/devstork/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the devstork configuration file",
		Long: "Inspect the YAML file named by --conf (default conf.yaml).\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(CheckCommand())

	return cmd
}

// loadConfig loads the file named by the inherited --conf flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := config.DefaultPath
	if f := cmd.Flag("conf"); f != nil && f.Value.String() != "" {
		path = f.Value.String()
	}
	return config.Load(path)
}
