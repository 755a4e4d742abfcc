package cmd

import (
	"os"

	"nathanbeddoewebdev/devstork/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/devstork/cmd/commands/config"
	histcmd "nathanbeddoewebdev/devstork/cmd/commands/history"
	"nathanbeddoewebdev/devstork/cmd/commands/instance"
	"nathanbeddoewebdev/devstork/internal/config"
	"nathanbeddoewebdev/devstork/internal/logger"
	"nathanbeddoewebdev/devstork/internal/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "devstork",
		Short: "Create and delete a single cloud VM described by a YAML file",
		Long: `devstork manages one virtual machine per configuration file. "create"
boots it unless it already exists and records its ID in id_file; "delete"
removes it and the record. Running either twice is harmless.

Supported providers: openstack (default), hetzner.

` + config.KeysHelp() + `
Quick start:
  devstork auth login openstack    # Store your password in the keychain
  devstork create                  # Boot the instance from conf.yaml
  devstork show                    # Inspect it
  devstork delete                  # Tear it down
  devstork history list            # Past creates and deletes`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !instance.NeedsSession(cmd) {
				return nil
			}
			return instance.StartSession(cmd)
		},
	}

	cmd.PersistentFlags().String("conf", config.DefaultPath, "location of the YAML configuration file")

	cmd.AddCommand(instance.Commands()...)
	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(histcmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logger.InitializeAndConfigure(os.Stderr)
	providers.RegisterDefaults()

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
