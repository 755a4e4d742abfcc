package instance

import (
	"time"

	"nathanbeddoewebdev/devstork/internal/history"

	"github.com/spf13/cobra"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the instance",
		Long: `Create the configured instance unless the id file already tracks a
live one. The new instance's ID is written to id_file.

Examples:
  devstork create
  devstork --conf staging.yaml create`,
		Args:         cobra.NoArgs,
		Annotations:  sessionAnnotations(),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	manager, err := managerFrom(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	server, created, err := manager.Create(cmd.Context())

	outcome := history.OutcomeExists
	if created {
		outcome = history.OutcomeCreated
	}
	recordHistory(manager, "create", outcome, server, err, start)

	return err
}
