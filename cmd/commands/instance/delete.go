package instance

import (
	"time"

	"nathanbeddoewebdev/devstork/internal/history"

	"github.com/spf13/cobra"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the instance",
		Long: `Delete the instance named by id_file, then remove id_file.
Does nothing when no live instance is tracked.

Examples:
  devstork delete
  devstork --conf staging.yaml delete`,
		Args:         cobra.NoArgs,
		Annotations:  sessionAnnotations(),
		RunE:         runDelete,
		SilenceUsage: true,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	manager, err := managerFrom(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	server, err := manager.Delete(cmd.Context())

	outcome := history.OutcomeNothing
	if server != nil {
		outcome = history.OutcomeDeleted
	}
	recordHistory(manager, "delete", outcome, server, err, start)

	return err
}
