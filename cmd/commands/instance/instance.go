// Package instance holds the commands that act on the tracked instance.
package instance

import (
	"github.com/spf13/cobra"
)

// Commands returns the create, delete and show commands.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		CreateCommand(),
		DeleteCommand(),
		ShowCommand(),
	}
}

func sessionAnnotations() map[string]string {
	return map[string]string{SessionAnnotation: "true"}
}
