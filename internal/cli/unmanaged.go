package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var unmanagedCmd = &cobra.Command{
	Use:   "unmanaged",
	Short: "List installed packages not declared in any group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		todo, err := eng.Unmanaged(ctx)
		if err != nil {
			return err
		}

		if todo.NothingToDo() {
			PrintSection("Unmanaged Packages")
			PrintEmptyState("No unmanaged packages found.")
			return nil
		}

		PrintSection("Unmanaged Packages")
		printToDo(todo)
		return nil
	},
}
