package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <group>...",
	Short: "Print the contents of the given groups",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		out, err := eng.ShowGroups(args)
		if err != nil {
			return err
		}

		fmt.Print(out)
		return nil
	},
}
