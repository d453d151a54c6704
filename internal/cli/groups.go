package cli

import (
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List all known groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		names := eng.GroupNames()
		if len(names) == 0 {
			PrintEmptyState("No groups found.")
			return nil
		}

		for _, name := range names {
			PrintInfo(name)
		}
		return nil
	},
}
