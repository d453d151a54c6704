package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/declaro/declaro/internal/engine"
)

var syncDryRun bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Install packages that are declared but missing",
	Long: `Install every package declared in a group file that is not currently
installed, per backend.

Use --dry-run to preview what would be installed without installing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := eng.Sync(ctx, &engine.SyncRequest{DryRun: syncDryRun})
		if err != nil {
			return err
		}

		if result.NothingToDo {
			PrintSection("Sync")
			PrintEmptyState("Everything declared is already installed.")
			return nil
		}

		if syncDryRun {
			PrintSection("Dry Run")
			PrintInfo("Would install:")
			printToDo(result.ToInstall)
			fmt.Println()
			PrintWarning("Run without --dry-run to actually install these packages.")
			return nil
		}

		count := 0
		for _, item := range result.ToInstall.Items() {
			count += len(item.Packages)
		}
		PrintSuccess(fmt.Sprintf("Installed %s", PrintCount(count, "package", "packages")))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Preview what would be installed without installing")
}
