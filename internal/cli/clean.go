package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/declaro/declaro/internal/engine"
	"github.com/declaro/declaro/internal/term"
)

var (
	cleanDryRun bool
	cleanForce  bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all unmanaged packages",
	Long: `Remove every package that is installed but not declared in any group.

By default, you will be shown the removal plan and prompted to confirm.
Use --force to skip the confirmation prompt.
Use --dry-run to preview what would be removed without removing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		preview, err := eng.Clean(ctx, &engine.CleanRequest{DryRun: true})
		if err != nil {
			return err
		}

		if preview.NothingToDo {
			PrintSection("Clean")
			PrintEmptyState("No unmanaged packages found.")
			return nil
		}

		PrintSection("Clean")
		PrintInfo("Unmanaged packages to remove:")
		printToDo(preview.ToRemove)
		fmt.Println()

		if cleanDryRun {
			PrintWarning("Run without --dry-run to actually remove these packages.")
			return nil
		}

		if !cleanForce {
			ok, err := term.New().Confirm("Proceed?")
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("removal cancelled by user")
			}
		}

		result, err := eng.Clean(ctx, &engine.CleanRequest{})
		if err != nil {
			return err
		}

		count := 0
		for _, item := range result.ToRemove.Items() {
			count += len(item.Packages)
		}
		PrintSuccess(fmt.Sprintf("Removed %s", PrintCount(count, "package", "packages")))
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Preview what would be removed without removing")
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "Skip confirmation prompt")
}
