package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/declaro/declaro/internal/term"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Interactively handle unmanaged packages",
	Long: `Walk through every package that is installed but not declared in any
group, and decide per package what to do with it:

  g  assign the package to a group
  d  delete the package
  s  skip the package
  i  show the package manager's info for the package
  a  mark the package as installed-as-dependency (where supported)
  q  quit the review without applying anything

All decisions are previewed and confirmed once before anything is
executed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		return eng.Review(ctx, term.New(), os.Stdout)
	},
}
