package commands

import (
	"fmt"

	"github.com/asatex/kyuyokeisan-api/apps/cli/render"
	"github.com/spf13/cobra"
)

func newBracketsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "brackets",
		Short: "List the rate table",
		Long:  "Load and validate the rate table, then print one line per grade. Rows that queries would reject are listed as warnings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(root.tablePath)
			if err != nil {
				return err
			}

			brackets, err := table.ListBrackets(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.RenderBrackets(table.Name, table.EffectiveFrom, brackets))
			for _, b := range brackets {
				if err := b.Validate(); err != nil {
					fmt.Fprint(out, render.RenderWarning(err))
				}
			}
			return nil
		},
	}
}
