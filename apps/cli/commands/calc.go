package commands

import (
	"fmt"

	"github.com/asatex/kyuyokeisan-api/apps/cli/render"
	"github.com/asatex/kyuyokeisan-api/libs/go/services"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newCalcCmd(root *rootOptions) *cobra.Command {
	var (
		salary     int64
		age        int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Split the premiums for a monthly salary",
		Long:  "Look up the premium bracket for a monthly salary and split each premium 50/50. Nursing care applies from age 40.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(root.tablePath)
			if err != nil {
				return err
			}

			svc := services.NewSocialInsuranceService(table, nil)
			bracket, result, err := svc.Quote(cmd.Context(), salary, age)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(responses.NewSocialInsuranceResponse(result), "", "  ")
				if err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), render.RenderResult(salary, age, *bracket, result))
			return nil
		},
	}

	cmd.Flags().Int64Var(&salary, "salary", 0, "monthly salary in yen")
	cmd.Flags().IntVar(&age, "age", 0, "age of the employee in years")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	_ = cmd.MarkFlagRequired("salary")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}
