package commands

import (
	"os"

	"github.com/asatex/kyuyokeisan-api/config"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/asatex/kyuyokeisan-api/libs/go/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	tablePath string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "premiumcalc",
		Short: "Calculate social insurance premiums",
		Long:  "premiumcalc splits the monthly health, nursing-care and pension premiums for a salary between employee and employer.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logger.InitLoggerWithConfig(logger.LoggerConfig{Level: "debug", Stage: "local", EnableColor: true})
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.tablePath, "table", os.Getenv("BRACKET_TABLE_PATH"), "path to a YAML rate table (default: the built-in table)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCalcCmd(opts))
	cmd.AddCommand(newBracketsCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// loadTable reads the table at path, or the built-in table when path is empty.
func loadTable(path string) (*services.BracketTable, error) {
	var (
		table *services.BracketTable
		err   error
	)
	source := path
	if path == "" {
		source = "built-in"
		table, err = services.ParseBracketTable(config.PremiumBrackets)
	} else {
		table, err = services.LoadBracketTable(path)
	}
	if err != nil {
		return nil, err
	}
	logger.ForComponent(logger.ComponentCLI).Debug("loaded rate table",
		zap.String("source", source),
		zap.Stringer("table", table),
	)
	return table, nil
}
