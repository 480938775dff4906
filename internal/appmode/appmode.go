// Package appmode wires the resolver, the logger and the processor into the root command
package appmode

import (
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/logger"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/spf13/cobra"
)

func NewRootCommand(stdout, stderr io.Writer, lookup parser.LookupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep QUERY PATH",
		Short: "Print lines of PATH containing QUERY",
		Long: "Prints every line of the file PATH that contains QUERY as a substring.\n" +
			"Set " + parser.CaseToggleEnv + " (any value) to ignore case.",
		Args: cobra.ArbitraryArgs,
		// все аргументы позиционные, запрос может начинаться с '-'
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, stdout, stderr, lookup)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func run(args []string, stdout, stderr io.Writer, lookup parser.LookupFunc) (err error) {
	appParam, err := parser.InitAppParam(args, lookup)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(appParam.LogParam, stderr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	log.Info().
		Str("query", appParam.SearchParam.Query()).
		Str("path", appParam.SearchParam.Path()).
		Bool("case_insensitive", appParam.SearchParam.CaseInsensitive()).
		Msg("starting search")

	if _, err := processor.New(log).Run(appParam.SearchParam, stdout); err != nil {
		log.Debug().Err(err).Msg("search failed")
		return err
	}
	return nil
}
