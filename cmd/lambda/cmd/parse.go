package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	lcerror "github.com/msto63/lambda/foundation/core/error"
	"github.com/msto63/lambda/foundation/lambda"
	lcast "github.com/msto63/lambda/foundation/lambda/ast"
	"github.com/msto63/lambda/internal/printer"
)

var (
	parseExpr   string
	parseMode   string
	parseFormat string
	parseTypes  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parses a program or expression and prints its syntax tree",
	Long: `Parses the given file, stdin ("-" or no argument) or the inline
expression given with -e, and prints the syntax tree.

Modes:
  auto      program first, then a single expression (default)
  program   top-level assignments only
  expr      a single expression

Formats:
  tree      indented syntax tree (default)
  source    the tree rendered back to source text

The exit status is 1 when the input does not parse.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "expr", "e", "", "expression to parse instead of a file")
	parseCmd.Flags().StringVarP(&parseMode, "mode", "m", "auto", "grammar: auto, program or expr")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "tree", "output format: tree or source")
	parseCmd.Flags().BoolVarP(&parseTypes, "types", "t", false, "show the type slot of every node")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(parseExpr, args, appConfig.Parser.MaxInputLength)
	if err != nil {
		return err
	}

	fe := newFrontend()
	var result *lambda.Result
	switch strings.ToLower(parseMode) {
	case "auto":
		result, err = fe.Parse(input)
	case "program":
		result, err = fe.ParseProgram(input)
	case "expr", "expression":
		result, err = fe.ParseExpression(input)
	default:
		return lcerror.Newf("unknown mode %q, expected auto, program or expr", parseMode).
			WithCode(lcerror.CodeInvalidInput)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(parseFormat) {
	case "tree":
		color := printer.ColorNever
		if appConfig.REPL.Color && out == os.Stdout {
			color = printer.ColorAuto
		}
		return printer.New(out, printer.Options{Color: color, ShowTypes: parseTypes}).Print(result.Tree)
	case "source":
		_, err = fmt.Fprintln(out, lcast.Format(result.Tree))
		return err
	default:
		return lcerror.Newf("unknown format %q, expected tree or source", parseFormat).
			WithCode(lcerror.CodeInvalidInput)
	}
}
