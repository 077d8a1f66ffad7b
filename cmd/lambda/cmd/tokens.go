package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lambda/internal/repl"
)

var tokensExpr string

var tokensCmd = &cobra.Command{
	Use:     "tokens [file]",
	Aliases: []string{"lex"},
	Short:   "Prints the token stream of the input",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensExpr, "expr", "e", "", "input to tokenize instead of a file")
}

func runTokens(cmd *cobra.Command, args []string) error {
	input, err := readInput(tokensExpr, args, appConfig.Parser.MaxInputLength)
	if err != nil {
		return err
	}

	tokens, err := newFrontend().Tokenize(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), repl.FormatTokens(tokens))
	return err
}
