package repl

import (
	"fmt"
	"strings"

	lclexer "github.com/msto63/lambda/foundation/lambda/lexer"
	"github.com/msto63/lambda/internal/history"
)

// FormatTokens lists tokens one per line with their positions
func FormatTokens(tokens []lclexer.Token) string {
	lines := make([]string, 0, len(tokens)+1)
	lines = append(lines, "Tokens:")
	for _, tok := range tokens {
		lines = append(lines, fmt.Sprintf("  %-8s %s", tok.Pos.String(), tok.String()))
	}
	return strings.Join(lines, "\n")
}

// FormatHistory lists entries oldest first, failures marked with "!"
func FormatHistory(entries []*history.Entry) string {
	lines := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		mark := " "
		if !e.OK {
			mark = "!"
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s", e.Timestamp.Local().Format("2006-01-02 15:04:05"), mark, e.Input))
	}
	return strings.Join(lines, "\n")
}
