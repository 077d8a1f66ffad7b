package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	lcerror "github.com/msto63/lambda/foundation/core/error"
)

// readInput returns the inline expression, the named file or stdin
func readInput(expr string, args []string, limit int) (string, error) {
	if expr != "" {
		return expr, nil
	}

	var r io.Reader = os.Stdin
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", lcerror.Wrap(err, "failed to open input").
				WithCode(lcerror.CodeNotFound).
				WithDetail("path", args[0])
		}
		defer f.Close()
		r, name = f, args[0]
	}

	// One byte over the limit is enough for the front end to reject it
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return "", lcerror.Wrap(err, "failed to read input").
			WithCode(lcerror.CodeInvalidInput).
			WithDetail("source", name)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
