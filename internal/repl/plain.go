package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// RunPlain runs the REPL as a line loop, for input that is not a terminal.
// It returns at end of input, on :quit or when ctx is done.
func RunPlain(ctx context.Context, session *Session, in io.Reader, out io.Writer, prompt string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), session.frontend.MaxInputLength()+1)

	for {
		if _, err := fmt.Fprint(out, prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		resp := session.Eval(ctx, scanner.Text())
		switch resp.Kind {
		case ResponseQuit:
			return nil
		case ResponseEmpty:
		default:
			if _, err := fmt.Fprintln(out, resp.Output); err != nil {
				return err
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
