package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/mainer"
)

// repl implements spec.md §6's interactive mode: each line read from
// stdio.Stdin is independently scanned, parsed, resolved and executed
// against one long-lived Interpreter, so declarations and closures from
// earlier lines remain visible to later ones. Unlike runFile, an error on
// one line never ends the session (spec.md §7); the loop only stops at
// EOF or context cancellation, and always exits 0.
func (c *Cmd) repl(ctx context.Context, stdio mainer.Stdio) mainer.ExitCode {
	it := interp.New(stdio.Stdout)
	scanIn := bufio.NewScanner(stdio.Stdin)

	for {
		if err := ctx.Err(); err != nil {
			return exitSuccess
		}
		fmt.Fprint(stdio.Stdout, "> ")
		if !scanIn.Scan() {
			return exitSuccess
		}
		line := scanIn.Text()
		if line == "" {
			continue
		}

		stmts, locals, code := compile(stdio, []byte(line))
		if code != exitSuccess {
			continue
		}
		if err := it.Run(ctx, stmts, locals); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
		}
	}
}
