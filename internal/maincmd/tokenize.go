package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// Tokenize runs only the scanner over each file in args and prints the
// resulting tokens, one per line, for inspecting the output of component
// B standalone (spec.md's supplemented debug tooling).
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var firstErr error
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		toks, err := scanner.ScanAll(src)
		for _, tok := range toks {
			fmt.Fprintln(stdio.Stdout, tok)
		}
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
