package maincmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// Resolve runs the scanner, parser and resolver over each file in args and
// prints the syntax tree followed by the scope-depth annotation the
// resolver attached to every locally resolved reference (globals carry no
// annotation and are not listed), for inspecting the output of component E
// standalone.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFiles(stdio, args...)
}

func ResolveFiles(stdio mainer.Stdio, files ...string) error {
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
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		stmts, err := parser.Parse(toks)
		if err != nil {
			// cannot resolve an AST that failed to parse
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		locals, err := resolver.Resolve(stmts)
		fmt.Fprint(stdio.Stdout, ast.PrintStmts(stmts))
		printLocals(stdio, locals)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func printLocals(stdio mainer.Stdio, locals map[ast.Expr]int) {
	lines := make([]string, 0, len(locals))
	for e, depth := range locals {
		lines = append(lines, fmt.Sprintf("line %d: %s -> depth %d", e.Line(), ast.DescribeLocal(e), depth))
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(stdio.Stdout, l)
	}
}
