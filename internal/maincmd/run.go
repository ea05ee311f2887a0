package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// runFile reads path, runs the full A→B→C→D→E→H pipeline over it and
// returns the process exit code per spec.md §6/§7: 0 on success, 65 if
// scanning, parsing or resolving reported an error (evaluation never
// starts), 70 if evaluation halted on a runtime error.
func (c *Cmd) runFile(ctx context.Context, stdio mainer.Stdio, path string) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.Failure
	}

	stmts, locals, code := compile(stdio, src)
	if code != exitSuccess {
		return code
	}

	it := interp.New(stdio.Stdout)
	if err := it.Run(ctx, stmts, locals); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return exitRuntimeError
	}
	return exitSuccess
}

// compile runs the scanner, parser and resolver over src, printing any
// errors encountered to stdio.Stderr. The returned exit code is
// exitSuccess only if every stage succeeded and evaluation may proceed.
func compile(stdio mainer.Stdio, src []byte) ([]ast.Stmt, map[ast.Expr]int, mainer.ExitCode) {
	toks, err := scanner.ScanAll(src)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return nil, nil, exitStaticError
	}

	stmts, err := parser.Parse(toks)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return nil, nil, exitStaticError
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return nil, nil, exitStaticError
	}

	return stmts, locals, exitSuccess
}
