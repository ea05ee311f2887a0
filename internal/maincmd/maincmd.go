// Package maincmd implements component I, the driver: it wires the
// scanner, parser, resolver and evaluator together behind a small CLI
// (component 6's external interface) and a handful of debug subcommands
// that expose the earlier pipeline stages standalone.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>...]
       %[1]s -h|--help
       %[1]s -v|--version

A tree-walking interpreter for the Lox programming language.

The <command> can be one of:
       run <path>                Scan, parse, resolve and execute the
                                 given source file to completion.
       repl                      Read, resolve and execute one line of
                                 source at a time from standard input.
       tokenize <path>...        Run only the scanner and print the
                                 resulting tokens.
       parse <path>...           Run the scanner and parser and print
                                 the resulting syntax tree.
       resolve <path>...         Run the scanner, parser and resolver
                                 and print the resolved syntax tree.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// exit codes per spec.md §6/§7: mainer.Success (0) on success, 65 on a
// scan/parse/resolve error, 70 on a runtime error.
const (
	exitSuccess      = mainer.Success
	exitStaticError  mainer.ExitCode = 65
	exitRuntimeError mainer.ExitCode = 70
)

// Cmd is the CLI entry point, populated from os.Args by mainer.Parser.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) { c.args = args }
func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	if cmdName == "run" || cmdName == "repl" {
		return nil
	}

	commands := buildDebugCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}
	if len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: at least one file must be provided", cmdName)
	}
	return nil
}

// Main parses args, dispatches to the named command and returns the
// process exit code.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false, // leaving this here for now in case some flags can use this
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return exitSuccess
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return exitSuccess
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	switch c.args[0] {
	case "run":
		if len(c.args[1:]) != 1 {
			fmt.Fprintln(stdio.Stderr, "run: exactly one file must be provided")
			return mainer.InvalidArgs
		}
		return c.runFile(ctx, stdio, c.args[1])
	case "repl":
		return c.repl(ctx, stdio)
	default:
		if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
			return mainer.Failure
		}
		return exitSuccess
	}
}

// buildDebugCmds collects the diagnostic subcommands (those whose method
// signature matches the shape below) so new ones can be added just by
// defining the method, mirroring the teacher's reflection-based dispatch.
func buildDebugCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
