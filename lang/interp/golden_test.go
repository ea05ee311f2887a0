package interp_test

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/stretchr/testify/require"
)

var testUpdateGoldenTests = flag.Bool("test.update-golden-tests", false, "If set, replace expected interpreter golden output with actual output.")

// TestGolden runs every *.lox file under testdata/in end to end (scan,
// parse, resolve, evaluate) and diffs its printed output against the
// matching testdata/out/*.lox.want file, exercising components A-H
// together the way a real Lox program would.
func TestGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			require.NoError(t, err)

			toks, err := scanner.ScanAll(src)
			require.NoError(t, err)
			stmts, err := parser.Parse(toks)
			require.NoError(t, err)
			locals, err := resolver.Resolve(stmts)
			require.NoError(t, err)

			var buf bytes.Buffer
			it := interp.New(&buf)
			require.NoError(t, it.Run(context.Background(), stmts, locals))

			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateGoldenTests)
		})
	}
}
