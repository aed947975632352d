package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	lerr "github.com/lumina-lang/lumina/internal/errors"
	"github.com/lumina-lang/lumina/internal/interp"
	"github.com/lumina-lang/lumina/internal/lexer"
	"github.com/lumina-lang/lumina/internal/value"
)

var (
	dumpTokens bool
	trace      bool
)

func runScript(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		exitWithError("usage: lumina <file>")
		return fmt.Errorf("missing file")
	}
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		exitWithError("cannot read %s: %v", filename, err)
		return err
	}
	source := string(content)

	if dumpTokens {
		dumpHeadTokens(source)
	}
	if trace {
		fmt.Fprintf(os.Stderr, "[trace] executing %s\n", filename)
	}

	ctx := interp.NewContext(interp.Options{
		Output: os.Stdout,
		RNG:    rand.New(rand.NewSource(rand.Int63())),
	})

	result, err := interp.Run(ctx, source)
	if err != nil {
		if rerr, ok := err.(*lerr.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, rerr.WithSource(source, filename).Format(true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}

	if dumpTokens && len(ctx.FFIRegistry().Handles()) > 0 {
		if doc, err := ctx.FFIRegistry().DumpJSON(); err == nil {
			fmt.Println("imports:", doc)
		}
	}

	if code, ok := exitCode(result); ok {
		os.Exit(code)
	}
	return nil
}

// exitCode maps a program's final last_return to a process exit code, per
// the numeric-last_return exit convention: a non-Number result leaves the
// process exit code at its default success value.
func exitCode(result value.Value) (code int, ok bool) {
	if result.Kind() != value.Number {
		return 0, false
	}
	return int(math.Trunc(result.AsNumber())), true
}

// dumpHeadTokens prints the whitespace-split head tokens of each
// non-comment source line, for --dump-tokens debugging.
func dumpHeadTokens(source string) {
	for i, line := range strings.Split(source, "\n") {
		if lexer.IsComment(line) {
			continue
		}
		fmt.Printf("%4d | %v\n", i+1, lexer.SplitHead(line))
	}
}
