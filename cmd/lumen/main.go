/*
Command lumen runs a Lumen source file: lex, parse, evaluate, and report
the first fatal error or uncaught exception. It replaces the teacher's
REPL-first, server-mode main() — this language has no interactive mode
and no network mode (see SPEC_FULL.md's non-goals) — but keeps its
color-coded diagnostic style and its --help/--version surface, now
built on cobra rather than hand-rolled os.Args switching.
*/
package main

import (
	"fmt"
	"os"

	"github.com/amaji/lumen/eval"
	"github.com/amaji/lumen/internal/astdump"
	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

var (
	displayAST      bool
	recursionLimit  int
	numberPrecision int
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lumen <source-file>",
		Short:   "Run a Lumen source file",
		Version: "v1.0.0",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&displayAST, "display-ast", false, "print the parsed AST and exit without running the program")
	cmd.Flags().IntVar(&recursionLimit, "recursion-limit", eval.DefaultRecursionLimit, "maximum call-stack depth")
	cmd.Flags().IntVar(&numberPrecision, "precision", eval.DefaultNumberPrecision, "fractional decimal digits float results are rounded to")
	return cmd
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		return err
	}

	p := parser.NewParser(lexer.NewLexer(string(source)))
	program, err := p.GetProgram()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		return err
	}

	evaluator := eval.NewEvaluator(
		eval.WithRecursionLimit(recursionLimit),
		eval.WithNumberPrecision(numberPrecision),
	)

	if displayAST {
		cyanColor.Fprintf(os.Stdout, "AST (instance %s):\n", evaluator.InstanceID())
		fmt.Fprint(os.Stdout, astdump.Dump(program))
		return nil
	}

	if err := evaluator.Execute(program); err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		return err
	}
	return nil
}
