/*
Package eval walks a parsed Lumen program: it maintains the call stack of
lexically scoped environments, the sentinel control-flow flags, the
pending-exception slot, and dispatches to user and builtin functions.

File: eval/evaluator.go
*/
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
	"github.com/amaji/lumen/scope"
	"github.com/google/uuid"
)

const (
	// DefaultRecursionLimit bounds call-stack depth absent an override.
	DefaultRecursionLimit = 30
	// DefaultNumberPrecision is the number of fractional decimal digits
	// float arithmetic results are rounded to absent an override.
	DefaultNumberPrecision = 15
)

// Evaluator walks a Program's AST. It owns exactly one call stack, one
// last-result slot, one set of control-flow sentinels, and one pending-
// exception slot — there is no concurrency inside a single Evaluator.
type Evaluator struct {
	program *parser.Program

	callStack []*scope.CallFrame

	lastResult       objects.Value
	returnValue      objects.Value
	brk              bool
	cont             bool
	ret              bool
	pendingException *RuntimeException
	fatalErr         RuntimeError

	recursionLimit  int
	numberPrecision int

	out io.Writer
	in  *bufio.Reader

	instanceID uuid.UUID
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithRecursionLimit overrides the default call-stack depth limit (30).
func WithRecursionLimit(n int) Option {
	return func(e *Evaluator) { e.recursionLimit = n }
}

// WithNumberPrecision overrides the default float rounding precision (15).
func WithNumberPrecision(n int) Option {
	return func(e *Evaluator) { e.numberPrecision = n }
}

// NewEvaluator builds an Evaluator wired to os.Stdout/os.Stdin, the
// defaults for every program that doesn't override them via Option.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		recursionLimit:  DefaultRecursionLimit,
		numberPrecision: DefaultNumberPrecision,
		out:             os.Stdout,
		in:              bufio.NewReader(os.Stdin),
		instanceID:      uuid.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetWriter redirects print's output, primarily for tests.
func (e *Evaluator) SetWriter(w io.Writer) { e.out = w }

// SetReader redirects input's source, primarily for tests.
func (e *Evaluator) SetReader(r io.Reader) { e.in = bufio.NewReader(r) }

// InstanceID identifies this evaluator run; surfaced only in the
// --display-ast debug banner, never in language-observable behavior.
func (e *Evaluator) InstanceID() uuid.UUID { return e.instanceID }

// Execute validates that main exists, then evaluates a zero-argument call
// to it. It returns a non-nil error for any fatal interpreter error or
// for a user/BasicException exception that escapes main uncaught.
func (e *Evaluator) Execute(program *parser.Program) error {
	e.program = program

	mainFn, ok := program.Functions["main"]
	if !ok {
		return &MissingMainError{baseError{lexer.Position{Line: 1, Column: 1}}}
	}
	if len(mainFn.Params) != 0 {
		return &WrongNumberOfArgumentsError{baseError{mainFn.Pos()}, "main", 0, len(mainFn.Params)}
	}

	e.callUserFunction(mainFn, nil, mainFn.Pos())

	if e.fatalErr != nil {
		return e.fatalErr
	}
	if e.pendingException != nil {
		exc := e.pendingException
		return &EscapedExceptionError{baseError{exc.Pos}, exc.Name, exc.message()}
	}
	return nil
}

func (e *Evaluator) frame() *scope.CallFrame {
	return e.callStack[len(e.callStack)-1]
}

// shouldStop reports whether any sentinel (fatal error, break, continue,
// return, or pending exception) is set, per the short-circuit rule every
// Visit method applies at its top.
func (e *Evaluator) shouldStop() bool {
	return e.fatalErr != nil || e.brk || e.cont || e.ret || e.pendingException != nil
}

// fail records the first fatal error; later calls are no-ops so the
// earliest failure — the one closest to its root cause — wins.
func (e *Evaluator) fail(err RuntimeError) {
	if e.fatalErr == nil {
		e.fatalErr = err
	}
}

// consume reads and clears the last-result slot, matching the spec's
// "consumed on read" contract for the single-value expression channel.
func (e *Evaluator) consume() objects.Value {
	v := e.lastResult
	e.lastResult = nil
	return v
}

// evalExpr evaluates expr and consumes its result, failing with
// VoidUsedAsValueError if the producing expression left no value (a call
// to a Void function).
func (e *Evaluator) evalExpr(expr parser.Expression) objects.Value {
	expr.Accept(e)
	if e.shouldStop() {
		return nil
	}
	v := e.consume()
	if v == nil {
		e.fail(&VoidUsedAsValueError{baseError{expr.Pos()}})
		return nil
	}
	return v
}
