/*
File: eval/builtins.go

The two builtin functions, print and input, per §6 of the source
specification. Their contracts are fixed here; everything else about
them (argument parsing, richer I/O) is explicitly out of scope.
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
)

// callPrint writes its arguments separated by a single space, then a
// newline, to the evaluator's configured writer. It produces no value.
func (e *Evaluator) callPrint(args []objects.Value) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(e.out, strings.Join(parts, " "))
	e.lastResult = nil
}

// callInput reads one line from the evaluator's configured reader,
// stripped of its trailing newline, and returns it as a String.
func (e *Evaluator) callInput(pos lexer.Position) {
	line, _ := e.in.ReadString('\n')
	e.lastResult = objects.NewString(strings.TrimRight(line, "\r\n"))
}
