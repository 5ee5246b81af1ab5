/*
File: eval/exceptions.go

User-defined and BasicException exceptions live entirely as data in the
evaluator's pending-exception slot — they are never host-language errors,
per the design notes in the source spec: fatal interpreter failures use
Go's normal error channel (errors.go), while thrown Lumen exceptions are a
sentinel value threaded through Visit calls and consumed by try/catch.
*/
package eval

import (
	"sort"
	"strings"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
	"github.com/amaji/lumen/scope"
)

// RuntimeException is a thrown Lumen exception in flight: its declared
// name and the attribute values bound at throw time, including the
// implicit "position" attribute every exception carries.
type RuntimeException struct {
	Name  string
	Attrs map[string]objects.Value
	Pos   lexer.Position
}

// message renders the attribute used to describe an escaped exception:
// the "message" attribute if the exception declares one (BasicException
// always does), else a deterministic rendering of all non-position
// attributes so the diagnostic is never empty.
func (exc *RuntimeException) message() string {
	if m, ok := exc.Attrs["message"]; ok {
		if s, ok := m.(objects.String); ok {
			return s.Val
		}
		return m.String()
	}
	names := make([]string, 0, len(exc.Attrs))
	for name := range exc.Attrs {
		if name == "position" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+exc.Attrs[name].String())
	}
	return strings.Join(parts, ", ")
}

// VisitThrow evaluates a throw site: arguments left-to-right, then either
// constructs a BasicException or binds a user exception's parameters and
// evaluates its attribute initializers in a transient scope that sees
// only those parameters.
func (e *Evaluator) VisitThrow(n *parser.Throw) {
	if e.shouldStop() {
		return
	}
	args := make([]objects.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v := e.evalExpr(a)
		if e.shouldStop() {
			return
		}
		args = append(args, v)
	}

	if def, ok := e.program.Exceptions[n.Name]; ok {
		e.throwUserException(def, args, n.Pos())
		return
	}
	if n.Name == "BasicException" {
		e.throwBasicException(args, n.Pos())
		return
	}
	e.fail(&UndefinedExceptionError{baseError{n.Pos()}, n.Name})
}

func (e *Evaluator) throwBasicException(args []objects.Value, pos lexer.Position) {
	if len(args) != 1 {
		e.fail(&WrongNumberOfArgumentsError{baseError{pos}, "BasicException", 1, len(args)})
		return
	}
	msg, ok := args[0].(objects.String)
	if !ok {
		e.fail(&WrongExpressionTypeError{baseError{pos}, args[0].Type(), objects.StringType})
		return
	}
	e.pendingException = &RuntimeException{
		Name: "BasicException",
		Attrs: map[string]objects.Value{
			"position": objects.NewString(pos.String()),
			"message":  msg,
		},
		Pos: pos,
	}
}

func (e *Evaluator) throwUserException(def *parser.ExceptionDef, args []objects.Value, pos lexer.Position) {
	if len(args) != len(def.Params) {
		e.fail(&WrongNumberOfArgumentsError{baseError{pos}, def.Name, len(def.Params), len(args)})
		return
	}
	frame := scope.NewCallFrame(def.Name)
	for i, param := range def.Params {
		if args[i].Type() != param.Type {
			e.fail(&WrongExpressionTypeError{baseError{pos}, args[i].Type(), param.Type})
			return
		}
		if !frame.Declare(param.Name, args[i]) {
			e.fail(&VariableAlreadyDeclaredError{baseError{param.Pos()}, param.Name})
			return
		}
	}

	e.callStack = append(e.callStack, frame)
	attrs := make(map[string]objects.Value, len(def.Attributes)+1)
	for _, attr := range def.Attributes {
		v := e.evalExpr(attr.Init)
		if e.shouldStop() {
			e.callStack = e.callStack[:len(e.callStack)-1]
			return
		}
		if v.Type() != attr.Type {
			e.callStack = e.callStack[:len(e.callStack)-1]
			e.fail(&WrongExpressionTypeError{baseError{attr.Pos()}, v.Type(), attr.Type})
			return
		}
		if _, exists := attrs[attr.Name]; exists {
			e.callStack = e.callStack[:len(e.callStack)-1]
			e.fail(&AttributeAlreadyDeclaredError{baseError{attr.Pos()}, attr.Name, def.Name})
			return
		}
		attrs[attr.Name] = v
	}
	e.callStack = e.callStack[:len(e.callStack)-1]

	attrs["position"] = objects.NewString(pos.String())
	e.pendingException = &RuntimeException{Name: def.Name, Attrs: attrs, Pos: pos}
}

// VisitTryCatch runs the try block; if it leaves a pending exception, the
// catches are tried in declaration order. A catch matches its own
// exception name or the universal "BasicException" catch-all.
func (e *Evaluator) VisitTryCatch(n *parser.TryCatch) {
	if e.shouldStop() {
		return
	}
	n.Try.Accept(e)
	if e.fatalErr != nil || e.pendingException == nil {
		return
	}

	exc := e.pendingException
	for _, c := range n.Catches {
		if c.ExceptionName != exc.Name && c.ExceptionName != "BasicException" {
			continue
		}
		e.pendingException = nil
		frame := e.frame()
		frame.PushScope()
		frame.BindExceptionAttrs(c.Binding, exc.Attrs)
		c.Body.Accept(e)
		frame.PopScope()
		return
	}
}
