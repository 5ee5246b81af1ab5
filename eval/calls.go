/*
File: eval/calls.go

Function call dispatch: user functions take priority over builtins with
the same name (the evaluator never merges them into one table — it just
checks the program's function table first).
*/
package eval

import (
	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
	"github.com/amaji/lumen/scope"
)

// callFunction evaluates args left-to-right, aborting early if a pending
// exception arises mid-evaluation, then dispatches to a user function or
// a builtin. It leaves the call's result (or nothing, for Void) in
// lastResult.
func (e *Evaluator) callFunction(name string, argExprs []parser.Expression, pos lexer.Position) {
	args := make([]objects.Value, 0, len(argExprs))
	for _, a := range argExprs {
		v := e.evalExpr(a)
		if e.shouldStop() {
			return
		}
		args = append(args, v)
	}

	if fn, ok := e.program.Functions[name]; ok {
		e.callUserFunction(fn, args, pos)
		return
	}
	switch name {
	case "print":
		e.callPrint(args)
	case "input":
		e.callInput(pos)
	default:
		e.fail(&UnknownFunctionCallError{baseError{pos}, name})
	}
}

// callUserFunction pushes a new call frame, binds parameters, executes
// the body, and enforces the return-type contract on every exit path
// except propagation of a pending exception.
func (e *Evaluator) callUserFunction(fn *parser.Function, args []objects.Value, pos lexer.Position) {
	if len(args) != len(fn.Params) {
		e.fail(&WrongNumberOfArgumentsError{baseError{pos}, fn.Name, len(fn.Params), len(args)})
		return
	}
	if len(e.callStack) >= e.recursionLimit {
		e.fail(&RecursionTooDeepError{baseError{pos}})
		return
	}

	frame := scope.NewCallFrame(fn.Name)
	for i, param := range fn.Params {
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
	savedReturn := e.returnValue
	e.returnValue = nil
	fn.Body.Accept(e)
	e.callStack = e.callStack[:len(e.callStack)-1]

	defer func() { e.returnValue = savedReturn }()

	if e.fatalErr != nil {
		return
	}
	if e.pendingException != nil {
		return
	}
	if e.brk || e.cont {
		kind := "break"
		if e.cont {
			kind = "continue"
		}
		e.brk, e.cont = false, false
		e.fail(&LoopControlOutsideLoopError{baseError{pos}, kind})
		return
	}

	hadReturn := e.ret
	returned := e.returnValue
	e.ret = false

	if fn.ReturnType == objects.VoidType {
		if returned != nil {
			e.fail(&ValueReturnInVoidFunctionError{baseError{pos}, fn.Name})
			return
		}
		e.lastResult = nil
		return
	}

	if !hadReturn {
		e.fail(&ReturnStatementMissingError{baseError{pos}, fn.Name})
		return
	}
	if returned == nil {
		e.fail(&InvalidReturnedValueTypeError{baseError{pos}, objects.VoidType, fn.ReturnType})
		return
	}
	if returned.Type() != fn.ReturnType {
		e.fail(&InvalidReturnedValueTypeError{baseError{pos}, returned.Type(), fn.ReturnType})
		return
	}
	e.lastResult = returned
}
