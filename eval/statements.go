/*
File: eval/statements.go
*/
package eval

import (
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
)

// VisitBlock opens a fresh scope, runs its statements in order, and
// closes the scope on every exit path — normal fallthrough, a sentinel
// flag, or a pending exception.
func (e *Evaluator) VisitBlock(b *parser.Block) {
	if e.shouldStop() {
		return
	}
	frame := e.frame()
	frame.PushScope()
	defer frame.PopScope()

	for _, stmt := range b.Statements {
		stmt.Accept(e)
		if e.shouldStop() {
			return
		}
	}
}

func (e *Evaluator) VisitIf(n *parser.If) {
	if e.shouldStop() {
		return
	}
	cond := e.evalExpr(n.Cond)
	if e.shouldStop() {
		return
	}
	b, ok := cond.(objects.Bool)
	if !ok {
		e.fail(&WrongExpressionTypeError{baseError{n.Cond.Pos()}, cond.Type(), objects.BoolType})
		return
	}
	if b.Val {
		n.Then.Accept(e)
		return
	}
	for _, elif := range n.Elifs {
		c := e.evalExpr(elif.Cond)
		if e.shouldStop() {
			return
		}
		cb, ok := c.(objects.Bool)
		if !ok {
			e.fail(&WrongExpressionTypeError{baseError{elif.Cond.Pos()}, c.Type(), objects.BoolType})
			return
		}
		if cb.Val {
			elif.Block.Accept(e)
			return
		}
	}
	if n.Else != nil {
		n.Else.Accept(e)
	}
}

// VisitWhile consumes break/continue at its own boundary: break ends the
// loop, continue re-evaluates the condition.
func (e *Evaluator) VisitWhile(n *parser.While) {
	for {
		if e.shouldStop() {
			return
		}
		cond := e.evalExpr(n.Cond)
		if e.shouldStop() {
			return
		}
		b, ok := cond.(objects.Bool)
		if !ok {
			e.fail(&WrongExpressionTypeError{baseError{n.Cond.Pos()}, cond.Type(), objects.BoolType})
			return
		}
		if !b.Val {
			return
		}

		n.Body.Accept(e)
		if e.fatalErr != nil || e.ret || e.pendingException != nil {
			return
		}
		if e.brk {
			e.brk = false
			return
		}
		if e.cont {
			e.cont = false
		}
	}
}

func (e *Evaluator) VisitBreak(n *parser.Break) {
	if e.shouldStop() {
		return
	}
	e.brk = true
}

func (e *Evaluator) VisitContinue(n *parser.Continue) {
	if e.shouldStop() {
		return
	}
	e.cont = true
}

// VisitAssignment assigns in place if name is bound anywhere in the
// current frame (subject to a matching runtime type), else declares it
// fresh in the innermost scope.
func (e *Evaluator) VisitAssignment(n *parser.Assignment) {
	if e.shouldStop() {
		return
	}
	v := e.evalExpr(n.Value)
	if e.shouldStop() {
		return
	}
	frame := e.frame()
	if existing, ok := frame.Lookup(n.Name); ok {
		if existing.Type() != v.Type() {
			e.fail(&WrongExpressionTypeError{baseError{n.Pos()}, v.Type(), existing.Type()})
			return
		}
		frame.Assign(n.Name, v)
		return
	}
	frame.Declare(n.Name, v)
}

func (e *Evaluator) VisitCallStatement(n *parser.CallStatement) {
	if e.shouldStop() {
		return
	}
	e.callFunction(n.Name, n.Args, n.Pos())
	e.lastResult = nil
}

func (e *Evaluator) VisitReturn(n *parser.Return) {
	if e.shouldStop() {
		return
	}
	if n.Value == nil {
		e.returnValue = nil
		e.ret = true
		return
	}
	v := e.evalExpr(n.Value)
	if e.shouldStop() {
		return
	}
	e.returnValue = v
	e.ret = true
}
