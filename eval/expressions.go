/*
File: eval/expressions.go
*/
package eval

import (
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
)

func (e *Evaluator) VisitIntLit(n *parser.IntLit) {
	if e.shouldStop() {
		return
	}
	e.lastResult = objects.NewInt(n.Value)
}

func (e *Evaluator) VisitFloatLit(n *parser.FloatLit) {
	if e.shouldStop() {
		return
	}
	e.lastResult = objects.NewFloat(n.Value)
}

func (e *Evaluator) VisitBoolLit(n *parser.BoolLit) {
	if e.shouldStop() {
		return
	}
	e.lastResult = objects.NewBool(n.Value)
}

func (e *Evaluator) VisitStringLit(n *parser.StringLit) {
	if e.shouldStop() {
		return
	}
	e.lastResult = objects.NewString(n.Value)
}

func (e *Evaluator) VisitVariable(n *parser.Variable) {
	if e.shouldStop() {
		return
	}
	v, ok := e.frame().Lookup(n.Name)
	if !ok {
		e.fail(&UndefinedVariableError{baseError{n.Pos()}, n.Name})
		return
	}
	e.lastResult = v
}

// VisitAttrAccess resolves `var.attr`, valid only when var is bound as a
// caught exception's variable in the current frame.
func (e *Evaluator) VisitAttrAccess(n *parser.AttrAccess) {
	if e.shouldStop() {
		return
	}
	frame := e.frame()
	if !frame.HasBinding(n.VarName) {
		e.fail(&UndefinedVariableError{baseError{n.Pos()}, n.VarName})
		return
	}
	v, ok := frame.Attribute(n.VarName, n.AttrName)
	if !ok {
		e.fail(&UndefinedAttributeError{baseError{n.Pos()}, n.AttrName, n.VarName})
		return
	}
	e.lastResult = v
}

func (e *Evaluator) VisitCallExpr(n *parser.CallExpr) {
	if e.shouldStop() {
		return
	}
	e.callFunction(n.Name, n.Args, n.Pos())
}

// VisitUnary implements `-` over Int/Float and `not`/`!` over Bool.
func (e *Evaluator) VisitUnary(n *parser.Unary) {
	if e.shouldStop() {
		return
	}
	v := e.evalExpr(n.Operand)
	if e.shouldStop() {
		return
	}
	switch n.Op {
	case parser.UnaryNeg:
		switch val := v.(type) {
		case objects.Int:
			if val.Val == minInt64 {
				e.fail(&ValueOverflowError{baseError{n.Pos()}, "-(" + val.String() + ")"})
				return
			}
			e.lastResult = objects.NewInt(-val.Val)
		case objects.Float:
			e.lastResult = objects.NewFloat(-val.Val)
		default:
			e.fail(&WrongExpressionTypeError{baseError{n.Pos()}, v.Type(), objects.IntType})
		}
	case parser.UnaryNot:
		b, ok := v.(objects.Bool)
		if !ok {
			e.fail(&WrongExpressionTypeError{baseError{n.Pos()}, v.Type(), objects.BoolType})
			return
		}
		e.lastResult = objects.NewBool(!b.Val)
	}
}

// VisitLogical short-circuits: `or` skips its right operand once the
// left is true, `and` skips it once the left is false.
func (e *Evaluator) VisitLogical(n *parser.Logical) {
	if e.shouldStop() {
		return
	}
	left := e.evalExpr(n.Left)
	if e.shouldStop() {
		return
	}
	lb, ok := left.(objects.Bool)
	if !ok {
		e.fail(&WrongExpressionTypeError{baseError{n.Left.Pos()}, left.Type(), objects.BoolType})
		return
	}
	if n.Op == parser.OpOr && lb.Val {
		e.lastResult = objects.NewBool(true)
		return
	}
	if n.Op == parser.OpAnd && !lb.Val {
		e.lastResult = objects.NewBool(false)
		return
	}

	right := e.evalExpr(n.Right)
	if e.shouldStop() {
		return
	}
	rb, ok := right.(objects.Bool)
	if !ok {
		e.fail(&WrongExpressionTypeError{baseError{n.Right.Pos()}, right.Type(), objects.BoolType})
		return
	}
	e.lastResult = objects.NewBool(rb.Val)
}

func (e *Evaluator) VisitCast(n *parser.Cast) {
	if e.shouldStop() {
		return
	}
	v := e.evalExpr(n.Operand)
	if e.shouldStop() {
		return
	}
	e.lastResult = e.castValue(v, n.Target, n.Pos())
}
