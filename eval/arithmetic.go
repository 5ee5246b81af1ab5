/*
File: eval/arithmetic.go

Binary arithmetic, relational, and cast semantics. Float results are
rounded to the evaluator's configured decimal precision using
shopspring/decimal rather than hand-rolled strconv/math.Round juggling —
the rounding mode a plain float multiply-round-divide trick gets subtly
wrong at precision boundaries.
*/
package eval

import (
	"math"
	"strconv"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
	"github.com/amaji/lumen/parser"
	"github.com/shopspring/decimal"
)

const minInt64 = math.MinInt64

func (e *Evaluator) roundFloat(v float64) float64 {
	return decimal.NewFromFloat(v).Round(int32(e.numberPrecision)).InexactFloat64()
}

func (e *Evaluator) VisitBinary(n *parser.Binary) {
	if e.shouldStop() {
		return
	}
	left := e.evalExpr(n.Left)
	if e.shouldStop() {
		return
	}
	right := e.evalExpr(n.Right)
	if e.shouldStop() {
		return
	}

	switch n.Op {
	case parser.OpAdd:
		e.evalAdd(left, right, n.Pos())
	case parser.OpSub:
		e.evalNumeric(left, right, n.Pos(), subInt, subFloat)
	case parser.OpMul:
		e.evalNumeric(left, right, n.Pos(), mulInt, mulFloat)
	case parser.OpDiv:
		e.evalDiv(left, right, n.Pos())
	case parser.OpMod:
		e.evalMod(left, right, n.Pos())
	case parser.OpEq, parser.OpNe:
		e.evalEquality(n.Op, left, right, n.Pos())
	case parser.OpLt, parser.OpLe, parser.OpGt, parser.OpGe:
		e.evalOrdering(n.Op, left, right, n.Pos())
	}
}

// evalAdd implements `+` over {Int+Int, Float+Float, String+String}; any
// other same-type pair (Bool+Bool) is WrongExpressionType, and any
// cross-type pair is NotMatchingTypesInBinary.
func (e *Evaluator) evalAdd(left, right objects.Value, pos lexer.Position) {
	if left.Type() != right.Type() {
		e.fail(&NotMatchingTypesInBinaryError{baseError{pos}, left.Type(), right.Type()})
		return
	}
	switch l := left.(type) {
	case objects.Int:
		r := right.(objects.Int)
		sum := l.Val + r.Val
		if addOverflows(l.Val, r.Val, sum) {
			e.fail(&ValueOverflowError{baseError{pos}, l.String() + "+" + r.String()})
			return
		}
		e.lastResult = objects.NewInt(sum)
	case objects.Float:
		r := right.(objects.Float)
		e.lastResult = objects.NewFloat(e.roundFloat(l.Val + r.Val))
	case objects.String:
		r := right.(objects.String)
		e.lastResult = objects.NewString(l.Val + r.Val)
	default:
		e.fail(&WrongExpressionTypeError{baseError{pos}, left.Type(), objects.IntType})
	}
}

type intOp func(a, b int64) (int64, bool)
type floatOp func(a, b float64) float64

// evalNumeric implements the `-`, `*` family: {Int, Float} operands of
// the same type only; Bool and String are rejected.
func (e *Evaluator) evalNumeric(left, right objects.Value, pos lexer.Position, iop intOp, fop floatOp) {
	if left.Type() != right.Type() {
		e.fail(&NotMatchingTypesInBinaryError{baseError{pos}, left.Type(), right.Type()})
		return
	}
	switch l := left.(type) {
	case objects.Int:
		r := right.(objects.Int)
		result, ok := iop(l.Val, r.Val)
		if !ok {
			e.fail(&ValueOverflowError{baseError{pos}, l.String() + " op " + r.String()})
			return
		}
		e.lastResult = objects.NewInt(result)
	case objects.Float:
		r := right.(objects.Float)
		e.lastResult = objects.NewFloat(e.roundFloat(fop(l.Val, r.Val)))
	default:
		e.fail(&WrongExpressionTypeError{baseError{pos}, left.Type(), objects.IntType})
	}
}

func subInt(a, b int64) (int64, bool) {
	diff := a - b
	if subOverflows(a, b, diff) {
		return 0, false
	}
	return diff, true
}

func subFloat(a, b float64) float64 { return a - b }

func mulInt(a, b int64) (int64, bool) {
	product := a * b
	if mulOverflows(a, b, product) {
		return 0, false
	}
	return product, true
}

func mulFloat(a, b float64) float64 { return a * b }

func addOverflows(a, b, sum int64) bool {
	return (b > 0 && sum < a) || (b < 0 && sum > a)
}

func subOverflows(a, b, diff int64) bool {
	return (b < 0 && diff < a) || (b > 0 && diff > a)
}

func mulOverflows(a, b, product int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return true
	}
	return product/b != a
}

// evalDiv implements `/`: truncation-free floored division for Int (the
// source language floors toward negative infinity, matching the
// original Python implementation's `//`), plain division for Float.
func (e *Evaluator) evalDiv(left, right objects.Value, pos lexer.Position) {
	if left.Type() != right.Type() {
		e.fail(&NotMatchingTypesInBinaryError{baseError{pos}, left.Type(), right.Type()})
		return
	}
	switch l := left.(type) {
	case objects.Int:
		r := right.(objects.Int)
		if r.Val == 0 {
			e.fail(&DivisionByZeroError{baseError{pos}})
			return
		}
		if l.Val == minInt64 && r.Val == -1 {
			e.fail(&ValueOverflowError{baseError{pos}, l.String() + "/" + r.String()})
			return
		}
		e.lastResult = objects.NewInt(floorDivInt(l.Val, r.Val))
	case objects.Float:
		r := right.(objects.Float)
		if r.Val == 0 {
			e.fail(&DivisionByZeroError{baseError{pos}})
			return
		}
		e.lastResult = objects.NewFloat(e.roundFloat(l.Val / r.Val))
	default:
		e.fail(&WrongExpressionTypeError{baseError{pos}, left.Type(), objects.IntType})
	}
}

func (e *Evaluator) evalMod(left, right objects.Value, pos lexer.Position) {
	if left.Type() != right.Type() {
		e.fail(&NotMatchingTypesInBinaryError{baseError{pos}, left.Type(), right.Type()})
		return
	}
	switch l := left.(type) {
	case objects.Int:
		r := right.(objects.Int)
		if r.Val == 0 {
			e.fail(&DivisionByZeroError{baseError{pos}})
			return
		}
		e.lastResult = objects.NewInt(floorModInt(l.Val, r.Val))
	case objects.Float:
		r := right.(objects.Float)
		if r.Val == 0 {
			e.fail(&DivisionByZeroError{baseError{pos}})
			return
		}
		e.lastResult = objects.NewFloat(e.roundFloat(math.Mod(l.Val, r.Val)))
	default:
		e.fail(&WrongExpressionTypeError{baseError{pos}, left.Type(), objects.IntType})
	}
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

func floorModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// evalEquality implements `==`/`!=`: any two values of the same runtime
// type; cross-type is NotMatchingTypesInBinary.
func (e *Evaluator) evalEquality(op parser.BinaryOp, left, right objects.Value, pos lexer.Position) {
	if left.Type() != right.Type() {
		e.fail(&NotMatchingTypesInBinaryError{baseError{pos}, left.Type(), right.Type()})
		return
	}
	eq := objects.Equal(left, right)
	if op == parser.OpNe {
		eq = !eq
	}
	e.lastResult = objects.NewBool(eq)
}

// evalOrdering implements `<`/`<=`/`>`/`>=` over Int, Float, and String
// (lexicographic); Bool has no defined ordering and is rejected.
func (e *Evaluator) evalOrdering(op parser.BinaryOp, left, right objects.Value, pos lexer.Position) {
	if left.Type() != right.Type() {
		e.fail(&NotMatchingTypesInBinaryError{baseError{pos}, left.Type(), right.Type()})
		return
	}
	if left.Type() == objects.BoolType {
		e.fail(&WrongExpressionTypeError{baseError{pos}, objects.BoolType, objects.IntType})
		return
	}
	less := objects.Less(left, right)
	equal := objects.Equal(left, right)
	var result bool
	switch op {
	case parser.OpLt:
		result = less
	case parser.OpLe:
		result = less || equal
	case parser.OpGt:
		result = !less && !equal
	case parser.OpGe:
		result = !less
	}
	e.lastResult = objects.NewBool(result)
}

// castValue implements the `expr to T` table in full: every (S, T) pair
// over the four value-carrying types.
func (e *Evaluator) castValue(v objects.Value, target objects.Type, pos lexer.Position) objects.Value {
	switch val := v.(type) {
	case objects.Int:
		switch target {
		case objects.IntType:
			return val
		case objects.FloatType:
			return objects.NewFloat(float64(val.Val))
		case objects.BoolType:
			return objects.NewBool(val.Val != 0)
		case objects.StringType:
			return objects.NewString(val.String())
		}
	case objects.Float:
		switch target {
		case objects.IntType:
			return objects.NewInt(int64(val.Val))
		case objects.FloatType:
			return val
		case objects.BoolType:
			return objects.NewBool(val.Val != 0.0)
		case objects.StringType:
			return objects.NewString(val.String())
		}
	case objects.Bool:
		switch target {
		case objects.IntType:
			if val.Val {
				return objects.NewInt(1)
			}
			return objects.NewInt(0)
		case objects.FloatType:
			if val.Val {
				return objects.NewFloat(1.0)
			}
			return objects.NewFloat(0.0)
		case objects.BoolType:
			return val
		case objects.StringType:
			return objects.NewString(val.String())
		}
	case objects.String:
		switch target {
		case objects.IntType:
			n, err := strconv.ParseInt(val.Val, 10, 64)
			if err != nil {
				e.fail(&CastFailedError{baseError{pos}, val.Val, target})
				return nil
			}
			return objects.NewInt(n)
		case objects.FloatType:
			f, err := strconv.ParseFloat(val.Val, 64)
			if err != nil {
				e.fail(&CastFailedError{baseError{pos}, val.Val, target})
				return nil
			}
			return objects.NewFloat(f)
		case objects.BoolType:
			return objects.NewBool(len(val.Val) != 0)
		case objects.StringType:
			return val
		}
	}
	e.fail(&WrongExpressionTypeError{baseError{pos}, v.Type(), target})
	return nil
}
