/*
File: eval/errors.go

Fatal interpreter errors. These are never catchable by a Lumen try/catch —
only user-defined and BasicException throws flow through the pending-
exception slot (see exceptions.go). A fatal error halts evaluation the
moment it is recorded on the evaluator.
*/
package eval

import (
	"fmt"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
)

// RuntimeError is the interface every fatal interpreter failure satisfies.
type RuntimeError interface {
	error
	Pos() lexer.Position
}

type baseError struct {
	position lexer.Position
}

func (e baseError) Pos() lexer.Position { return e.position }

// MissingMainError fires when a program has no function named main.
type MissingMainError struct{ baseError }

func (e *MissingMainError) Error() string {
	return "no function named 'main' is declared"
}

// UndefinedVariableError fires on lookup of a name bound in no scope of
// the current frame.
type UndefinedVariableError struct {
	baseError
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("%s: undefined variable %q", e.position, e.Name)
}

// VariableAlreadyDeclaredError fires when a parameter name collides with
// another parameter of the same function or exception.
type VariableAlreadyDeclaredError struct {
	baseError
	Name string
}

func (e *VariableAlreadyDeclaredError) Error() string {
	return fmt.Sprintf("%s: %q is already declared in this scope", e.position, e.Name)
}

// UnknownFunctionCallError fires when a call's name resolves to neither a
// user function nor a builtin.
type UnknownFunctionCallError struct {
	baseError
	Name string
}

func (e *UnknownFunctionCallError) Error() string {
	return fmt.Sprintf("%s: unknown function %q", e.position, e.Name)
}

// WrongExpressionTypeError fires on a runtime type mismatch against an
// operator's or assignment's required type.
type WrongExpressionTypeError struct {
	baseError
	Got      objects.Type
	Expected objects.Type
}

func (e *WrongExpressionTypeError) Error() string {
	return fmt.Sprintf("%s: wrong type %s, expected %s", e.position, e.Got, e.Expected)
}

// DivisionByZeroError fires on `/` or `%` with a zero right operand.
type DivisionByZeroError struct{ baseError }

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.position)
}

// NotMatchingTypesInBinaryError fires when a binary operator's two
// operands have different runtime types.
type NotMatchingTypesInBinaryError struct {
	baseError
	Left  objects.Type
	Right objects.Type
}

func (e *NotMatchingTypesInBinaryError) Error() string {
	return fmt.Sprintf("%s: mismatched operand types %s and %s", e.position, e.Left, e.Right)
}

// InvalidReturnedValueTypeError fires when a function's actual return
// value type does not match its declared return type.
type InvalidReturnedValueTypeError struct {
	baseError
	Got      objects.Type
	Expected objects.Type
}

func (e *InvalidReturnedValueTypeError) Error() string {
	return fmt.Sprintf("%s: returned %s, expected %s", e.position, e.Got, e.Expected)
}

// RecursionTooDeepError fires when the call stack reaches the configured
// recursion limit.
type RecursionTooDeepError struct{ baseError }

func (e *RecursionTooDeepError) Error() string {
	return fmt.Sprintf("%s: recursion too deep", e.position)
}

// UndefinedExceptionError fires on `throw Name(...)` where Name matches
// neither a user exception declaration nor BasicException.
type UndefinedExceptionError struct {
	baseError
	Name string
}

func (e *UndefinedExceptionError) Error() string {
	return fmt.Sprintf("%s: undefined exception %q", e.position, e.Name)
}

// LoopControlOutsideLoopError fires when break/continue escapes a
// function body without an enclosing while loop consuming it.
type LoopControlOutsideLoopError struct {
	baseError
	Kind string
}

func (e *LoopControlOutsideLoopError) Error() string {
	return fmt.Sprintf("%s: %s outside of a loop", e.position, e.Kind)
}

// UndefinedAttributeError fires on `e.attr` where attr is not one of the
// bound exception's attributes.
type UndefinedAttributeError struct {
	baseError
	Attr   string
	Holder string
}

func (e *UndefinedAttributeError) Error() string {
	return fmt.Sprintf("%s: %s has no attribute %q", e.position, e.Holder, e.Attr)
}

// VoidUsedAsValueError fires when an expression consumer needs a value
// but the producing expression evaluated a Void function call.
type VoidUsedAsValueError struct{ baseError }

func (e *VoidUsedAsValueError) Error() string {
	return fmt.Sprintf("%s: void function result used as a value", e.position)
}

// WrongNumberOfArgumentsError fires on a call or throw whose argument
// count does not match the declared parameter count.
type WrongNumberOfArgumentsError struct {
	baseError
	Name     string
	Expected int
	Got      int
}

func (e *WrongNumberOfArgumentsError) Error() string {
	return fmt.Sprintf("%s: %s expects %d argument(s), got %d", e.position, e.Name, e.Expected, e.Got)
}

// AttributeAlreadyDeclaredError fires when two attributes of the same
// exception share a name.
type AttributeAlreadyDeclaredError struct {
	baseError
	Attr   string
	Holder string
}

func (e *AttributeAlreadyDeclaredError) Error() string {
	return fmt.Sprintf("%s: attribute %q already declared on %s", e.position, e.Attr, e.Holder)
}

// ValueReturnInVoidFunctionError fires when a void function executes
// `return expr;` instead of a bare `return;`.
type ValueReturnInVoidFunctionError struct {
	baseError
	Name string
}

func (e *ValueReturnInVoidFunctionError) Error() string {
	return fmt.Sprintf("%s: void function %q returned a value", e.position, e.Name)
}

// ReturnStatementMissingError fires when a non-void function completes
// without executing any return statement.
type ReturnStatementMissingError struct {
	baseError
	Name string
}

func (e *ReturnStatementMissingError) Error() string {
	return fmt.Sprintf("%s: function %q must return a value", e.position, e.Name)
}

// ValueOverflowError fires when an Int `+`, `-`, `*` or `/` result would
// fall outside the signed-64-bit range [MinInt64, MaxInt64], or when the
// minimum Int is negated. Results inside that range, including its two
// end points, are returned as is.
type ValueOverflowError struct {
	baseError
	Value string
}

func (e *ValueOverflowError) Error() string {
	return fmt.Sprintf("%s: value overflow computing %s", e.position, e.Value)
}

// CastFailedError fires when a string cannot be parsed as the target
// numeric type of a `to int`/`to float` cast. Not named in the source
// language's error taxonomy, which never enumerates string-parse failure
// independently — added here since `to` must fail somehow on bad input.
type CastFailedError struct {
	baseError
	Value  string
	Target objects.Type
}

func (e *CastFailedError) Error() string {
	return fmt.Sprintf("%s: cannot cast %q to %s", e.position, e.Value, e.Target)
}

// EscapedExceptionError wraps a user or BasicException exception that
// unwound all the way out of main uncaught.
type EscapedExceptionError struct {
	baseError
	Name    string
	Message string
}

func (e *EscapedExceptionError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Name, e.position, e.Message)
}
