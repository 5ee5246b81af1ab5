/*
File: parser/errors.go
*/
package parser

import (
	"fmt"

	"github.com/amaji/lumen/lexer"
)

// Error is the interface every parser failure satisfies.
type Error interface {
	error
	Pos() lexer.Position
}

type baseError struct {
	position lexer.Position
}

func (e baseError) Pos() lexer.Position { return e.position }

// UnexpectedTokenError fires when the parser expects a specific token
// kind and finds something else.
type UnexpectedTokenError struct {
	baseError
	Got      string
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.position, e.Expected, e.Got)
}

// ExpectedSimpleTypeError fires when a simple type keyword (int/float/
// bool/string) was required but not found.
type ExpectedSimpleTypeError struct {
	baseError
	After string
}

func (e *ExpectedSimpleTypeError) Error() string {
	return fmt.Sprintf("%s: expected a type after %s", e.position, e.After)
}

// ExpectedExpressionError fires when an operator or keyword requires a
// following expression that is not present.
type ExpectedExpressionError struct {
	baseError
	AfterOperator string
}

func (e *ExpectedExpressionError) Error() string {
	return fmt.Sprintf("%s: expected an expression after %s", e.position, e.AfterOperator)
}

// ExpectedAttributesError fires when an exception declaration's `{ ... }`
// attribute block is missing.
type ExpectedAttributesError struct {
	baseError
	InDecl string
}

func (e *ExpectedAttributesError) Error() string {
	return fmt.Sprintf("%s: expected an attribute block in exception %s", e.position, e.InDecl)
}

// ExpectedParameterError fires when a parameter list entry is malformed.
type ExpectedParameterError struct {
	baseError
}

func (e *ExpectedParameterError) Error() string {
	return fmt.Sprintf("%s: expected a parameter", e.position)
}

// ExpectedConditionError fires when `if`/`elif`/`while` is missing its
// parenthesized condition.
type ExpectedConditionError struct {
	baseError
	Keyword string
}

func (e *ExpectedConditionError) Error() string {
	return fmt.Sprintf("%s: expected a condition after %s", e.position, e.Keyword)
}

// ExpectedStatementBlockError fires when a `{ ... }` block was required.
type ExpectedStatementBlockError struct {
	baseError
	Where string
}

func (e *ExpectedStatementBlockError) Error() string {
	return fmt.Sprintf("%s: expected a statement block in %s", e.position, e.Where)
}

// UnknownTypeError fires when a type name doesn't resolve to any simple
// type or `void`.
type UnknownTypeError struct {
	baseError
	Got string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: unknown type %q", e.position, e.Got)
}

// ExpectedDeclarationError fires when the top level contains something
// other than a function or exception declaration.
type ExpectedDeclarationError struct {
	baseError
}

func (e *ExpectedDeclarationError) Error() string {
	return fmt.Sprintf("%s: expected a function or exception declaration", e.position)
}

// DuplicateDeclarationError fires when two functions (or two exceptions)
// share a name.
type DuplicateDeclarationError struct {
	baseError
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("%s: %q is already declared", e.position, e.Name)
}
