/*
Package parser turns a Lumen token stream into an abstract syntax tree and
exposes a Visitor interface for walking it — the evaluator is the sole
production Visitor, but keeping the indirection lets tooling (the
--display-ast dumper) walk the same tree without touching eval.

File: parser/ast.go
*/
package parser

import (
	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
)

// Node is anything carrying a source position.
type Node interface {
	Pos() lexer.Position
}

type basePos struct{ Position lexer.Position }

func (b basePos) Pos() lexer.Position { return b.Position }

// Statement is any node appearing in a Block's statement list.
type Statement interface {
	Node
	Accept(v Visitor)
	statementNode()
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	Accept(v Visitor)
	expressionNode()
}

// Visitor is implemented by anything that walks the AST: the evaluator in
// production, the AST dumper for --display-ast. Visit methods return
// nothing; the evaluator communicates results through its own last-result
// slot, matching the language's single-value-channel evaluation model.
type Visitor interface {
	VisitBlock(*Block)
	VisitIf(*If)
	VisitWhile(*While)
	VisitBreak(*Break)
	VisitContinue(*Continue)
	VisitAssignment(*Assignment)
	VisitCallStatement(*CallStatement)
	VisitReturn(*Return)
	VisitTryCatch(*TryCatch)
	VisitThrow(*Throw)

	VisitIntLit(*IntLit)
	VisitFloatLit(*FloatLit)
	VisitBoolLit(*BoolLit)
	VisitStringLit(*StringLit)
	VisitVariable(*Variable)
	VisitAttrAccess(*AttrAccess)
	VisitCallExpr(*CallExpr)
	VisitUnary(*Unary)
	VisitBinary(*Binary)
	VisitLogical(*Logical)
	VisitCast(*Cast)
}

// Program is the parse result: functions and exception definitions, each
// keyed by name within its own namespace.
type Program struct {
	Functions  map[string]*Function
	Exceptions map[string]*ExceptionDef
}

// Parameter is a typed formal argument; Type is never Void.
type Parameter struct {
	basePos
	Name string
	Type objects.Type
}

// Function is a top-level function declaration.
type Function struct {
	basePos
	Name       string
	Params     []*Parameter
	ReturnType objects.Type
	Body       *Block
}

// Attribute is one `name: type = initializer;` entry in an exception's
// attribute block, evaluated at throw time.
type Attribute struct {
	basePos
	Name string
	Type objects.Type
	Init Expression
}

// ExceptionDef is a top-level `exception` declaration.
type ExceptionDef struct {
	basePos
	Name       string
	Params     []*Parameter
	Attributes []*Attribute
}

// ---- Statements ----

// Block is a brace-delimited statement sequence; it introduces a fresh
// scope on entry and closes it on every exit path.
type Block struct {
	basePos
	Statements []Statement
}

func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }
func (*Block) statementNode()     {}

// ElifBranch is one `elif (cond) { ... }` clause; If holds these in
// declaration order.
type ElifBranch struct {
	basePos
	Cond  Expression
	Block *Block
}

// If is `if (cond) block {elif (cond) block} [else block]`.
type If struct {
	basePos
	Cond  Expression
	Then  *Block
	Elifs []*ElifBranch
	Else  *Block // nil if absent
}

func (n *If) Accept(v Visitor) { v.VisitIf(n) }
func (*If) statementNode()     {}

// While is `while (cond) body`.
type While struct {
	basePos
	Cond Expression
	Body *Block
}

func (n *While) Accept(v Visitor) { v.VisitWhile(n) }
func (*While) statementNode()     {}

// Break is `break;`.
type Break struct{ basePos }

func (n *Break) Accept(v Visitor) { v.VisitBreak(n) }
func (*Break) statementNode()     {}

// Continue is `continue;`.
type Continue struct{ basePos }

func (n *Continue) Accept(v Visitor) { v.VisitContinue(n) }
func (*Continue) statementNode()     {}

// Assignment is `name = expr;`. It declares name fresh in the innermost
// scope if unbound in the current frame, or updates the existing binding
// in place if bound (subject to the evaluator's type check).
type Assignment struct {
	basePos
	Name  string
	Value Expression
}

func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }
func (*Assignment) statementNode()     {}

// CallStatement is `name(args);` used as a bare statement (its result, if
// any, is discarded rather than consumed).
type CallStatement struct {
	basePos
	Name string
	Args []Expression
}

func (n *CallStatement) Accept(v Visitor) { v.VisitCallStatement(n) }
func (*CallStatement) statementNode()     {}

// Return is `return [expr];`.
type Return struct {
	basePos
	Value Expression // nil if bare `return;`
}

func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }
func (*Return) statementNode()     {}

// Catch is one `catch (ExceptionName binding) { ... }` clause.
type Catch struct {
	basePos
	ExceptionName string
	Binding       string
	Body          *Block
}

// TryCatch is `try block {catch}`; Catches may be empty.
type TryCatch struct {
	basePos
	Try     *Block
	Catches []*Catch
}

func (n *TryCatch) Accept(v Visitor) { v.VisitTryCatch(n) }
func (*TryCatch) statementNode()     {}

// Throw is `throw Name(args);`.
type Throw struct {
	basePos
	Name string
	Args []Expression
}

func (n *Throw) Accept(v Visitor) { v.VisitThrow(n) }
func (*Throw) statementNode()     {}

// ---- Expressions ----

type IntLit struct {
	basePos
	Value int64
}

func (n *IntLit) Accept(v Visitor) { v.VisitIntLit(n) }
func (*IntLit) expressionNode()    {}

type FloatLit struct {
	basePos
	Value float64
}

func (n *FloatLit) Accept(v Visitor) { v.VisitFloatLit(n) }
func (*FloatLit) expressionNode()    {}

type BoolLit struct {
	basePos
	Value bool
}

func (n *BoolLit) Accept(v Visitor) { v.VisitBoolLit(n) }
func (*BoolLit) expressionNode()    {}

type StringLit struct {
	basePos
	Value string
}

func (n *StringLit) Accept(v Visitor) { v.VisitStringLit(n) }
func (*StringLit) expressionNode()    {}

// Variable is a bare identifier used as an expression.
type Variable struct {
	basePos
	Name string
}

func (n *Variable) Accept(v Visitor) { v.VisitVariable(n) }
func (*Variable) expressionNode()    {}

// AttrAccess is `varName.attrName`, valid only when varName is bound to a
// caught exception.
type AttrAccess struct {
	basePos
	VarName  string
	AttrName string
}

func (n *AttrAccess) Accept(v Visitor) { v.VisitAttrAccess(n) }
func (*AttrAccess) expressionNode()    {}

// CallExpr is `name(args)` used as an expression (its value is consumed).
type CallExpr struct {
	basePos
	Name string
	Args []Expression
}

func (n *CallExpr) Accept(v Visitor) { v.VisitCallExpr(n) }
func (*CallExpr) expressionNode()    {}

// UnaryOp enumerates the two prefix unary operators.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota // -x, {Int, Float}
	UnaryNot                // not x / !x, {Bool}
)

type Unary struct {
	basePos
	Op      UnaryOp
	Operand Expression
}

func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }
func (*Unary) expressionNode()    {}

// BinaryOp enumerates arithmetic and relational binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

type Binary struct {
	basePos
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }
func (*Binary) expressionNode()    {}

// LogicalOp enumerates the two short-circuiting boolean connectives.
type LogicalOp int

const (
	OpAnd LogicalOp = iota
	OpOr
)

type Logical struct {
	basePos
	Op    LogicalOp
	Left  Expression
	Right Expression
}

func (n *Logical) Accept(v Visitor) { v.VisitLogical(n) }
func (*Logical) expressionNode()    {}

// Cast is `expr to T`.
type Cast struct {
	basePos
	Operand Expression
	Target  objects.Type
}

func (n *Cast) Accept(v Visitor) { v.VisitCast(n) }
func (*Cast) expressionNode()    {}
