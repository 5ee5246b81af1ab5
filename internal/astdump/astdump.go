/*
Package astdump implements parser.Visitor to render a parsed program as an
indented tree, the way the teacher's main.PrintingVisitor rendered a
Go-Mix RootNode — adapted here to walk Programs, Functions and
ExceptionDefs instead of a single statement list, and to print binary
and logical operators symbolically instead of by token literal.
*/
package astdump

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/amaji/lumen/parser"
)

const indentSize = 2

// Dumper walks a Program and accumulates a formatted tree in buf.
type Dumper struct {
	indent int
	buf    bytes.Buffer
}

// Dump renders program as a tree: first its exception declarations, each
// followed by its attribute initializers, then its functions, each
// followed by its body's statement tree. Both groups are sorted by name.
func Dump(program *parser.Program) string {
	d := &Dumper{}
	d.dumpProgram(program)
	return d.buf.String()
}

func (d *Dumper) writeln(format string, args ...interface{}) {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteByte(' ')
	}
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

func (d *Dumper) dumpProgram(program *parser.Program) {
	names := make([]string, 0, len(program.Exceptions))
	for name := range program.Exceptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.dumpException(program.Exceptions[name])
	}

	names = names[:0]
	for name := range program.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.dumpFunction(program.Functions[name])
	}
}

func (d *Dumper) dumpException(def *parser.ExceptionDef) {
	d.writeln("Exception %s(%s)", def.Name, paramList(def.Params))
	d.indent += indentSize
	for _, attr := range def.Attributes {
		d.writeln("Attribute %s: %s", attr.Name, attr.Type)
		d.indent += indentSize
		attr.Init.Accept(d)
		d.indent -= indentSize
	}
	d.indent -= indentSize
}

func (d *Dumper) dumpFunction(fn *parser.Function) {
	d.writeln("Function %s %s(%s)", fn.ReturnType, fn.Name, paramList(fn.Params))
	d.indent += indentSize
	fn.Body.Accept(d)
	d.indent -= indentSize
}

func paramList(params []*parser.Parameter) string {
	var b bytes.Buffer
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", p.Type, p.Name)
	}
	return b.String()
}

type accepter interface{ Accept(parser.Visitor) }

func (d *Dumper) descend(label string, nodes ...accepter) {
	d.writeln("%s", label)
	d.indent += indentSize
	for _, n := range nodes {
		n.Accept(d)
	}
	d.indent -= indentSize
}

// ---- Statements ----

func (d *Dumper) VisitBlock(n *parser.Block) {
	d.writeln("Block")
	d.indent += indentSize
	for _, stmt := range n.Statements {
		stmt.Accept(d)
	}
	d.indent -= indentSize
}

func (d *Dumper) VisitIf(n *parser.If) {
	d.writeln("If")
	d.indent += indentSize
	d.descend("Cond", n.Cond)
	d.descend("Then", n.Then)
	for _, elif := range n.Elifs {
		d.writeln("Elif")
		d.indent += indentSize
		d.descend("Cond", elif.Cond)
		d.descend("Block", elif.Block)
		d.indent -= indentSize
	}
	if n.Else != nil {
		d.descend("Else", n.Else)
	}
	d.indent -= indentSize
}

func (d *Dumper) VisitWhile(n *parser.While) {
	d.writeln("While")
	d.indent += indentSize
	d.descend("Cond", n.Cond)
	d.descend("Body", n.Body)
	d.indent -= indentSize
}

func (d *Dumper) VisitBreak(n *parser.Break) { d.writeln("Break") }

func (d *Dumper) VisitContinue(n *parser.Continue) { d.writeln("Continue") }

func (d *Dumper) VisitAssignment(n *parser.Assignment) {
	d.writeln("Assignment %s =", n.Name)
	d.indent += indentSize
	n.Value.Accept(d)
	d.indent -= indentSize
}

func (d *Dumper) VisitCallStatement(n *parser.CallStatement) {
	d.writeln("CallStatement %s(%d args)", n.Name, len(n.Args))
	d.indent += indentSize
	for _, a := range n.Args {
		a.Accept(d)
	}
	d.indent -= indentSize
}

func (d *Dumper) VisitReturn(n *parser.Return) {
	if n.Value == nil {
		d.writeln("Return (void)")
		return
	}
	d.writeln("Return")
	d.indent += indentSize
	n.Value.Accept(d)
	d.indent -= indentSize
}

func (d *Dumper) VisitTryCatch(n *parser.TryCatch) {
	d.writeln("TryCatch")
	d.indent += indentSize
	d.descend("Try", n.Try)
	for _, c := range n.Catches {
		d.writeln("Catch %s %s", c.ExceptionName, c.Binding)
		d.indent += indentSize
		c.Body.Accept(d)
		d.indent -= indentSize
	}
	d.indent -= indentSize
}

func (d *Dumper) VisitThrow(n *parser.Throw) {
	d.writeln("Throw %s(%d args)", n.Name, len(n.Args))
	d.indent += indentSize
	for _, a := range n.Args {
		a.Accept(d)
	}
	d.indent -= indentSize
}

// ---- Expressions ----

func (d *Dumper) VisitIntLit(n *parser.IntLit) { d.writeln("IntLit %d", n.Value) }

func (d *Dumper) VisitFloatLit(n *parser.FloatLit) { d.writeln("FloatLit %v", n.Value) }

func (d *Dumper) VisitBoolLit(n *parser.BoolLit) { d.writeln("BoolLit %v", n.Value) }

func (d *Dumper) VisitStringLit(n *parser.StringLit) { d.writeln("StringLit %q", n.Value) }

func (d *Dumper) VisitVariable(n *parser.Variable) { d.writeln("Variable %s", n.Name) }

func (d *Dumper) VisitAttrAccess(n *parser.AttrAccess) {
	d.writeln("AttrAccess %s.%s", n.VarName, n.AttrName)
}

func (d *Dumper) VisitCallExpr(n *parser.CallExpr) {
	d.writeln("CallExpr %s(%d args)", n.Name, len(n.Args))
	d.indent += indentSize
	for _, a := range n.Args {
		a.Accept(d)
	}
	d.indent -= indentSize
}

var unaryOpSymbols = map[parser.UnaryOp]string{
	parser.UnaryNeg: "-",
	parser.UnaryNot: "not",
}

func (d *Dumper) VisitUnary(n *parser.Unary) {
	d.writeln("Unary %s", unaryOpSymbols[n.Op])
	d.indent += indentSize
	n.Operand.Accept(d)
	d.indent -= indentSize
}

var binaryOpSymbols = map[parser.BinaryOp]string{
	parser.OpAdd: "+", parser.OpSub: "-", parser.OpMul: "*", parser.OpDiv: "/", parser.OpMod: "%",
	parser.OpEq: "==", parser.OpNe: "!=", parser.OpLt: "<", parser.OpLe: "<=", parser.OpGt: ">", parser.OpGe: ">=",
}

func (d *Dumper) VisitBinary(n *parser.Binary) {
	d.writeln("Binary %s", binaryOpSymbols[n.Op])
	d.indent += indentSize
	n.Left.Accept(d)
	n.Right.Accept(d)
	d.indent -= indentSize
}

var logicalOpSymbols = map[parser.LogicalOp]string{
	parser.OpAnd: "and",
	parser.OpOr:  "or",
}

func (d *Dumper) VisitLogical(n *parser.Logical) {
	d.writeln("Logical %s", logicalOpSymbols[n.Op])
	d.indent += indentSize
	n.Left.Accept(d)
	n.Right.Accept(d)
	d.indent -= indentSize
}

func (d *Dumper) VisitCast(n *parser.Cast) {
	d.writeln("Cast to %s", n.Target)
	d.indent += indentSize
	n.Operand.Accept(d)
	d.indent -= indentSize
}
