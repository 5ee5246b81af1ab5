package parser

import (
	"testing"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSrc(t *testing.T, src string) *Program {
	t.Helper()
	p := NewParser(lexer.NewLexer(src))
	prog, err := p.GetProgram()
	require.NoError(t, err)
	return prog
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	p := NewParser(lexer.NewLexer(src))
	_, err := p.GetProgram()
	require.Error(t, err)
	return err
}

func TestParseSimpleFunction(t *testing.T) {
	prog := parseSrc(t, `void main() { print(1); }`)
	fn, ok := prog.Functions["main"]
	require.True(t, ok)
	assert.Equal(t, objects.VoidType, fn.ReturnType)
	require.Len(t, fn.Body.Statements, 1)
}

func TestParseFunctionWithParams(t *testing.T) {
	prog := parseSrc(t, `int add(int a, int b) { return a + b; }`)
	fn := prog.Functions["add"]
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, objects.IntType, fn.Params[0].Type)
}

func TestDuplicateFunctionIsError(t *testing.T) {
	err := parseErr(t, `void main(){} void main(){}`)
	_, ok := err.(*DuplicateDeclarationError)
	assert.True(t, ok, "got %T: %v", err, err)
}

func TestDuplicateExceptionIsError(t *testing.T) {
	err := parseErr(t, `
		exception E() { }
		exception E() { }
		void main(){}
	`)
	_, ok := err.(*DuplicateDeclarationError)
	assert.True(t, ok, "got %T: %v", err, err)
}

func TestFunctionAndExceptionNamespacesAreSeparate(t *testing.T) {
	prog := parseSrc(t, `
		exception Foo() { }
		void Foo() { }
	`)
	assert.NotNil(t, prog.Functions["Foo"])
	assert.NotNil(t, prog.Exceptions["Foo"])
}

func TestPrecedenceMultiplicationBeforeAddition(t *testing.T) {
	prog := parseSrc(t, `void main(){ return 1 + 2 * 3; }`)
	ret := prog.Functions["main"].Body.Statements[0].(*Return)
	bin := ret.Value.(*Binary)
	assert.Equal(t, OpAdd, bin.Op)
	assert.Equal(t, int64(1), bin.Left.(*IntLit).Value)
	rhs := bin.Right.(*Binary)
	assert.Equal(t, OpMul, rhs.Op)
}

func TestPrecedenceOrAfterAnd(t *testing.T) {
	prog := parseSrc(t, `void main(){ return a or b and c; }`)
	ret := prog.Functions["main"].Body.Statements[0].(*Return)
	or := ret.Value.(*Logical)
	assert.Equal(t, OpOr, or.Op)
	_, leftIsVar := or.Left.(*Variable)
	assert.True(t, leftIsVar)
	and := or.Right.(*Logical)
	assert.Equal(t, OpAnd, and.Op)
}

func TestLeftAssociativeSubtraction(t *testing.T) {
	prog := parseSrc(t, `void main(){ return 10 - 3 - 2; }`)
	ret := prog.Functions["main"].Body.Statements[0].(*Return)
	top := ret.Value.(*Binary)
	assert.Equal(t, OpSub, top.Op)
	assert.Equal(t, int64(2), top.Right.(*IntLit).Value)
	inner := top.Left.(*Binary)
	assert.Equal(t, OpSub, inner.Op)
	assert.Equal(t, int64(10), inner.Left.(*IntLit).Value)
	assert.Equal(t, int64(3), inner.Right.(*IntLit).Value)
}

func TestRelationalOperatorsDoNotChain(t *testing.T) {
	err := parseErr(t, `void main(){ return a < b < c; }`)
	_, ok := err.(*UnexpectedTokenError)
	assert.True(t, ok, "got %T: %v", err, err)
}

func TestUnaryOperatorsStackRightAssociative(t *testing.T) {
	prog := parseSrc(t, `void main(){ return - - x; }`)
	ret := prog.Functions["main"].Body.Statements[0].(*Return)
	outer := ret.Value.(*Unary)
	assert.Equal(t, UnaryNeg, outer.Op)
	inner := outer.Operand.(*Unary)
	assert.Equal(t, UnaryNeg, inner.Op)
}

func TestCastExpression(t *testing.T) {
	prog := parseSrc(t, `void main(){ return x to int; }`)
	ret := prog.Functions["main"].Body.Statements[0].(*Return)
	cast := ret.Value.(*Cast)
	assert.Equal(t, objects.IntType, cast.Target)
}

func TestIfElifElse(t *testing.T) {
	prog := parseSrc(t, `
		void main() {
			if (x == 1) { print("one"); }
			elif (x == 2) { print("two"); }
			else { print("other"); }
		}
	`)
	ifStmt := prog.Functions["main"].Body.Statements[0].(*If)
	require.Len(t, ifStmt.Elifs, 1)
	require.NotNil(t, ifStmt.Else)
}

func TestTryCatchMultipleCatches(t *testing.T) {
	prog := parseSrc(t, `
		exception E1(int code) { }
		void main() {
			try {
				throw E1(1);
			} catch (E1 e) {
				print(e);
			} catch (BasicException e) {
				print(e);
			}
		}
	`)
	tc := prog.Functions["main"].Body.Statements[0].(*TryCatch)
	require.Len(t, tc.Catches, 2)
	assert.Equal(t, "E1", tc.Catches[0].ExceptionName)
	assert.Equal(t, "BasicException", tc.Catches[1].ExceptionName)
}

func TestExceptionDeclarationWithAttributes(t *testing.T) {
	prog := parseSrc(t, `
		exception ValueError(int value) {
			message: string = "Bad " + value to string;
		}
		void main(){}
	`)
	def := prog.Exceptions["ValueError"]
	require.Len(t, def.Params, 1)
	require.Len(t, def.Attributes, 1)
	assert.Equal(t, "message", def.Attributes[0].Name)
	assert.Equal(t, objects.StringType, def.Attributes[0].Type)
}

func TestAssignmentAndCallStatements(t *testing.T) {
	prog := parseSrc(t, `
		void main() {
			x = 5;
			print(x);
		}
	`)
	stmts := prog.Functions["main"].Body.Statements
	require.Len(t, stmts, 2)
	assign, ok := stmts[0].(*Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
	call, ok := stmts[1].(*CallStatement)
	require.True(t, ok)
	assert.Equal(t, "print", call.Name)
}

func TestWhileBreakContinue(t *testing.T) {
	prog := parseSrc(t, `
		void main() {
			while (true) {
				break;
			}
			while (true) {
				continue;
			}
		}
	`)
	w1 := prog.Functions["main"].Body.Statements[0].(*While)
	_, ok := w1.Body.Statements[0].(*Break)
	assert.True(t, ok)
	w2 := prog.Functions["main"].Body.Statements[1].(*While)
	_, ok = w2.Body.Statements[0].(*Continue)
	assert.True(t, ok)
}

func TestAttrAccessExpression(t *testing.T) {
	prog := parseSrc(t, `
		void main() {
			try {
				throw BasicException("boom");
			} catch (BasicException e) {
				print(e.message);
			}
		}
	`)
	tc := prog.Functions["main"].Body.Statements[0].(*TryCatch)
	call := tc.Catches[0].Body.Statements[0].(*CallStatement)
	attr := call.Args[0].(*AttrAccess)
	assert.Equal(t, "e", attr.VarName)
	assert.Equal(t, "message", attr.AttrName)
}

func TestCommentsAreDiscardedByParser(t *testing.T) {
	prog := parseSrc(t, `
		# a line comment
		$ a block
		   comment $
		void main() { print(1); # trailing
		}
	`)
	require.NotNil(t, prog.Functions["main"])
}

func TestMissingClosingBraceIsError(t *testing.T) {
	err := parseErr(t, `void main() { print(1); `)
	_, ok := err.(*UnexpectedTokenError)
	assert.True(t, ok, "got %T: %v", err, err)
}

func TestVoidParameterIsRejectedAtGrammar(t *testing.T) {
	err := parseErr(t, `void main(void x) { }`)
	assert.Error(t, err)
}

func TestExceptionWithoutAttributeBlockIsError(t *testing.T) {
	err := parseErr(t, `exception E() void main(){}`)
	_, ok := err.(*ExpectedAttributesError)
	assert.True(t, ok, "got %T: %v", err, err)
}
