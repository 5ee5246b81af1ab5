package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *parser.Program {
	t.Helper()
	p := parser.NewParser(lexer.NewLexer(src))
	prog, err := p.GetProgram()
	require.NoError(t, err)
	return prog
}

func run(t *testing.T, src string, opts ...Option) (string, error) {
	t.Helper()
	prog := mustParse(t, src)
	var buf bytes.Buffer
	ev := NewEvaluator(opts...)
	ev.SetWriter(&buf)
	err := ev.Execute(prog)
	return buf.String(), err
}

func runWithInput(t *testing.T, src, input string) (string, error) {
	t.Helper()
	prog := mustParse(t, src)
	var buf bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&buf)
	ev.SetReader(strings.NewReader(input))
	err := ev.Execute(prog)
	return buf.String(), err
}

func TestScenarioPrintMixedArgs(t *testing.T) {
	out, err := run(t, `void main() { print(8, 1.5, "text", true); }`)
	require.NoError(t, err)
	assert.Equal(t, "8 1.5 text true\n", out)
}

func TestScenarioWhileModuloContinue(t *testing.T) {
	out, err := run(t, `
		void main() {
			x = 5;
			while (x > 0) {
				if (x % 2 == 0) {
					x = x - 1;
					continue;
				}
				print(x);
				x = x - 1;
			}
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n3\n1\n", out)
}

func TestScenarioFibWithInput(t *testing.T) {
	src := `
		int fib(int n) { if (n < 3) { return 1; } return fib(n-2)+fib(n-1); }
		void main(){ print(fib(input() to int)); }
	`
	out, err := runWithInput(t, src, "10\n")
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestScenarioUserExceptionMessage(t *testing.T) {
	src := `
		exception ValueError(int value) { message: string = "Bad "+value to string; }
		void main(){ try { throw ValueError(7); } catch (BasicException e){ print(e.message); } }
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "Bad 7\n", out)
}

func TestScenarioDivisionByZeroAborts(t *testing.T) {
	_, err := run(t, `void main(){ print(1/0); }`)
	require.Error(t, err)
	var divErr *DivisionByZeroError
	require.ErrorAs(t, err, &divErr)
	assert.Contains(t, divErr.Error(), "division by zero")
	assert.Contains(t, divErr.Error(), "Line 1")
}

func TestScenarioRecursionLimit(t *testing.T) {
	src := `void loop() { loop(); } void main() { loop(); }`
	_, err := run(t, src, WithRecursionLimit(5))
	require.Error(t, err)
	var recErr *RecursionTooDeepError
	require.ErrorAs(t, err, &recErr)
}

func TestShortCircuitOrSkipsRightOperand(t *testing.T) {
	src := `
		bool sentinel() { print("called"); return true; }
		void main() { x = true or sentinel(); print(x); }
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestShortCircuitAndSkipsRightOperand(t *testing.T) {
	src := `
		bool sentinel() { print("called"); return false; }
		void main() { x = false and sentinel(); print(x); }
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestBlockScopeIsNotVisibleOutside(t *testing.T) {
	src := `
		void main() {
			if (true) {
				y = 1;
			}
			print(y);
		}
	`
	_, err := run(t, src)
	require.Error(t, err)
	var undef *UndefinedVariableError
	require.ErrorAs(t, err, &undef)
}

func TestReassigningInBlockUpdatesOuterBinding(t *testing.T) {
	src := `
		void main() {
			x = 1;
			if (true) {
				x = 2;
			}
			print(x);
		}
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestThrowUnwindsNestedBlocks(t *testing.T) {
	src := `
		exception Boom() { message: string = "boom"; }
		void main() {
			try {
				if (true) {
					while (true) {
						throw Boom();
					}
				}
			} catch (Boom b) {
				print(b.message);
			}
		}
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "boom\n", out)
}

func TestUncaughtUserExceptionEscapesMain(t *testing.T) {
	src := `
		exception Oops() { message: string = "nope"; }
		void main() { throw Oops(); }
	`
	_, err := run(t, src)
	require.Error(t, err)
	var escaped *EscapedExceptionError
	require.ErrorAs(t, err, &escaped)
	assert.Equal(t, "Oops", escaped.Name)
	assert.Equal(t, "nope", escaped.Message)
}

func TestVoidFunctionCannotReturnValue(t *testing.T) {
	_, err := run(t, `void main() { return 1; }`)
	require.Error(t, err)
	var verr *ValueReturnInVoidFunctionError
	require.ErrorAs(t, err, &verr)
}

func TestNonVoidFunctionMustReturn(t *testing.T) {
	src := `int f() { x = 1; } void main() { print(f()); }`
	_, err := run(t, src)
	require.Error(t, err)
	var merr *ReturnStatementMissingError
	require.ErrorAs(t, err, &merr)
}

func TestMismatchedBinaryTypesIsError(t *testing.T) {
	_, err := run(t, `void main(){ print(1 + 1.0); }`)
	require.Error(t, err)
	var nmerr *NotMatchingTypesInBinaryError
	require.ErrorAs(t, err, &nmerr)
}

func TestBoolOrderingIsRejected(t *testing.T) {
	_, err := run(t, `void main(){ print(true < false); }`)
	require.Error(t, err)
	var werr *WrongExpressionTypeError
	require.ErrorAs(t, err, &werr)
}

func TestCastChainStringToIntToFloat(t *testing.T) {
	out, err := run(t, `void main(){ print(("42" to int) to float); }`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestIntegerFloorDivisionNegative(t *testing.T) {
	out, err := run(t, `void main(){ print(-7/2); print(-7%2); }`)
	require.NoError(t, err)
	assert.Equal(t, "-4\n1\n", out)
}

func TestUserFunctionShadowsBuiltin(t *testing.T) {
	src := `
		void print(int x) { }
		void main() { print(1); }
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestMissingMainIsError(t *testing.T) {
	_, err := run(t, `void notMain() {}`)
	require.Error(t, err)
	var merr *MissingMainError
	require.ErrorAs(t, err, &merr)
}
