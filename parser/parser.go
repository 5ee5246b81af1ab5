/*
Package parser implements a recursive-descent parser with single-token
lookahead over the token stream lexer.Lexer produces. GetProgram is its
sole exported operation; it either returns a complete Program or the
first error encountered — the parser never returns a partial tree.

File: parser/parser.go
*/
package parser

import (
	"strconv"

	"github.com/amaji/lumen/lexer"
	"github.com/amaji/lumen/objects"
)

// Parser holds the single lookahead token the grammar needs.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// NewParser wraps a lexer. Call GetProgram to parse.
func NewParser(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// advance pulls the next non-Comment token from the lexer into p.cur.
func (p *Parser) advance() error {
	for {
		tok, err := p.lex.NextToken()
		if err != nil {
			return err
		}
		if tok.Kind == lexer.COMMENT {
			continue
		}
		p.cur = tok
		return nil
	}
}

// expect consumes p.cur if it matches kind, else reports UnexpectedTokenError.
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	if p.cur.Kind != kind {
		return lexer.Token{}, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), kind.String()}
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

// GetProgram parses the whole token stream into a Program.
func (p *Parser) GetProgram() (*Program, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	prog := &Program{
		Functions:  make(map[string]*Function),
		Exceptions: make(map[string]*ExceptionDef),
	}
	for p.cur.Kind != lexer.ETX {
		switch {
		case p.cur.Kind == lexer.EXCEPTION:
			def, err := p.parseExceptionDecl()
			if err != nil {
				return nil, err
			}
			if _, exists := prog.Exceptions[def.Name]; exists {
				return nil, &DuplicateDeclarationError{baseError{def.Pos()}, def.Name}
			}
			prog.Exceptions[def.Name] = def
		case isReturnTypeStart(p.cur.Kind):
			fn, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			if _, exists := prog.Functions[fn.Name]; exists {
				return nil, &DuplicateDeclarationError{baseError{fn.Pos()}, fn.Name}
			}
			prog.Functions[fn.Name] = fn
		default:
			return nil, &ExpectedDeclarationError{baseError{p.cur.Position}}
		}
	}
	return prog, nil
}

func isReturnTypeStart(k lexer.TokenKind) bool {
	switch k {
	case lexer.INT, lexer.FLOAT, lexer.BOOL, lexer.STRING, lexer.VOID:
		return true
	}
	return false
}

func (p *Parser) parseSimpleType() (objects.Type, lexer.Position, error) {
	pos := p.cur.Position
	var t objects.Type
	switch p.cur.Kind {
	case lexer.INT:
		t = objects.IntType
	case lexer.FLOAT:
		t = objects.FloatType
	case lexer.BOOL:
		t = objects.BoolType
	case lexer.STRING:
		t = objects.StringType
	default:
		return "", pos, &UnknownTypeError{baseError{pos}, p.cur.Literal}
	}
	if err := p.advance(); err != nil {
		return "", pos, err
	}
	return t, pos, nil
}

func (p *Parser) parseReturnType() (objects.Type, error) {
	if p.cur.Kind == lexer.VOID {
		if err := p.advance(); err != nil {
			return "", err
		}
		return objects.VoidType, nil
	}
	t, _, err := p.parseSimpleType()
	return t, err
}

// parseParameters = parameter, {",", parameter}
func (p *Parser) parseParameters() ([]*Parameter, error) {
	var params []*Parameter
	for {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.cur.Kind != lexer.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return params, nil
}

// parseParameter = simple_type, ident
func (p *Parser) parseParameter() (*Parameter, error) {
	pos := p.cur.Position
	typ, _, err := p.parseSimpleType()
	if err != nil {
		return nil, &ExpectedParameterError{baseError{pos}}
	}
	if p.cur.Kind != lexer.IDENT {
		return nil, &ExpectedParameterError{baseError{pos}}
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &Parameter{basePos{pos}, name, typ}, nil
}

// function_decl = return_type, ident, "(", [parameters], ")", block
func (p *Parser) parseFunctionDecl() (*Function, error) {
	pos := p.cur.Position
	retType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.IDENT {
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "identifier"}
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []*Parameter
	if p.cur.Kind != lexer.RPAREN {
		params, err = p.parseParameters()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Function{basePos{pos}, name, params, retType, body}, nil
}

// exception_decl = "exception", ident, "(", [parameters], ")", attributes
func (p *Parser) parseExceptionDecl() (*ExceptionDef, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // consume 'exception'
		return nil, err
	}
	if p.cur.Kind != lexer.IDENT {
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "identifier"}
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []*Parameter
	var err error
	if p.cur.Kind != lexer.RPAREN {
		params, err = p.parseParameters()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.LBRACE {
		return nil, &ExpectedAttributesError{baseError{p.cur.Position}, name}
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	return &ExceptionDef{basePos{pos}, name, params, attrs}, nil
}

// attributes = "{", {attribute}, "}"
func (p *Parser) parseAttributes() ([]*Attribute, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var attrs []*Attribute
	for p.cur.Kind != lexer.RBRACE {
		if p.cur.Kind == lexer.ETX {
			return nil, &UnexpectedTokenError{baseError{p.cur.Position}, "ETX", "}"}
		}
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return attrs, nil
}

// attribute = ident, ":", simple_type, "=", expression, ";"
func (p *Parser) parseAttribute() (*Attribute, error) {
	pos := p.cur.Position
	if p.cur.Kind != lexer.IDENT {
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "attribute name"}
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	typ, typPos, err := p.parseSimpleType()
	if err != nil {
		return nil, &ExpectedSimpleTypeError{baseError{typPos}, "':'"}
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &Attribute{basePos{pos}, name, typ, init}, nil
}

// block = "{", {statement}, "}"
func (p *Parser) parseBlock() (*Block, error) {
	pos := p.cur.Position
	if p.cur.Kind != lexer.LBRACE {
		return nil, &ExpectedStatementBlockError{baseError{pos}, "statement"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var stmts []Statement
	for p.cur.Kind != lexer.RBRACE {
		if p.cur.Kind == lexer.ETX {
			return nil, &UnexpectedTokenError{baseError{p.cur.Position}, "ETX", "}"}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.advance(); err != nil { // consume '}'
		return nil, err
	}
	return &Block{basePos{pos}, stmts}, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.cur.Kind {
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.TRY:
		return p.parseTryCatch()
	case lexer.THROW:
		return p.parseThrow()
	case lexer.IDENT:
		return p.parseAssignOrCall()
	default:
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "statement"}
	}
}

func (p *Parser) parseParenCondition(keyword string) (Expression, error) {
	if p.cur.Kind != lexer.LPAREN {
		return nil, &ExpectedConditionError{baseError{p.cur.Position}, keyword}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// if_stmt = "if", "(", expression, ")", block,
//           {"elif", "(", expression, ")", block}, ["else", block]
func (p *Parser) parseIf() (*If, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseParenCondition("if")
	if err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elifs []*ElifBranch
	for p.cur.Kind == lexer.ELIF {
		epos := p.cur.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		econd, err := p.parseParenCondition("elif")
		if err != nil {
			return nil, err
		}
		eblock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elifs = append(elifs, &ElifBranch{basePos{epos}, econd, eblock})
	}
	var elseBlock *Block
	if p.cur.Kind == lexer.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &If{basePos{pos}, cond, thenBlock, elifs, elseBlock}, nil
}

// while_stmt = "while", "(", expression, ")", block
func (p *Parser) parseWhile() (*While, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseParenCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &While{basePos{pos}, cond, body}, nil
}

func (p *Parser) parseBreak() (*Break, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &Break{basePos{pos}}, nil
}

func (p *Parser) parseContinue() (*Continue, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &Continue{basePos{pos}}, nil
}

// return_stmt = "return", [expression], ";"
func (p *Parser) parseReturn() (*Return, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.SEMICOLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Return{basePos{pos}, nil}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &Return{basePos{pos}, expr}, nil
}

// assign_or_call = ident, ("=", expression | "(", [args], ")"), ";"
func (p *Parser) parseAssignOrCall() (Statement, error) {
	pos := p.cur.Position
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case lexer.ASSIGN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return &Assignment{basePos{pos}, name, expr}, nil
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return &CallStatement{basePos{pos}, name, args}, nil
	default:
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "'=' or '('"}
	}
}

// args = expression, {",", expression}
func (p *Parser) parseArgs() ([]Expression, error) {
	if p.cur.Kind == lexer.RPAREN {
		return nil, nil
	}
	var args []Expression
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.cur.Kind != lexer.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// try_stmt = "try", block, {catch}
func (p *Parser) parseTryCatch() (*TryCatch, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var catches []*Catch
	for p.cur.Kind == lexer.CATCH {
		c, err := p.parseCatch()
		if err != nil {
			return nil, err
		}
		catches = append(catches, c)
	}
	return &TryCatch{basePos{pos}, tryBlock, catches}, nil
}

// catch = "catch", "(", ident, ident, ")", block
func (p *Parser) parseCatch() (*Catch, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // consume 'catch'
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.IDENT {
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "exception name"}
	}
	excName := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.IDENT {
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "binding name"}
	}
	binding := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Catch{basePos{pos}, excName, binding, body}, nil
}

// throw_stmt = "throw", ident, "(", [args], ")", ";"
func (p *Parser) parseThrow() (*Throw, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.IDENT {
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "exception name"}
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &Throw{basePos{pos}, name, args}, nil
}

// ---- Expressions, low to high precedence, all binaries left-associative ----

func (p *Parser) parseExpression() (Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.OR {
		pos := p.cur.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Logical{basePos{pos}, OpOr, left, right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parseRel()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.AND {
		pos := p.cur.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRel()
		if err != nil {
			return nil, err
		}
		left = &Logical{basePos{pos}, OpAnd, left, right}
	}
	return left, nil
}

func relOp(k lexer.TokenKind) (BinaryOp, bool) {
	switch k {
	case lexer.EQ:
		return OpEq, true
	case lexer.NE:
		return OpNe, true
	case lexer.LT:
		return OpLt, true
	case lexer.LE:
		return OpLe, true
	case lexer.GT:
		return OpGt, true
	case lexer.GE:
		return OpGe, true
	}
	return 0, false
}

// rel_expr = add_expr, [rel_op, add_expr] — non-associative: a second
// relational operator following the first is a parse error.
func (p *Parser) parseRel() (Expression, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	op, ok := relOp(p.cur.Kind)
	if !ok {
		return left, nil
	}
	pos := p.cur.Position
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	left = &Binary{basePos{pos}, op, left, right}
	if _, chained := relOp(p.cur.Kind); chained {
		return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "non-relational operator"}
	}
	return left, nil
}

func (p *Parser) parseAdd() (Expression, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS {
		pos := p.cur.Position
		op := OpAdd
		if p.cur.Kind == lexer.MINUS {
			op = OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &Binary{basePos{pos}, op, left, right}
	}
	return left, nil
}

func (p *Parser) parseMul() (Expression, error) {
	left, err := p.parseCast()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.STAR || p.cur.Kind == lexer.SLASH || p.cur.Kind == lexer.PERCENT {
		pos := p.cur.Position
		var op BinaryOp
		switch p.cur.Kind {
		case lexer.STAR:
			op = OpMul
		case lexer.SLASH:
			op = OpDiv
		case lexer.PERCENT:
			op = OpMod
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseCast()
		if err != nil {
			return nil, err
		}
		left = &Binary{basePos{pos}, op, left, right}
	}
	return left, nil
}

// cast_expr = unary, ["to", simple_type]
func (p *Parser) parseCast() (Expression, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.TO {
		pos := p.cur.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		target, typPos, err := p.parseSimpleType()
		if err != nil {
			return nil, &ExpectedSimpleTypeError{baseError{typPos}, "'to'"}
		}
		expr = &Cast{basePos{pos}, expr, target}
	}
	return expr, nil
}

func canStartExpression(k lexer.TokenKind) bool {
	switch k {
	case lexer.INT_LIT, lexer.FLOAT_LIT, lexer.TRUE, lexer.FALSE, lexer.STRING_LIT,
		lexer.LPAREN, lexer.IDENT, lexer.BANG, lexer.NOT, lexer.MINUS:
		return true
	}
	return false
}

// unary = ("!" | "not" | "-"), unary | basic
func (p *Parser) parseUnary() (Expression, error) {
	switch p.cur.Kind {
	case lexer.BANG, lexer.NOT, lexer.MINUS:
		opKind := p.cur.Kind
		pos := p.cur.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !canStartExpression(p.cur.Kind) {
			return nil, &ExpectedExpressionError{baseError{p.cur.Position}, opKind.String()}
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		op := UnaryNot
		if opKind == lexer.MINUS {
			op = UnaryNeg
		}
		return &Unary{basePos{pos}, op, operand}, nil
	default:
		return p.parseBasic()
	}
}

// basic = literal | "(", expression, ")" | call_attr_or_var
func (p *Parser) parseBasic() (Expression, error) {
	pos := p.cur.Position
	switch p.cur.Kind {
	case lexer.INT_LIT:
		v, _ := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &IntLit{basePos{pos}, v}, nil
	case lexer.FLOAT_LIT:
		v, _ := strconv.ParseFloat(p.cur.Literal, 64)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &FloatLit{basePos{pos}, v}, nil
	case lexer.TRUE, lexer.FALSE:
		v := p.cur.Kind == lexer.TRUE
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLit{basePos{pos}, v}, nil
	case lexer.STRING_LIT:
		v := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringLit{basePos{pos}, v}, nil
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.IDENT:
		return p.parseCallAttrOrVar()
	default:
		return nil, &UnexpectedTokenError{baseError{pos}, p.cur.Kind.String(), "expression"}
	}
}

// call_attr_or_var = ident, ["(", [args], ")" | ".", ident]
func (p *Parser) parseCallAttrOrVar() (Expression, error) {
	pos := p.cur.Position
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &CallExpr{basePos{pos}, name, args}, nil
	case lexer.DOT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.IDENT {
			return nil, &UnexpectedTokenError{baseError{p.cur.Position}, p.cur.Kind.String(), "attribute name"}
		}
		attr := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &AttrAccess{basePos{pos}, name, attr}, nil
	default:
		return &Variable{basePos{pos}, name}, nil
	}
}
