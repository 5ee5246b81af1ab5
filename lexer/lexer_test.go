package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(src)
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.Nil(t, err)
		toks = append(toks, tok)
		if tok.Kind == ETX {
			return toks
		}
	}
}

func TestKeywordsProduceSingleTokenAtOrigin(t *testing.T) {
	for text, kind := range reservedWords {
		toks := allTokens(t, text)
		require.Len(t, toks, 2)
		assert.Equal(t, kind, toks[0].Kind, "text %q", text)
		assert.Equal(t, Position{Line: 1, Column: 1}, toks[0].Position)
		assert.Equal(t, ETX, toks[1].Kind)
	}
}

func TestIdentifier(t *testing.T) {
	toks := allTokens(t, "elephant_42")
	require.Len(t, toks, 2)
	assert.Equal(t, IDENT, toks[0].Kind)
	assert.Equal(t, "elephant_42", toks[0].Literal)
}

func TestIntegerLiteral(t *testing.T) {
	toks := allTokens(t, "12345")
	require.Len(t, toks, 2)
	assert.Equal(t, INT_LIT, toks[0].Kind)
	assert.Equal(t, "12345", toks[0].Literal)
}

func TestLeadingZeroRule(t *testing.T) {
	toks := allTokens(t, "00143")
	require.Len(t, toks, 4)
	assert.Equal(t, INT_LIT, toks[0].Kind)
	assert.Equal(t, "0", toks[0].Literal)
	assert.Equal(t, INT_LIT, toks[1].Kind)
	assert.Equal(t, "0", toks[1].Literal)
	assert.Equal(t, INT_LIT, toks[2].Kind)
	assert.Equal(t, "143", toks[2].Literal)
}

func TestFloatLiteral(t *testing.T) {
	toks := allTokens(t, "3.14")
	require.Len(t, toks, 2)
	assert.Equal(t, FLOAT_LIT, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Literal)
}

func TestDotNotFollowedByDigitStaysSeparate(t *testing.T) {
	toks := allTokens(t, "3.to")
	require.Len(t, toks, 4)
	assert.Equal(t, INT_LIT, toks[0].Kind)
	assert.Equal(t, DOT, toks[1].Kind)
	assert.Equal(t, TO, toks[2].Kind)
}

func TestStringEscapes(t *testing.T) {
	toks := allTokens(t, `"a\\b\"c\t\nd"`)
	require.Len(t, toks, 2)
	assert.Equal(t, STRING_LIT, toks[0].Kind)
	assert.Equal(t, "a\\b\"c\t\nd", toks[0].Literal)
}

func TestUnterminatedString(t *testing.T) {
	l := NewLexer(`"abc`)
	_, err := l.NextToken()
	require.NotNil(t, err)
	var target *UnterminatedStringError
	assert.ErrorAs(t, error(err), &target)
}

func TestBadEscape(t *testing.T) {
	l := NewLexer(`"\q"`)
	_, err := l.NextToken()
	require.NotNil(t, err)
	var target *BadEscapeError
	assert.ErrorAs(t, error(err), &target)
}

func TestLineComment(t *testing.T) {
	toks := allTokens(t, "# hello\nint")
	require.Len(t, toks, 3)
	assert.Equal(t, COMMENT, toks[0].Kind)
	assert.Equal(t, " hello", toks[0].Literal)
	assert.Equal(t, INT, toks[1].Kind)
}

func TestBlockComment(t *testing.T) {
	toks := allTokens(t, "$ multi\nline $int")
	require.Len(t, toks, 3)
	assert.Equal(t, COMMENT, toks[0].Kind)
	assert.Equal(t, INT, toks[1].Kind)
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := NewLexer("$ open forever")
	_, err := l.NextToken()
	require.NotNil(t, err)
	var target *UnterminatedCommentError
	assert.ErrorAs(t, error(err), &target)
}

func TestTwoCharOperators(t *testing.T) {
	toks := allTokens(t, "<= >= == !=")
	require.Len(t, toks, 5)
	assert.Equal(t, LE, toks[0].Kind)
	assert.Equal(t, GE, toks[1].Kind)
	assert.Equal(t, EQ, toks[2].Kind)
	assert.Equal(t, NE, toks[3].Kind)
}

func TestPositionAdvancesPastWhitespace(t *testing.T) {
	toks := allTokens(t, "  \n  x")
	require.Len(t, toks, 2)
	assert.Equal(t, Position{Line: 2, Column: 3}, toks[0].Position)
}

func TestUnknownToken(t *testing.T) {
	l := NewLexer("@")
	_, err := l.NextToken()
	require.NotNil(t, err)
	var target *UnknownTokenError
	assert.ErrorAs(t, error(err), &target)
}

func TestOverflow(t *testing.T) {
	l := NewLexer("99999999999999999999")
	_, err := l.NextToken()
	require.NotNil(t, err)
	var target *NumberOverflowError
	assert.ErrorAs(t, error(err), &target)
}
