/*
Package lexer turns Lumen source text into a stream of tokens.

File: lexer/position.go
*/
package lexer

import "fmt"

// Position identifies a single character's location in the source text.
// Both fields are 1-based: the first character of a file sits at (1, 1).
type Position struct {
	Line   int
	Column int
}

// String renders a position the way diagnostics quote it: "Line L, Column C".
func (p Position) String() string {
	return fmt.Sprintf("Line %d, Column %d", p.Line, p.Column)
}
