package cairo

import (
	starkgen "github.com/branched-services/go-starkgen"
)

// TokenKind classifies a lexical element.
type TokenKind int

const (
	// TokenEOF terminates every token stream.
	TokenEOF TokenKind = iota

	// TokenIdent is an identifier or keyword.
	TokenIdent

	// TokenNumber is an integer literal, including hex and suffixed
	// forms like 0x1f and 100_u128.
	TokenNumber

	// TokenShortString is a single-quoted string literal, quotes
	// included.
	TokenShortString

	// TokenPunct is an operator or delimiter.
	TokenPunct
)

// String returns a readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenIdent:
		return "ident"
	case TokenNumber:
		return "number"
	case TokenShortString:
		return "short-string"
	case TokenPunct:
		return "punct"
	}
	return "unknown"
}

// Token is one lexical element with its verbatim text and position.
type Token struct {
	Kind TokenKind
	Text string
	Pos  starkgen.Pos
}

// end returns the byte offset just past the token.
func (t Token) end() int {
	return t.Pos.Offset + len(t.Text)
}
