package cairo

import (
	"fmt"
	"strings"

	starkgen "github.com/branched-services/go-starkgen"
)

// multiPuncts are the multi-byte operators the lexer keeps whole.
// Longer matches are not needed: the language subset has no shift
// operators, so < and > always lex one byte at a time.
var multiPuncts = []string{"::", "->", "=>"}

// punctBytes are the single-byte operators and delimiters.
const punctBytes = "(){}[]<>,;:#+-*/=.&|!?@%^~$"

// Lex scans source text into tokens. Line comments and whitespace are
// skipped. The returned slice always ends with a TokenEOF token, so a
// parser can read past the end without bounds checks.
func Lex(src string) ([]Token, error) {
	lx := &lexer{src: src, line: 1, col: 1}
	var toks []Token
	for {
		lx.skipSpace()
		if lx.off >= len(lx.src) {
			toks = append(toks, Token{Kind: TokenEOF, Pos: lx.pos()})
			return toks, nil
		}
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// lexer walks source bytes while tracking line and column.
type lexer struct {
	src  string
	off  int
	line int
	col  int
}

// pos returns the current position.
func (lx *lexer) pos() starkgen.Pos {
	return starkgen.Pos{Offset: lx.off, Line: lx.line, Col: lx.col}
}

// bump consumes one byte.
func (lx *lexer) bump() {
	if lx.src[lx.off] == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	lx.off++
}

// skipSpace consumes whitespace and line comments.
func (lx *lexer) skipSpace() {
	for lx.off < len(lx.src) {
		switch lx.src[lx.off] {
		case ' ', '\t', '\r', '\n':
			lx.bump()
		case '/':
			if !strings.HasPrefix(lx.src[lx.off:], "//") {
				return
			}
			for lx.off < len(lx.src) && lx.src[lx.off] != '\n' {
				lx.bump()
			}
		default:
			return
		}
	}
}

// next scans one token. The caller has already skipped whitespace and
// checked for end of input.
func (lx *lexer) next() (Token, error) {
	start := lx.pos()
	c := lx.src[lx.off]
	switch {
	case isIdentStart(c):
		for lx.off < len(lx.src) && isIdentPart(lx.src[lx.off]) {
			lx.bump()
		}
		return Token{Kind: TokenIdent, Text: lx.src[start.Offset:lx.off], Pos: start}, nil
	case c >= '0' && c <= '9':
		for lx.off < len(lx.src) && isIdentPart(lx.src[lx.off]) {
			lx.bump()
		}
		return Token{Kind: TokenNumber, Text: lx.src[start.Offset:lx.off], Pos: start}, nil
	case c == '\'':
		return lx.shortString(start)
	}
	for _, mp := range multiPuncts {
		if strings.HasPrefix(lx.src[lx.off:], mp) {
			for i := 0; i < len(mp); i++ {
				lx.bump()
			}
			return Token{Kind: TokenPunct, Text: mp, Pos: start}, nil
		}
	}
	if strings.IndexByte(punctBytes, c) >= 0 {
		lx.bump()
		return Token{Kind: TokenPunct, Text: string(c), Pos: start}, nil
	}
	return Token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", c)}
}

// shortString scans a single-quoted literal. The literal must close on
// the same line. A backslash escapes the next byte.
func (lx *lexer) shortString(start starkgen.Pos) (Token, error) {
	lx.bump()
	for lx.off < len(lx.src) {
		c := lx.src[lx.off]
		if c == '\n' {
			break
		}
		if c == '\\' {
			lx.bump()
			if lx.off < len(lx.src) {
				lx.bump()
			}
			continue
		}
		lx.bump()
		if c == '\'' {
			return Token{Kind: TokenShortString, Text: lx.src[start.Offset:lx.off], Pos: start}, nil
		}
	}
	return Token{}, &SyntaxError{Pos: start, Msg: "unterminated short string"}
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
