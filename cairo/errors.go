package cairo

import (
	"errors"
	"fmt"
	"strings"

	starkgen "github.com/branched-services/go-starkgen"
)

// SyntaxError reports a lex or parse failure at a source position.
type SyntaxError struct {
	Pos starkgen.Pos
	Msg string
}

// Error returns the failure as "cairo: line:col: message".
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cairo: %d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// WrapWithSource decorates a syntax error with a snippet of the source
// it points into, with a caret under the failing column. Errors that
// are not syntax errors, and positions outside the source, pass
// through unchanged.
func WrapWithSource(err error, src string) error {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return err
	}
	snippet := renderSnippet(src, se.Pos)
	if snippet == "" {
		return err
	}
	return fmt.Errorf("%w\n%s", err, snippet)
}

// renderSnippet shows the failing line with one line of context on
// each side.
func renderSnippet(src string, pos starkgen.Pos) string {
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	var b strings.Builder
	for n := pos.Line - 1; n <= pos.Line+1; n++ {
		if n < 1 || n > len(lines) {
			continue
		}
		fmt.Fprintf(&b, "%4d | %s\n", n, lines[n-1])
		if n == pos.Line {
			col := pos.Col
			if col < 1 {
				col = 1
			}
			b.WriteString("     | ")
			b.WriteString(strings.Repeat(" ", col-1))
			b.WriteString("^\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
