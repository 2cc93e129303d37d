package starkgen

import (
	"fmt"
	"strings"
)

// indentUnit is one level of indentation in formatted output.
const indentUnit = "    "

// FormatFunc reformats generated source text.
type FormatFunc func(text string) string

// Format reindents source text by brace depth. Trailing whitespace is
// stripped, runs of blank lines collapse to a single blank line,
// leading blank lines are dropped, and the result ends with exactly
// one newline. Braces inside short strings and line comments do not
// count. Format is idempotent: formatting formatted text returns it
// unchanged.
func Format(text string) string {
	var b strings.Builder
	depth := 0
	pendingBlank := false
	wrote := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			pendingBlank = true
			continue
		}
		if wrote && pendingBlank {
			b.WriteByte('\n')
		}
		pendingBlank = false
		opens, closes, leading := braceCounts(line)
		indent := depth - leading
		if indent < 0 {
			indent = 0
		}
		for i := 0; i < indent; i++ {
			b.WriteString(indentUnit)
		}
		b.WriteString(line)
		b.WriteByte('\n')
		wrote = true
		depth += opens - closes
		if depth < 0 {
			depth = 0
		}
	}
	return b.String()
}

// braceCounts scans one line and reports its opening and closing brace
// counts, plus how many closing braces appear before the first opening
// brace. That leading count dedents the line itself.
func braceCounts(line string) (opens, closes, leading int) {
	inString := false
	sawOpen := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '\'':
				inString = false
			}
			continue
		}
		switch c {
		case '\'':
			inString = true
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return
			}
		case '{':
			opens++
			sawOpen = true
		case '}':
			closes++
			if !sawOpen {
				leading++
			}
		}
	}
	return
}

// sourceWriter accumulates generated source lines at a running indent.
type sourceWriter struct {
	b     strings.Builder
	depth int
}

// in increases the indent for subsequent lines.
func (w *sourceWriter) in() {
	w.depth++
}

// out decreases the indent for subsequent lines.
func (w *sourceWriter) out() {
	if w.depth > 0 {
		w.depth--
	}
}

// line writes one line at the current indent.
func (w *sourceWriter) line(format string, args ...any) {
	for i := 0; i < w.depth; i++ {
		w.b.WriteString(indentUnit)
	}
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

// String returns the accumulated text.
func (w *sourceWriter) String() string {
	return w.b.String()
}
