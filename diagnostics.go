package starkgen

import "fmt"

// Diagnostic is one expansion problem tied to a source position.
// Diagnostics carry no severity; hosts decide how to treat them.
type Diagnostic struct {
	// Message is the human-readable problem description.
	Message string

	// Pos anchors the problem in the original source.
	Pos Pos
}

// String returns the diagnostic as "line:col: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}
