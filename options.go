package starkgen

// ExpanderOption configures an Expander.
type ExpanderOption func(*Expander)

// WithHashFunc overrides the storage address derivation.
// A nil hash keeps the default.
func WithHashFunc(hash HashFunc) ExpanderOption {
	return func(e *Expander) {
		if hash != nil {
			e.hash = hash
		}
	}
}

// WithFormatter overrides the output formatting pass.
// A nil formatter keeps the default.
func WithFormatter(format FormatFunc) ExpanderOption {
	return func(e *Expander) {
		if format != nil {
			e.format = format
		}
	}
}
