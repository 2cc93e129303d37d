// Package starkgen expands contract modules of a felt-based smart
// contract language into their deployable form.
//
// A module annotated #[contract] declares entry points with #[external]
// or #[view] and an optional struct named Storage. Expansion replaces
// the module with generated source that adds:
//   - One wrapper per entry point that speaks the calling convention:
//     a flat felt array in, a flat felt array out.
//   - One accessor module per storage variable, bound to an address
//     derived from the variable name.
//   - A trait listing every entry point signature for introspection.
//
// # Basic Usage
//
// Parse a source file, then expand each module:
//
//	file := cairo.MustParse(src)
//
//	expander := starkgen.NewExpander()
//	for _, mod := range file.Modules() {
//	    res := expander.Expand(mod)
//	    for _, d := range res.Diagnostics {
//	        fmt.Println(d)
//	    }
//	    if res.DiscardOriginal() {
//	        fmt.Println(res.Generated.Content)
//	    }
//	}
//
// # Generated Layout
//
// The replacement for a contract module named token looks like:
//
//	mod balance { ... }          // one per storage variable
//
//	#[generated_contract]
//	mod token {
//	    ...original items...
//	    trait __abi { ... }      // entry point signatures
//	    mod __external { ... }   // entry point wrappers
//	}
//
// Wrappers acquire gas before any work, deserialize parameters in
// declaration order, reject leftover input, call into the original
// function, and serialize by-reference parameters and the return value
// back out. All failures panic with a one-element felt array payload.
//
// # Diagnostics
//
// Expansion never stops at the first problem. Every entry point with an
// unsupported parameter or return type contributes one diagnostic per
// failing type, anchored at the type mention, and the rest of the
// module still expands. Only a contract module with no body at all is
// rejected outright.
//
// # Syntax Trees
//
// The expander consumes source through the small interfaces in this
// package (Module, Function, Struct, ...). The cairo subpackage
// provides a parser whose nodes satisfy them; any tree that preserves
// verbatim item text can be plugged in instead.
package starkgen
