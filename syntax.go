package starkgen

import "fmt"

// Pos is a location in source text.
type Pos struct {
	// Offset is the byte offset from the start of the file.
	Offset int

	// Line is the 1-based line number.
	Line int

	// Col is the 1-based column number.
	Col int
}

// String returns the position as "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is the capability every syntax element provides: its verbatim
// source text and its position.
type Node interface {
	// Text returns the exact source text of the node, including any
	// attributes that belong to it.
	Text() string

	// Pos returns the position of the node's first byte.
	Pos() Pos
}

// Item is one element of a module body. Expansion recognizes functions
// and structs by type assertion; any other item is carried through
// verbatim.
type Item interface {
	Node
}

// Module is a named module that may carry markers and a body.
type Module interface {
	Node

	// Name returns the module's declared name.
	Name() string

	// HasMarker reports whether the module's attributes name the marker.
	HasMarker(m Marker) bool

	// Body returns the module's items in declaration order. The second
	// return is false for declaration-only modules, which have no body
	// at all; a module with an empty body returns true.
	Body() ([]Item, bool)
}

// Function is a function item.
type Function interface {
	Item

	// Name returns the function's declared name.
	Name() string

	// HasMarker reports whether the function's attributes name the marker.
	HasMarker(m Marker) bool

	// DeclarationText returns the trimmed signature text, from the fn
	// keyword through the return type, without attributes or body.
	DeclarationText() string

	// Params returns the function's parameters in declaration order.
	Params() []Param

	// ReturnType returns the declared return type, or false when the
	// function does not declare one.
	ReturnType() (TypeExpr, bool)
}

// Param is a single function parameter.
type Param interface {
	// Name returns the parameter name.
	Name() string

	// Type returns the parameter's type expression.
	Type() TypeExpr

	// Modifiers returns the parameter's modifiers in source order.
	Modifiers() []Modifier
}

// TypeExpr is a type mention. Its text is the raw type spelling and
// its position anchors diagnostics about the type.
type TypeExpr interface {
	Node
}

// Struct is a struct item.
type Struct interface {
	Item

	// Name returns the struct's declared name.
	Name() string

	// Fields returns the struct's fields in declaration order.
	Fields() []Field
}

// Field is a single struct field.
type Field interface {
	// Name returns the field name.
	Name() string

	// Type returns the field's type expression.
	Type() TypeExpr
}
