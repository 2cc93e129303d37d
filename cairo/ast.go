package cairo

import (
	starkgen "github.com/branched-services/go-starkgen"
)

// span is a half-open byte range into the source.
type span struct {
	start int
	end   int
}

// node anchors a syntax element to its source slice. Text is always
// the verbatim input, never a reconstruction.
type node struct {
	src  string
	span span
	pos  starkgen.Pos
}

// Text returns the exact source text of the node.
func (n node) Text() string {
	return n.src[n.span.start:n.span.end]
}

// Pos returns the position of the node's first byte.
func (n node) Pos() starkgen.Pos {
	return n.pos
}

// End returns the byte offset just past the node's text.
func (n node) End() int {
	return n.span.end
}

// File is a parsed source file.
type File struct {
	src     string
	modules []*Module
}

// Source returns the full input text the file was parsed from.
func (f *File) Source() string {
	return f.src
}

// Modules returns the file's top-level modules in declaration order.
func (f *File) Modules() []*Module {
	return f.modules
}

// Attribute is one #[name] annotation.
type Attribute struct {
	name string
	pos  starkgen.Pos
}

// Name returns the attribute's name.
func (a Attribute) Name() string {
	return a.name
}

// Pos returns the position of the attribute's # byte.
func (a Attribute) Pos() starkgen.Pos {
	return a.pos
}

// Module is a top-level module declaration.
type Module struct {
	node
	name    string
	attrs   []Attribute
	hasBody bool
	items   []starkgen.Item
}

// Name returns the module's declared name.
func (m *Module) Name() string {
	return m.name
}

// Attributes returns the module's attributes in source order.
func (m *Module) Attributes() []Attribute {
	return m.attrs
}

// HasMarker reports whether any attribute names the marker.
func (m *Module) HasMarker(mk starkgen.Marker) bool {
	return hasAttr(m.attrs, mk)
}

// Body returns the module's items. The second return is false for a
// declaration-only module written as mod name;.
func (m *Module) Body() ([]starkgen.Item, bool) {
	if !m.hasBody {
		return nil, false
	}
	return m.items, true
}

// Function is a function item.
type Function struct {
	node
	name   string
	attrs  []Attribute
	decl   span
	params []*Param
	ret    *TypeRef
}

// Name returns the function's declared name.
func (f *Function) Name() string {
	return f.name
}

// Attributes returns the function's attributes in source order.
func (f *Function) Attributes() []Attribute {
	return f.attrs
}

// HasMarker reports whether any attribute names the marker.
func (f *Function) HasMarker(mk starkgen.Marker) bool {
	return hasAttr(f.attrs, mk)
}

// DeclarationText returns the signature from the fn keyword through
// the return type, without attributes or body.
func (f *Function) DeclarationText() string {
	return f.src[f.decl.start:f.decl.end]
}

// Params returns the function's parameters in declaration order.
func (f *Function) Params() []starkgen.Param {
	out := make([]starkgen.Param, len(f.params))
	for i, p := range f.params {
		out[i] = p
	}
	return out
}

// ReturnType returns the declared return type, or false when the
// function does not declare one.
func (f *Function) ReturnType() (starkgen.TypeExpr, bool) {
	if f.ret == nil {
		return nil, false
	}
	return f.ret, true
}

// Param is a single function parameter.
type Param struct {
	name string
	typ  *TypeRef
	mods []starkgen.Modifier
}

// Name returns the parameter name.
func (p *Param) Name() string {
	return p.name
}

// Type returns the parameter's type expression.
func (p *Param) Type() starkgen.TypeExpr {
	return p.typ
}

// Modifiers returns the parameter's modifiers in source order.
func (p *Param) Modifiers() []starkgen.Modifier {
	return p.mods
}

// TypeRef is a type mention, kept as raw source text.
type TypeRef struct {
	node
}

// Struct is a struct item.
type Struct struct {
	node
	name   string
	attrs  []Attribute
	fields []*Field
}

// Name returns the struct's declared name.
func (s *Struct) Name() string {
	return s.name
}

// Attributes returns the struct's attributes in source order.
func (s *Struct) Attributes() []Attribute {
	return s.attrs
}

// Fields returns the struct's fields in declaration order.
func (s *Struct) Fields() []starkgen.Field {
	out := make([]starkgen.Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = f
	}
	return out
}

// Field is a single struct field.
type Field struct {
	name string
	typ  *TypeRef
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Type returns the field's type expression.
func (f *Field) Type() starkgen.TypeExpr {
	return f.typ
}

// RawItem is an item the parser carries through without interpreting:
// uses, constants, impls, traits, enums, and nested modules.
type RawItem struct {
	node
}

// hasAttr reports whether any attribute spells the marker's name.
func hasAttr(attrs []Attribute, mk starkgen.Marker) bool {
	for _, a := range attrs {
		if a.name == mk.String() {
			return true
		}
	}
	return false
}

var (
	_ starkgen.Module   = (*Module)(nil)
	_ starkgen.Function = (*Function)(nil)
	_ starkgen.Param    = (*Param)(nil)
	_ starkgen.TypeExpr = (*TypeRef)(nil)
	_ starkgen.Struct   = (*Struct)(nil)
	_ starkgen.Field    = (*Field)(nil)
	_ starkgen.Item     = (*RawItem)(nil)
)
