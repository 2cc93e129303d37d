// Package cairo parses the contract language subset the expander
// consumes: top-level modules whose bodies hold attributed functions,
// structs, and opaque items. Every node keeps its verbatim source
// text, so expansion can splice original items into generated output
// byte for byte.
package cairo

import (
	"fmt"

	starkgen "github.com/branched-services/go-starkgen"
)

// Parse parses source text into a File.
func Parse(src string) (*File, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	return p.parseFile()
}

// MustParse is like Parse but panics on error. It simplifies
// hand-written sources in examples and tests.
func MustParse(src string) *File {
	f, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return f
}

// parser is a recursive descent parser over a lexed token stream.
type parser struct {
	src  string
	toks []Token
	i    int
}

// cur returns the current token. The stream ends with TokenEOF, so cur
// is always valid.
func (p *parser) cur() Token {
	return p.toks[p.i]
}

// advance moves past the current token. The EOF token is never
// consumed.
func (p *parser) advance() {
	if p.toks[p.i].Kind != TokenEOF {
		p.i++
	}
}

// at reports whether the current token is the given punctuation.
func (p *parser) at(text string) bool {
	t := p.cur()
	return t.Kind == TokenPunct && t.Text == text
}

// atIdent reports whether the current token is the given identifier.
func (p *parser) atIdent(text string) bool {
	t := p.cur()
	return t.Kind == TokenIdent && t.Text == text
}

// expect consumes the given punctuation or fails.
func (p *parser) expect(text string) (Token, error) {
	t := p.cur()
	if t.Kind != TokenPunct || t.Text != text {
		return Token{}, &SyntaxError{Pos: t.Pos, Msg: fmt.Sprintf("expected %q, found %q", text, t.Text)}
	}
	p.advance()
	return t, nil
}

// expectIdent consumes an identifier or fails.
func (p *parser) expectIdent() (Token, error) {
	t := p.cur()
	if t.Kind != TokenIdent {
		return Token{}, &SyntaxError{Pos: t.Pos, Msg: fmt.Sprintf("expected identifier, found %q", t.Text)}
	}
	p.advance()
	return t, nil
}

// parseFile reads top-level items. Modules are kept; anything else is
// scanned past without interpretation.
func (p *parser) parseFile() (*File, error) {
	f := &File{src: p.src}
	for p.cur().Kind != TokenEOF {
		attrs, start, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		if len(attrs) > 0 && p.cur().Kind == TokenEOF {
			return nil, &SyntaxError{Pos: p.cur().Pos, Msg: "attributes without an item"}
		}
		if p.atIdent("mod") {
			m, err := p.parseModule(attrs, start)
			if err != nil {
				return nil, err
			}
			f.modules = append(f.modules, m)
			continue
		}
		if _, err := p.parseRawItem(start); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// parseAttributes reads a run of #[name] or #[name(...)] annotations.
// The returned token is where the annotated item begins: the first #
// when attributes exist, the current token otherwise.
func (p *parser) parseAttributes() ([]Attribute, Token, error) {
	start := p.cur()
	var attrs []Attribute
	for p.at("#") {
		hash := p.cur()
		p.advance()
		if _, err := p.expect("["); err != nil {
			return nil, start, err
		}
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, start, err
		}
		if p.at("(") {
			p.advance()
			depth := 1
			for depth > 0 {
				t := p.cur()
				if t.Kind == TokenEOF {
					return nil, start, &SyntaxError{Pos: t.Pos, Msg: "unterminated attribute"}
				}
				p.advance()
				if t.Kind != TokenPunct {
					continue
				}
				switch t.Text {
				case "(":
					depth++
				case ")":
					depth--
				}
			}
		}
		if _, err := p.expect("]"); err != nil {
			return nil, start, err
		}
		attrs = append(attrs, Attribute{name: nameTok.Text, pos: hash.Pos})
	}
	return attrs, start, nil
}

// parseModule reads mod name; or mod name { items }.
func (p *parser) parseModule(attrs []Attribute, start Token) (*Module, error) {
	p.advance()
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	m := &Module{name: nameTok.Text, attrs: attrs}
	if p.at(";") {
		end := p.cur().end()
		p.advance()
		m.node = node{src: p.src, span: span{start.Pos.Offset, end}, pos: start.Pos}
		return m, nil
	}
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	m.hasBody = true
	for !p.at("}") {
		if p.cur().Kind == TokenEOF {
			return nil, &SyntaxError{Pos: p.cur().Pos, Msg: fmt.Sprintf("unterminated module %s", m.name)}
		}
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		m.items = append(m.items, item)
	}
	end := p.cur().end()
	p.advance()
	m.node = node{src: p.src, span: span{start.Pos.Offset, end}, pos: start.Pos}
	return m, nil
}

// parseItem reads one item of a module body.
func (p *parser) parseItem() (starkgen.Item, error) {
	attrs, start, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	switch {
	case p.atIdent("fn"):
		return p.parseFunction(attrs, start)
	case p.atIdent("struct"):
		return p.parseStruct(attrs, start)
	default:
		return p.parseRawItem(start)
	}
}

// parseFunction reads fn name(params) [-> Type] followed by a body or
// a semicolon.
func (p *parser) parseFunction(attrs []Attribute, start Token) (*Function, error) {
	declStart := p.cur().Pos.Offset
	p.advance()
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	fn := &Function{name: nameTok.Text, attrs: attrs}
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	for !p.at(")") {
		if p.cur().Kind == TokenEOF {
			return nil, &SyntaxError{Pos: p.cur().Pos, Msg: fmt.Sprintf("unterminated parameters of %s", fn.name)}
		}
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		fn.params = append(fn.params, param)
		if p.at(",") {
			p.advance()
			continue
		}
		if !p.at(")") {
			t := p.cur()
			return nil, &SyntaxError{Pos: t.Pos, Msg: fmt.Sprintf("expected \",\" or \")\" in parameters, found %q", t.Text)}
		}
	}
	closeParen := p.cur()
	p.advance()
	declEnd := closeParen.end()
	if p.at("->") {
		p.advance()
		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fn.ret = ret
		declEnd = ret.End()
	}
	fn.decl = span{declStart, declEnd}
	var end int
	if p.at(";") {
		end = p.cur().end()
		p.advance()
	} else {
		if _, err := p.expect("{"); err != nil {
			return nil, err
		}
		end, err = p.skipBalancedBraces()
		if err != nil {
			return nil, err
		}
	}
	fn.node = node{src: p.src, span: span{start.Pos.Offset, end}, pos: start.Pos}
	return fn, nil
}

// parseParam reads [modifiers] name: Type. Every identifier before the
// colon except the last is a modifier.
func (p *parser) parseParam() (*Param, error) {
	var words []Token
	for p.cur().Kind == TokenIdent {
		words = append(words, p.cur())
		p.advance()
	}
	if len(words) == 0 {
		t := p.cur()
		return nil, &SyntaxError{Pos: t.Pos, Msg: fmt.Sprintf("expected parameter name, found %q", t.Text)}
	}
	if _, err := p.expect(":"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	param := &Param{name: words[len(words)-1].Text, typ: typ}
	for _, w := range words[:len(words)-1] {
		param.mods = append(param.mods, modifierFor(w.Text))
	}
	return param, nil
}

// modifierFor maps a modifier word to its identity. Unrecognized words
// are kept as ModifierUnknown so by-reference detection sees them.
func modifierFor(word string) starkgen.Modifier {
	switch word {
	case "ref":
		return starkgen.ModifierRef
	case "mut":
		return starkgen.ModifierMut
	}
	return starkgen.ModifierUnknown
}

// parseType reads a type expression: a parenthesized type, or a path
// of identifiers with optional generic arguments, turbofish or plain.
func (p *parser) parseType() (*TypeRef, error) {
	start := p.cur()
	if p.at("(") {
		p.advance()
		depth := 1
		end := 0
		for depth > 0 {
			t := p.cur()
			if t.Kind == TokenEOF {
				return nil, &SyntaxError{Pos: t.Pos, Msg: "unterminated type"}
			}
			p.advance()
			if t.Kind != TokenPunct {
				continue
			}
			switch t.Text {
			case "(":
				depth++
			case ")":
				depth--
				end = t.end()
			}
		}
		return p.typeRef(start, end), nil
	}
	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	end := first.end()
	for {
		if p.at("::") {
			p.advance()
			if p.at("<") {
				end, err = p.parseGenericArgs()
				if err != nil {
					return nil, err
				}
				break
			}
			seg, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			end = seg.end()
			continue
		}
		if p.at("<") {
			end, err = p.parseGenericArgs()
			if err != nil {
				return nil, err
			}
		}
		break
	}
	return p.typeRef(start, end), nil
}

// parseGenericArgs scans from an opening < to its matching >, and
// returns the offset just past the closer.
func (p *parser) parseGenericArgs() (int, error) {
	depth := 0
	for {
		t := p.cur()
		if t.Kind == TokenEOF {
			return 0, &SyntaxError{Pos: t.Pos, Msg: "unterminated generic arguments"}
		}
		p.advance()
		if t.Kind != TokenPunct {
			continue
		}
		switch t.Text {
		case "<":
			depth++
		case ">":
			depth--
			if depth == 0 {
				return t.end(), nil
			}
		}
	}
}

// parseStruct reads struct Name { field: Type, ... }.
func (p *parser) parseStruct(attrs []Attribute, start Token) (*Struct, error) {
	p.advance()
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	st := &Struct{name: nameTok.Text, attrs: attrs}
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	for !p.at("}") {
		if p.cur().Kind == TokenEOF {
			return nil, &SyntaxError{Pos: p.cur().Pos, Msg: fmt.Sprintf("unterminated struct %s", st.name)}
		}
		fieldName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		st.fields = append(st.fields, &Field{name: fieldName.Text, typ: typ})
		if p.at(",") {
			p.advance()
			continue
		}
		if !p.at("}") {
			t := p.cur()
			return nil, &SyntaxError{Pos: t.Pos, Msg: fmt.Sprintf("expected \",\" or \"}\" in struct %s, found %q", st.name, t.Text)}
		}
	}
	end := p.cur().end()
	p.advance()
	st.node = node{src: p.src, span: span{start.Pos.Offset, end}, pos: start.Pos}
	return st, nil
}

// parseRawItem scans one opaque item: to a semicolon at bracket depth
// zero, or to the brace that returns the depth to zero.
func (p *parser) parseRawItem(start Token) (*RawItem, error) {
	depth := 0
	for {
		t := p.cur()
		if t.Kind == TokenEOF {
			return nil, &SyntaxError{Pos: t.Pos, Msg: "unterminated item"}
		}
		p.advance()
		if t.Kind != TokenPunct {
			continue
		}
		switch t.Text {
		case "{", "(", "[":
			depth++
		case ")", "]":
			depth--
		case "}":
			depth--
			if depth == 0 {
				return p.rawItem(start, t.end()), nil
			}
			if depth < 0 {
				return nil, &SyntaxError{Pos: t.Pos, Msg: "unexpected \"}\""}
			}
		case ";":
			if depth == 0 {
				return p.rawItem(start, t.end()), nil
			}
		}
	}
}

// skipBalancedBraces scans past a block whose opening brace was just
// consumed, and returns the offset just past the closing brace.
func (p *parser) skipBalancedBraces() (int, error) {
	depth := 1
	for {
		t := p.cur()
		if t.Kind == TokenEOF {
			return 0, &SyntaxError{Pos: t.Pos, Msg: "unterminated block"}
		}
		p.advance()
		if t.Kind != TokenPunct {
			continue
		}
		switch t.Text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return t.end(), nil
			}
		}
	}
}

// typeRef builds a TypeRef spanning from a start token to an end
// offset.
func (p *parser) typeRef(start Token, end int) *TypeRef {
	return &TypeRef{node{src: p.src, span: span{start.Pos.Offset, end}, pos: start.Pos}}
}

// rawItem builds a RawItem spanning from a start token to an end
// offset.
func (p *parser) rawItem(start Token, end int) *RawItem {
	return &RawItem{node{src: p.src, span: span{start.Pos.Offset, end}, pos: start.Pos}}
}
