package starkgen

// Hand-built syntax nodes for unit tests. They double as a check that
// the capability interfaces are enough to drive expansion.

type fakeType struct {
	text string
	pos  Pos
}

func (t fakeType) Text() string { return t.text }
func (t fakeType) Pos() Pos     { return t.pos }

type fakeParam struct {
	name string
	typ  fakeType
	mods []Modifier
}

func (p fakeParam) Name() string          { return p.name }
func (p fakeParam) Type() TypeExpr        { return p.typ }
func (p fakeParam) Modifiers() []Modifier { return p.mods }

type fakeFunction struct {
	name    string
	markers []Marker
	decl    string
	params  []Param
	ret     *fakeType
	text    string
	pos     Pos
}

func (f fakeFunction) Text() string { return f.text }
func (f fakeFunction) Pos() Pos     { return f.pos }
func (f fakeFunction) Name() string { return f.name }

func (f fakeFunction) HasMarker(m Marker) bool {
	for _, have := range f.markers {
		if have == m {
			return true
		}
	}
	return false
}

func (f fakeFunction) DeclarationText() string { return f.decl }
func (f fakeFunction) Params() []Param         { return f.params }

func (f fakeFunction) ReturnType() (TypeExpr, bool) {
	if f.ret == nil {
		return nil, false
	}
	return *f.ret, true
}

type fakeField struct {
	name string
	typ  fakeType
}

func (f fakeField) Name() string   { return f.name }
func (f fakeField) Type() TypeExpr { return f.typ }

type fakeStruct struct {
	name   string
	fields []Field
	text   string
	pos    Pos
}

func (s fakeStruct) Text() string    { return s.text }
func (s fakeStruct) Pos() Pos        { return s.pos }
func (s fakeStruct) Name() string    { return s.name }
func (s fakeStruct) Fields() []Field { return s.fields }

type fakeRawItem struct {
	text string
	pos  Pos
}

func (r fakeRawItem) Text() string { return r.text }
func (r fakeRawItem) Pos() Pos     { return r.pos }

type fakeModule struct {
	name    string
	markers []Marker
	items   []Item
	noBody  bool
	text    string
	pos     Pos
}

func (m fakeModule) Text() string { return m.text }
func (m fakeModule) Pos() Pos     { return m.pos }
func (m fakeModule) Name() string { return m.name }

func (m fakeModule) HasMarker(mk Marker) bool {
	for _, have := range m.markers {
		if have == mk {
			return true
		}
	}
	return false
}

func (m fakeModule) Body() ([]Item, bool) {
	if m.noBody {
		return nil, false
	}
	return m.items, true
}

// Interface checks for the fakes themselves.
var (
	_ Module   = fakeModule{}
	_ Function = fakeFunction{}
	_ Struct   = fakeStruct{}
	_ Param    = fakeParam{}
	_ Field    = fakeField{}
	_ TypeExpr = fakeType{}
	_ Item     = fakeRawItem{}
)
