package starkgen

import (
	"fmt"
	"strings"
)

// GeneratedFileName is the name of every file Expand produces.
const GeneratedFileName = "contract"

// Outcome classifies what expansion decided about a module.
type Outcome int

const (
	// OutcomeNoOp means the module is not a contract and is left alone.
	OutcomeNoOp Outcome = iota

	// OutcomeReplace means generated code replaces the module.
	OutcomeReplace

	// OutcomeReject means the module is a contract that cannot be
	// expanded. It stays in place and diagnostics say why.
	OutcomeReject
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoOp:
		return "no-op"
	case OutcomeReplace:
		return "replace"
	case OutcomeReject:
		return "reject"
	default:
		return "unknown"
	}
}

// GeneratedFile is the replacement content produced for a contract
// module.
type GeneratedFile struct {
	// Name identifies the generated unit. Expand always uses
	// GeneratedFileName.
	Name string

	// Content is the formatted generated source text.
	Content string

	// Aux carries position mapping data for downstream consumers.
	Aux any
}

// TrivialAux marks generated content whose positions map one-to-one
// onto the generated text itself.
type TrivialAux struct{}

// Result is the outcome of expanding one module.
type Result struct {
	// Outcome classifies the result.
	Outcome Outcome

	// Generated is the replacement content. It is non-nil exactly when
	// Outcome is OutcomeReplace.
	Generated *GeneratedFile

	// Diagnostics lists the problems found, in source order.
	Diagnostics []Diagnostic
}

// DiscardOriginal reports whether the original module should be
// dropped in favor of the generated content.
func (r Result) DiscardOriginal() bool {
	return r.Outcome == OutcomeReplace
}

// Expander rewrites contract modules into their expanded form. An
// Expander holds no state across calls and is safe for concurrent use.
type Expander struct {
	hash   HashFunc
	format FormatFunc
}

// NewExpander creates an Expander. Without options it derives storage
// addresses with StarknetKeccak and formats output with Format.
func NewExpander(opts ...ExpanderOption) *Expander {
	e := &Expander{
		hash:   StarknetKeccak,
		format: Format,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand rewrites one module. Modules without the contract marker are
// left alone. Declaration-only contract modules are rejected. For all
// other contract modules Expand produces a replacement that carries
// every original item verbatim plus the introspection trait, the entry
// point wrappers, and the storage accessor modules.
//
// Problems inside the module never abort the scan: every failing entry
// point contributes its diagnostics and the remaining items still
// generate. The replacement stands even when diagnostics are present.
func (e *Expander) Expand(m Module) Result {
	if !m.HasMarker(MarkerContract) {
		return Result{Outcome: OutcomeNoOp}
	}

	items, ok := m.Body()
	if !ok {
		return Result{
			Outcome: OutcomeReject,
			Diagnostics: []Diagnostic{{
				Message: "Contracts without body are not supported.",
				Pos:     m.Pos(),
			}},
		}
	}

	var (
		diagnostics []Diagnostic
		storageCode string
		body        []string
		decls       []string
		wrappers    []string
	)
	for _, item := range items {
		switch it := item.(type) {
		case Function:
			if it.HasMarker(MarkerExternal) || it.HasMarker(MarkerView) {
				decls = append(decls, it.DeclarationText()+";")
				wrapper, diags := GenerateEntryPointWrapper(it)
				if len(diags) > 0 {
					diagnostics = append(diagnostics, diags...)
				} else {
					wrappers = append(wrappers, wrapper)
				}
			}
		case Struct:
			if it.Name() == StorageStructName {
				// A later Storage struct replaces an earlier one.
				storageCode = GenerateStorageAccessors(it, e.hash)
			}
		}
		body = append(body, item.Text())
	}

	assembled := assembleContract(m.Name(), storageCode, body, decls, wrappers)
	return Result{
		Outcome: OutcomeReplace,
		Generated: &GeneratedFile{
			Name:    GeneratedFileName,
			Content: e.format(assembled),
			Aux:     TrivialAux{},
		},
		Diagnostics: diagnostics,
	}
}

// assembleContract joins the storage accessor modules and the rewritten
// contract module into one source text. The accessors sit before the
// module as siblings; the module keeps every original item and gains
// the introspection trait and the wrapper module. The text is not yet
// formatted.
func assembleContract(name, storageCode string, body, decls, wrappers []string) string {
	var b strings.Builder
	b.WriteString(storageCode)
	b.WriteString("\n")
	fmt.Fprintf(&b, "#[%s]\n", MarkerGeneratedContract)
	fmt.Fprintf(&b, "mod %s {\n", name)
	for _, text := range body {
		b.WriteString(text)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "trait %s {\n", ABITraitName)
	for _, decl := range decls {
		b.WriteString(decl)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	fmt.Fprintf(&b, "mod %s {\n", ExternalModuleName)
	for _, wrapper := range wrappers {
		b.WriteString(wrapper)
	}
	b.WriteString("}\n")
	b.WriteString("}\n")
	return b.String()
}
