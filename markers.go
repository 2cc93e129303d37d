package starkgen

// Marker identifies a source attribute recognized during expansion.
// The vocabulary is closed and matching is exact and case sensitive.
type Marker int

const (
	// MarkerContract marks a module for expansion.
	MarkerContract Marker = iota

	// MarkerExternal marks a function as a callable entry point.
	MarkerExternal

	// MarkerView marks a read-only entry point. Expansion treats it
	// exactly like MarkerExternal.
	MarkerView

	// MarkerGeneratedContract marks a module that expansion produced.
	MarkerGeneratedContract
)

// String returns the marker's source spelling.
func (m Marker) String() string {
	switch m {
	case MarkerContract:
		return "contract"
	case MarkerExternal:
		return "external"
	case MarkerView:
		return "view"
	case MarkerGeneratedContract:
		return "generated_contract"
	default:
		return "unknown"
	}
}

// Modifier identifies a parameter modifier.
type Modifier int

const (
	// ModifierUnknown is any modifier outside the recognized set.
	ModifierUnknown Modifier = iota

	// ModifierRef marks a parameter passed by reference.
	ModifierRef

	// ModifierMut marks a mutable parameter.
	ModifierMut
)

// String returns the modifier's source spelling.
func (m Modifier) String() string {
	switch m {
	case ModifierRef:
		return "ref"
	case ModifierMut:
		return "mut"
	default:
		return "unknown"
	}
}

// Names fixed by the expanded output shape.
const (
	// StorageStructName is the struct name that triggers storage
	// accessor generation.
	StorageStructName = "Storage"

	// ABITraitName is the introspection trait emitted into every
	// expanded module.
	ABITraitName = "__abi"

	// ExternalModuleName is the wrapper module emitted into every
	// expanded module.
	ExternalModuleName = "__external"
)

// IsByRef reports whether a modifier list marks a parameter as passed
// by reference: exactly one modifier, and that modifier is ref.
func IsByRef(mods []Modifier) bool {
	return len(mods) == 1 && mods[0] == ModifierRef
}
