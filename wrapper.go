package starkgen

import (
	"fmt"
	"strings"
)

// Panic payloads baked into generated wrappers. Each is appended to a
// fresh felt array and passed to panic.
const (
	// OutOfGasPayload is raised when gas cannot be acquired.
	OutOfGasPayload = "'Out of gas'"

	// InputTooShortPayload is raised when the input buffer runs out
	// before every parameter is deserialized.
	InputTooShortPayload = "'Input too short for arguments'"

	// InputTooLongPayload is raised when input remains after every
	// parameter was deserialized.
	InputTooLongPayload = "'Input too long for arguments'"
)

// wrapperArg is one parameter the wrapper deserializes and forwards.
type wrapperArg struct {
	name  string
	serde SerdeEntry
	byRef bool
}

// GenerateEntryPointWrapper emits the callable wrapper for an entry
// point function. The wrapper takes the flat input buffer, acquires
// gas, deserializes every parameter in declaration order, requires the
// buffer to be exactly consumed, forwards to the original function,
// and serializes by-reference parameters and the return value into a
// fresh output buffer.
//
// When any parameter or return type has no registered serialization,
// no text is produced and one diagnostic per failing type is returned,
// in declaration order with the return type last.
func GenerateEntryPointWrapper(fn Function) (string, []Diagnostic) {
	var diagnostics []Diagnostic

	var args []wrapperArg
	for _, p := range fn.Params() {
		typeName := p.Type().Text()
		entry, ok := LookupSerde(typeName)
		if !ok {
			diagnostics = append(diagnostics, Diagnostic{
				Message: fmt.Sprintf("Could not find serialization for type `%s`", typeName),
				Pos:     p.Type().Pos(),
			})
			continue
		}
		args = append(args, wrapperArg{
			name:  "__arg_" + p.Name(),
			serde: entry,
			byRef: IsByRef(p.Modifiers()),
		})
	}

	var retSerde SerdeEntry
	hasRet := false
	if ret, ok := fn.ReturnType(); ok {
		typeName := ret.Text()
		entry, found := LookupSerde(typeName)
		if !found {
			diagnostics = append(diagnostics, Diagnostic{
				Message: fmt.Sprintf("Could not find serialization for type `%s`", typeName),
				Pos:     ret.Pos(),
			})
		} else {
			retSerde = entry
			hasRet = true
		}
	}

	if len(diagnostics) > 0 {
		return "", diagnostics
	}

	w := &sourceWriter{}
	w.line("fn %s(mut data: Array<felt>) -> Array<felt> {", fn.Name())
	w.in()
	writeGasCheck(w)
	for _, arg := range args {
		writeArgBinding(w, arg)
	}
	writeEmptyInputCheck(w)

	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = arg.name
	}
	call := fmt.Sprintf("super::%s(%s)", fn.Name(), strings.Join(names, ", "))
	if hasRet {
		w.line("let res = %s;", call)
	} else {
		w.line("%s;", call)
	}

	w.line("let mut arr = array_new::<felt>();")
	for _, arg := range args {
		if arg.byRef {
			w.line("%s(arr, %s);", arg.serde.Serializer, arg.name)
		}
	}
	if hasRet {
		w.line("%s(arr, res);", retSerde.Serializer)
	}
	w.line("arr")
	w.out()
	w.line("}")
	return w.String(), nil
}

// writeGasCheck emits the gas acquisition that opens every wrapper.
func writeGasCheck(w *sourceWriter) {
	w.line("match get_gas() {")
	w.in()
	w.line("Option::Some(_) => {},")
	w.line("Option::None(_) => {")
	w.in()
	writePanic(w, OutOfGasPayload, true)
	w.out()
	w.line("},")
	w.out()
	w.line("}")
}

// writeArgBinding emits the deserialization of one parameter into a
// wrapper-local binding. By-reference parameters bind mutable so they
// can be serialized back after the call.
func writeArgBinding(w *sourceWriter, arg wrapperArg) {
	mut := ""
	if arg.byRef {
		mut = "mut "
	}
	w.line("let %s%s = match %s(data) {", mut, arg.name, arg.serde.Deserializer)
	w.in()
	w.line("Option::Some(x) => x,")
	w.line("Option::None(()) => {")
	w.in()
	writePanic(w, InputTooShortPayload, false)
	w.out()
	w.line("},")
	w.out()
	w.line("};")
}

// writeEmptyInputCheck emits the rejection of unconsumed input. The
// system implicit is forced so the panic carries the same implicits as
// the success path.
func writeEmptyInputCheck(w *sourceWriter) {
	w.line("if array_len::<felt>(data) != 0_u128 {")
	w.in()
	w.line("starknet::use_system_implicit();")
	writePanic(w, InputTooLongPayload, true)
	w.out()
	w.line("}")
}

// writePanic emits a panic with a one-element felt array payload. The
// trailing semicolon is dropped in expression position.
func writePanic(w *sourceWriter, payload string, statement bool) {
	w.line("let mut err_data = array_new::<felt>();")
	w.line("array_append::<felt>(err_data, %s);", payload)
	if statement {
		w.line("panic(err_data);")
	} else {
		w.line("panic(err_data)")
	}
}
