package starkgen

// GenerateStorageAccessors emits one accessor module per field of a
// storage struct, in field order. Each module exposes read and write
// functions bound to the storage address derived by hashing the field
// name. Field types take no part in generation.
func GenerateStorageAccessors(st Struct, hash HashFunc) string {
	w := &sourceWriter{}
	for _, f := range st.Fields() {
		addr := StorageAddressLiteral(hash([]byte(f.Name())))
		w.line("mod %s {", f.Name())
		w.in()
		w.line("fn read() -> felt {")
		w.in()
		w.line("starknet::storage_read_syscall(starknet::storage_address_const::<%s>())", addr)
		w.out()
		w.line("}")
		w.line("fn write(value: felt) -> Result<(), felt> {")
		w.in()
		w.line("starknet::storage_write_syscall(starknet::storage_address_const::<%s>(), value)", addr)
		w.out()
		w.line("}")
		w.out()
		w.line("}")
	}
	return w.String()
}
