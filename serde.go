package starkgen

import "strings"

// SerdeEntry names the serialization and deserialization functions for
// one supported entry point type.
type SerdeEntry struct {
	// TypeName is the source spelling of the type.
	TypeName string

	// Serializer is the function that appends a value of this type to
	// a felt array.
	Serializer string

	// Deserializer is the function that consumes a value of this type
	// from a felt array.
	Deserializer string
}

// serdeTable is the closed set of types usable in entry point
// signatures. Supporting a new type means adding a row.
var serdeTable = []SerdeEntry{
	{TypeName: "felt", Serializer: "serde::serialize_felt", Deserializer: "serde::deserialize_felt"},
	{TypeName: "bool", Serializer: "serde::serialize_bool", Deserializer: "serde::deserialize_bool"},
	{TypeName: "u128", Serializer: "serde::serialize_u128", Deserializer: "serde::deserialize_u128"},
	{TypeName: "u256", Serializer: "serde::serialize_u256", Deserializer: "serde::deserialize_u256"},
	{TypeName: "Array<felt>", Serializer: "serde::serialize_array_felt", Deserializer: "serde::deserialize_array_felt"},
}

// LookupSerde returns the serde functions for a type. The name is
// trimmed of surrounding whitespace before matching; matching is
// otherwise exact and case sensitive.
func LookupSerde(typeName string) (SerdeEntry, bool) {
	name := strings.TrimSpace(typeName)
	for _, e := range serdeTable {
		if e.TypeName == name {
			return e, true
		}
	}
	return SerdeEntry{}, false
}
