package ir

// TypeEntry is one scalar element type of the typed RMA API.
type TypeEntry struct {
	// Spelling is the C++ type as written in a declaration, e.g. "unsigned long long".
	Spelling string `validate:"required,cspelling"`

	// ShortName is the token used to build symbol names, e.g. "ulonglong".
	// It must be a valid C identifier and unique across the table.
	ShortName string `validate:"required,cident"`
}

// String returns the C++ spelling of the type.
func (t TypeEntry) String() string {
	return t.Spelling
}

// types is the element type table in emission order.
var types = [...]TypeEntry{
	{Spelling: "float", ShortName: "float"},
	{Spelling: "double", ShortName: "double"},
	{Spelling: "char", ShortName: "char"},
	{Spelling: "signed char", ShortName: "schar"},
	{Spelling: "short", ShortName: "short"},
	{Spelling: "int", ShortName: "int"},
	{Spelling: "long", ShortName: "long"},
	{Spelling: "long long", ShortName: "longlong"},
	{Spelling: "unsigned char", ShortName: "uchar"},
	{Spelling: "unsigned short", ShortName: "ushort"},
	{Spelling: "unsigned int", ShortName: "uint"},
	{Spelling: "unsigned long", ShortName: "ulong"},
	{Spelling: "unsigned long long", ShortName: "ulonglong"},
}

// Types returns the element types in emission order.
// The returned slice is a copy; callers may modify it freely.
func Types() []TypeEntry {
	out := make([]TypeEntry, len(types))
	copy(out, types[:])
	return out
}

// LookupType returns the entry with the given short name.
func LookupType(shortName string) (TypeEntry, bool) {
	for _, t := range types {
		if t.ShortName == shortName {
			return t, true
		}
	}
	return TypeEntry{}, false
}
