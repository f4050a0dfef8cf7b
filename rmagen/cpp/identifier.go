package cpp

import (
	"strings"
)

// C++ keywords that can never be used as an identifier.
var reservedWords = map[string]bool{
	"alignas":          true,
	"alignof":          true,
	"auto":             true,
	"bool":             true,
	"break":            true,
	"case":             true,
	"catch":            true,
	"char":             true,
	"class":            true,
	"const":            true,
	"constexpr":        true,
	"continue":         true,
	"default":          true,
	"delete":           true,
	"do":               true,
	"double":           true,
	"else":             true,
	"enum":             true,
	"explicit":         true,
	"extern":           true,
	"false":            true,
	"float":            true,
	"for":              true,
	"friend":           true,
	"goto":             true,
	"if":               true,
	"inline":           true,
	"int":              true,
	"long":             true,
	"namespace":        true,
	"new":              true,
	"nullptr":          true,
	"operator":         true,
	"private":          true,
	"protected":        true,
	"public":           true,
	"return":           true,
	"short":            true,
	"signed":           true,
	"sizeof":           true,
	"static":           true,
	"static_assert":    true,
	"struct":           true,
	"switch":           true,
	"template":         true,
	"this":             true,
	"throw":            true,
	"true":             true,
	"try":              true,
	"typedef":          true,
	"typename":         true,
	"union":            true,
	"unsigned":         true,
	"using":            true,
	"virtual":          true,
	"void":             true,
	"volatile":         true,
	"while":            true,
	"thread_local":     true,
	"decltype":         true,
	"noexcept":         true,
	"reinterpret_cast": true,
}

// isIdentifier reports whether name is a usable C++ identifier.
func isIdentifier(name string) bool {
	if name == "" || reservedWords[name] {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// guardToken derives an include-guard macro from an include path:
// "library/include/rocshmem/RMA_X.hpp" becomes "LIBRARY_INCLUDE_ROCSHMEM_RMA_X_HPP".
func guardToken(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for _, r := range strings.ToUpper(path) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
