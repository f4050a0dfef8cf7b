package cpp

import (
	"strings"

	"github.com/rocshmem/shmemgen/rmagen/ir"
	"github.com/rocshmem/shmemgen/rmagen/sink"
)

const (
	// HeaderFileName is the name of the generated header inside the output directory.
	HeaderFileName = "rocshmem_RMA_X.hpp"

	// GuardPath is the include path the guard macro is derived from.
	// It follows the library's include layout, not the emitted file name.
	GuardPath = "library/include/rocshmem/RMA_X.hpp"

	// Namespace encloses every generated declaration.
	Namespace = "rocshmem"

	// ContextType is the opaque context handle taken by the context-qualified form.
	ContextType = "rocshmem_ctx_t"

	symbolPrefix = "rocshmem"
	qualifiers   = "__device__ ATTR_NO_INLINE"
	returnType   = "void"
)

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives the generated header.
	Sink sink.OutputSink

	// Banner is copied verbatim to the top of the header. It may be empty.
	Banner string
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// Declarations lists every emitted declaration unit in output order.
	Declarations []Declaration
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// Param is one parameter of a generated prototype.
type Param struct {
	Type    string
	Name    string
	Pointer bool
	Const   bool
}

// String renders the parameter the way the header spells it, e.g. "const int *source".
func (p Param) String() string {
	var b strings.Builder
	if p.Const {
		b.WriteString("const ")
	}
	b.WriteString(p.Type)
	if p.Pointer {
		b.WriteString(" *")
	} else {
		b.WriteString(" ")
	}
	b.WriteString(p.Name)
	return b.String()
}

// Prototype is a single function declaration.
type Prototype struct {
	Name   string
	Params []Param

	// WrapAt is the index of the first parameter moved to a continuation line.
	// Zero keeps the whole parameter list on one line.
	WrapAt int
}

// Signature returns the name and parameter list, e.g.
// "rocshmem_int_put_wave(int *dest, const int *source, size_t nelems, int pe)".
func (p Prototype) Signature() string {
	parts := make([]string, len(p.Params))
	for i, param := range p.Params {
		parts[i] = param.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}

// String returns the complete one-line declaration including qualifiers.
func (p Prototype) String() string {
	return qualifiers + " " + returnType + " " + p.Signature() + ";"
}

// Declaration is the generated unit for one (family, granularity, type) triple:
// a context-qualified prototype and its default-context twin.
type Declaration struct {
	Family      ir.OperationFamily
	Granularity ir.Granularity
	Type        ir.TypeEntry

	Context Prototype
	Default Prototype
}

// Key identifies the triple, e.g. "Put/PerWave/int".
func (d Declaration) Key() string {
	return d.Family.String() + "/" + d.Granularity.String() + "/" + d.Type.ShortName
}
