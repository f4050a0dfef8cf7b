package cpp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rocshmem/shmemgen/rmagen/ir"
)

// Emitter handles C++ header emission for declaration units.
type Emitter struct {
	banner string
	indent string
	guard  string
}

// NewEmitter returns an Emitter that prepends banner verbatim.
func NewEmitter(banner string) *Emitter {
	return &Emitter{
		banner: banner,
		indent: "    ",
		guard:  guardToken(GuardPath),
	}
}

// Guard returns the include-guard macro.
func (e *Emitter) Guard() string {
	return e.guard
}

// EmitDocument assembles the complete header: banner, include guard,
// namespace, and one block per operation family in fixed order.
func (e *Emitter) EmitDocument(decls []Declaration) ([]byte, error) {
	if !isIdentifier(e.guard) {
		return nil, fmt.Errorf("invalid include guard %q", e.guard)
	}

	var buf bytes.Buffer
	buf.WriteString(e.banner)

	buf.WriteString("\n#ifndef ")
	buf.WriteString(e.guard)
	buf.WriteString("\n#define ")
	buf.WriteString(e.guard)
	buf.WriteString("\n\nnamespace ")
	buf.WriteString(Namespace)
	buf.WriteString(" {\n")

	for _, f := range ir.Families() {
		if err := e.EmitFamily(&buf, f, decls); err != nil {
			return nil, err
		}
	}

	buf.WriteString("\n}  // namespace ")
	buf.WriteString(Namespace)
	buf.WriteString("\n\n#endif  // ")
	buf.WriteString(e.guard)
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// EmitFamily emits the block for one operation family: for each granularity,
// a documentation comment followed by that granularity's declarations.
// All per-wave declarations precede all per-workgroup declarations.
func (e *Emitter) EmitFamily(buf *bytes.Buffer, f ir.OperationFamily, decls []Declaration) error {
	for _, g := range ir.Granularities() {
		var matched []Declaration
		for _, d := range decls {
			if d.Family == f && d.Granularity == g {
				matched = append(matched, d)
			}
		}
		if len(matched) == 0 {
			return fmt.Errorf("no declarations for %s/%s", f, g)
		}

		if err := e.EmitComment(buf, f, g); err != nil {
			return err
		}
		for _, d := range matched {
			e.EmitDeclaration(buf, d)
		}
	}
	return nil
}

// EmitComment emits the Doxygen block that precedes a granularity group.
func (e *Emitter) EmitComment(buf *bytes.Buffer, f ir.OperationFamily, g ir.Granularity) error {
	paragraphs, err := renderProse(f, g)
	if err != nil {
		return err
	}

	buf.WriteString("\n/**\n")
	for i, p := range paragraphs {
		if i > 0 {
			buf.WriteString(" *\n")
		}
		first := " * "
		if i == 0 {
			first = " * @brief "
		}
		for _, line := range wrapLines(p, first, " * ", commentWidth) {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	buf.WriteString(" *\n")
	for _, line := range paramDocs {
		buf.WriteString(" * ")
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	buf.WriteString(" *\n")
	buf.WriteString(" * @return void.\n")
	buf.WriteString(" */\n")
	return nil
}

// EmitDeclaration emits both prototypes of a unit followed by a blank line.
func (e *Emitter) EmitDeclaration(buf *bytes.Buffer, d Declaration) {
	e.emitPrototype(buf, d.Context)
	e.emitPrototype(buf, d.Default)
	buf.WriteString("\n")
}

// emitPrototype writes the qualifiers and name on the first line and the
// parameters on indented continuation lines.
func (e *Emitter) emitPrototype(buf *bytes.Buffer, p Prototype) {
	buf.WriteString(qualifiers)
	buf.WriteString(" ")
	buf.WriteString(returnType)
	buf.WriteString(" ")
	buf.WriteString(p.Name)
	buf.WriteString("(\n")

	params := make([]string, len(p.Params))
	for i, param := range p.Params {
		params[i] = param.String()
	}

	buf.WriteString(e.indent)
	if p.WrapAt > 0 && p.WrapAt < len(params) {
		buf.WriteString(strings.Join(params[:p.WrapAt], ", "))
		buf.WriteString(",\n")
		buf.WriteString(e.indent)
		buf.WriteString(strings.Join(params[p.WrapAt:], ", "))
	} else {
		buf.WriteString(strings.Join(params, ", "))
	}
	buf.WriteString(");\n")
}
