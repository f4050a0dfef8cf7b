package cpp

import (
	"fmt"

	"github.com/rocshmem/shmemgen/rmagen/ir"
)

// ctxWrapAt puts nelems and pe on the continuation line of the context-qualified form.
const ctxWrapAt = 3

// NewDeclaration builds the declaration unit for one triple.
func NewDeclaration(f ir.OperationFamily, g ir.Granularity, t ir.TypeEntry) (Declaration, error) {
	if !f.Valid() {
		return Declaration{}, fmt.Errorf("unknown operation family %d", int(f))
	}
	if !g.Valid() {
		return Declaration{}, fmt.Errorf("unknown granularity %d", int(g))
	}
	if err := t.Validate(); err != nil {
		return Declaration{}, err
	}

	names := SymbolNames(f, g, t)
	for _, name := range []string{names.Context, names.Default} {
		if !isIdentifier(name) {
			return Declaration{}, &ir.ValidationError{
				Code:    "invalid_symbol",
				Message: fmt.Sprintf("symbol %q is not a valid identifier", name),
			}
		}
	}

	params := transferParams(t)
	ctxParams := make([]Param, 0, len(params)+1)
	ctxParams = append(ctxParams, Param{Type: ContextType, Name: "ctx"})
	ctxParams = append(ctxParams, params...)

	return Declaration{
		Family:      f,
		Granularity: g,
		Type:        t,
		Context:     Prototype{Name: names.Context, Params: ctxParams, WrapAt: ctxWrapAt},
		Default:     Prototype{Name: names.Default, Params: params},
	}, nil
}

// transferParams returns the parameters shared by both forms.
func transferParams(t ir.TypeEntry) []Param {
	return []Param{
		{Type: t.Spelling, Name: "dest", Pointer: true},
		{Type: t.Spelling, Name: "source", Pointer: true, Const: true},
		{Type: "size_t", Name: "nelems"},
		{Type: "int", Name: "pe"},
	}
}

// Declarations returns every declaration unit in output order:
// family, then granularity, then element type.
func Declarations() ([]Declaration, error) {
	return enumerate(ir.Families(), ir.Granularities(), ir.Types())
}

func enumerate(fams []ir.OperationFamily, grans []ir.Granularity, types []ir.TypeEntry) ([]Declaration, error) {
	symbols := newSymbolTable()
	decls := make([]Declaration, 0, len(fams)*len(grans)*len(types))

	for _, f := range fams {
		for _, g := range grans {
			for _, t := range types {
				d, err := NewDeclaration(f, g, t)
				if err != nil {
					return nil, fmt.Errorf("%s/%s/%s: %w", f, g, t.ShortName, err)
				}
				if err := symbols.reserve(d.Context.Name, d.Key()); err != nil {
					return nil, err
				}
				if err := symbols.reserve(d.Default.Name, d.Key()); err != nil {
					return nil, err
				}
				decls = append(decls, d)
			}
		}
	}

	if symbols.count() != 2*len(decls) {
		return nil, fmt.Errorf("expected %d symbols, reserved %d", 2*len(decls), symbols.count())
	}
	return decls, nil
}
