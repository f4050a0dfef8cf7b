package cpp

import (
	"github.com/rocshmem/shmemgen/rmagen/ir"
)

// Symbols holds the two names generated for one (family, granularity, type) triple.
type Symbols struct {
	// Context is the context-qualified name, e.g. "rocshmem_ctx_int_put_wave".
	Context string

	// Default is the default-context name, e.g. "rocshmem_int_put_wave".
	Default string
}

// SymbolNames builds the symbol pair for a triple:
//
//	rocshmem_ctx_<type>_<family>_<granularity>
//	rocshmem_<type>_<family>_<granularity>
func SymbolNames(f ir.OperationFamily, g ir.Granularity, t ir.TypeEntry) Symbols {
	suffix := t.ShortName + "_" + f.Fragment() + "_" + g.Tag()
	return Symbols{
		Context: symbolPrefix + "_ctx_" + suffix,
		Default: symbolPrefix + "_" + suffix,
	}
}

// symbolTable tracks generated names so a collision fails generation
// instead of producing a header with duplicate declarations.
type symbolTable struct {
	owners map[string]string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{owners: make(map[string]string)}
}

// reserve records name as owned by owner.
func (s *symbolTable) reserve(name, owner string) error {
	if prev, ok := s.owners[name]; ok {
		return &ir.ValidationError{
			Code:    "symbol_collision",
			Message: "symbol " + name + " generated for both " + prev + " and " + owner,
		}
	}
	s.owners[name] = owner
	return nil
}

// count returns the number of reserved names.
func (s *symbolTable) count() int {
	return len(s.owners)
}
