package cpp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocshmem/shmemgen/rmagen/ir"
)

func TestSymbolNames(t *testing.T) {
	tests := []struct {
		name string
		f    ir.OperationFamily
		g    ir.Granularity
		t    string
		want Symbols
	}{
		{"put wave int", ir.Put, ir.PerWave, "int", Symbols{"rocshmem_ctx_int_put_wave", "rocshmem_int_put_wave"}},
		{"get wg float", ir.Get, ir.PerWorkgroup, "float", Symbols{"rocshmem_ctx_float_get_wg", "rocshmem_float_get_wg"}},
		{"put nbi wave ulonglong", ir.PutNonBlocking, ir.PerWave, "ulonglong", Symbols{"rocshmem_ctx_ulonglong_put_nbi_wave", "rocshmem_ulonglong_put_nbi_wave"}},
		{"get nbi wg schar", ir.GetNonBlocking, ir.PerWorkgroup, "schar", Symbols{"rocshmem_ctx_schar_get_nbi_wg", "rocshmem_schar_get_nbi_wg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te, ok := ir.LookupType(tt.t)
			require.True(t, ok)
			assert.Equal(t, tt.want, SymbolNames(tt.f, tt.g, te))
		})
	}
}

func TestNewDeclaration_IntPutWave(t *testing.T) {
	te, _ := ir.LookupType("int")
	d, err := NewDeclaration(ir.Put, ir.PerWave, te)
	require.NoError(t, err)

	assert.Equal(t,
		"rocshmem_ctx_int_put_wave(rocshmem_ctx_t ctx, int *dest, const int *source, size_t nelems, int pe)",
		d.Context.Signature())
	assert.Equal(t,
		"rocshmem_int_put_wave(int *dest, const int *source, size_t nelems, int pe)",
		d.Default.Signature())
	assert.Equal(t,
		"__device__ ATTR_NO_INLINE void rocshmem_int_put_wave(int *dest, const int *source, size_t nelems, int pe);",
		d.Default.String())
	assert.Equal(t, "Put/PerWave/int", d.Key())

	// No other spelling leaks into the pair.
	for _, p := range []Prototype{d.Context, d.Default} {
		for _, param := range p.Params {
			assert.NotContains(t, param.Type, "unsigned")
			assert.NotContains(t, param.Type, "long")
		}
	}
}

func TestNewDeclaration_SharedShape(t *testing.T) {
	for _, te := range ir.Types() {
		d, err := NewDeclaration(ir.GetNonBlocking, ir.PerWorkgroup, te)
		require.NoError(t, err)

		require.Len(t, d.Context.Params, 5)
		require.Len(t, d.Default.Params, 4)
		assert.Equal(t, Param{Type: ContextType, Name: "ctx"}, d.Context.Params[0])
		assert.Equal(t, d.Default.Params, d.Context.Params[1:])

		assert.Equal(t, "const "+te.Spelling+" *source", d.Default.Params[1].String())
		assert.Equal(t, "size_t nelems", d.Default.Params[2].String())
		assert.Equal(t, "int pe", d.Default.Params[3].String())
	}
}

func TestNewDeclaration_Invalid(t *testing.T) {
	te, _ := ir.LookupType("int")

	tests := []struct {
		name string
		f    ir.OperationFamily
		g    ir.Granularity
		te   ir.TypeEntry
	}{
		{"unknown family", ir.OperationFamily(99), ir.PerWave, te},
		{"unknown granularity", ir.Put, ir.Granularity(99), te},
		{"empty spelling", ir.Put, ir.PerWave, ir.TypeEntry{ShortName: "x"}},
		{"bad short name", ir.Put, ir.PerWave, ir.TypeEntry{Spelling: "int", ShortName: "a-b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeclaration(tt.f, tt.g, tt.te)
			assert.Error(t, err)
		})
	}
}

func TestDeclarations_Complete(t *testing.T) {
	decls, err := Declarations()
	require.NoError(t, err)

	types := ir.Types()
	require.Len(t, decls, len(ir.Families())*len(ir.Granularities())*len(types))

	seen := make(map[string]bool)
	i := 0
	for _, f := range ir.Families() {
		for _, g := range ir.Granularities() {
			for _, te := range types {
				d := decls[i]
				assert.Equal(t, f, d.Family)
				assert.Equal(t, g, d.Granularity)
				assert.Equal(t, te, d.Type)
				i++

				for _, name := range []string{d.Context.Name, d.Default.Name} {
					assert.False(t, seen[name], "duplicate symbol %s", name)
					seen[name] = true
				}
			}
		}
	}
	assert.Len(t, seen, 208)
}

func TestDeclarations_Injective(t *testing.T) {
	type pair struct{ ctx, def string }
	owners := make(map[pair]string)
	for _, f := range ir.Families() {
		for _, g := range ir.Granularities() {
			for _, te := range ir.Types() {
				s := SymbolNames(f, g, te)
				key := f.String() + "/" + g.String() + "/" + te.ShortName
				p := pair{s.Context, s.Default}
				if prev, ok := owners[p]; ok {
					t.Fatalf("%s and %s share symbols %v", prev, key, p)
				}
				owners[p] = key
				assert.True(t, strings.HasPrefix(s.Context, "rocshmem_ctx_"))
				assert.True(t, isIdentifier(s.Context) && isIdentifier(s.Default))
			}
		}
	}
}

func TestEnumerate_Collision(t *testing.T) {
	// Two entries sharing a short name collapse to the same symbols.
	types := []ir.TypeEntry{
		{Spelling: "long long", ShortName: "ll"},
		{Spelling: "unsigned long long", ShortName: "ll"},
	}
	_, err := enumerate([]ir.OperationFamily{ir.Put}, []ir.Granularity{ir.PerWave}, types)
	require.Error(t, err)

	var ve *ir.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "symbol_collision", ve.Code)
}

func TestSymbolTable(t *testing.T) {
	s := newSymbolTable()
	require.NoError(t, s.reserve("a", "first"))
	require.NoError(t, s.reserve("b", "first"))
	err := s.reserve("a", "second")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
	assert.Equal(t, 2, s.count())
}
