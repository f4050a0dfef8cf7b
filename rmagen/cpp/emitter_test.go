package cpp

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/rocshmem/shmemgen/rmagen/ir"
)

func loadUnits(t *testing.T) map[string]string {
	t.Helper()
	ar, err := txtar.ParseFile("testdata/units.txtar")
	require.NoError(t, err)

	files := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = string(f.Data)
	}
	return files
}

func render(t *testing.T, banner string) string {
	t.Helper()
	content, _, err := (&HeaderGenerator{}).Render(banner)
	require.NoError(t, err)
	return string(content)
}

func TestEmitter_Units(t *testing.T) {
	golden := loadUnits(t)
	e := NewEmitter("")

	tests := []struct {
		name string
		f    ir.OperationFamily
		g    ir.Granularity
		typ  string
	}{
		{"put_wave", ir.Put, ir.PerWave, "int"},
		{"get_nbi_wg", ir.GetNonBlocking, ir.PerWorkgroup, "ulonglong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var comment bytes.Buffer
			require.NoError(t, e.EmitComment(&comment, tt.f, tt.g))
			require.Empty(t, cmp.Diff(golden[tt.name+".comment"], comment.String()))

			te, ok := ir.LookupType(tt.typ)
			require.True(t, ok)
			d, err := NewDeclaration(tt.f, tt.g, te)
			require.NoError(t, err)

			var decl bytes.Buffer
			e.EmitDeclaration(&decl, d)
			require.Empty(t, cmp.Diff(golden[tt.name+"_"+tt.typ+".decl"], decl.String()))
		})
	}
}

func TestEmitter_Golden(t *testing.T) {
	want, err := os.ReadFile("testdata/rocshmem_RMA_X.hpp.golden")
	require.NoError(t, err)

	got := render(t, "// banner\n")
	require.Empty(t, cmp.Diff(string(want), got))
}

func TestEmitter_Deterministic(t *testing.T) {
	a := render(t, "/* banner */")
	b := render(t, "/* banner */")
	require.Empty(t, cmp.Diff(a, b))
}

func TestEmitter_Completeness(t *testing.T) {
	doc := render(t, "")
	decls, err := Declarations()
	require.NoError(t, err)

	for _, d := range decls {
		for _, name := range []string{d.Context.Name, d.Default.Name} {
			assert.Equal(t, 1, strings.Count(doc, " "+name+"("), "occurrences of %s", name)
		}
	}
	assert.Equal(t, 208, strings.Count(doc, "__device__ ATTR_NO_INLINE void "))
}

func TestEmitter_Ordering(t *testing.T) {
	doc := render(t, "")
	decls, err := Declarations()
	require.NoError(t, err)

	last := -1
	for _, d := range decls {
		idx := strings.Index(doc, " "+d.Context.Name+"(")
		require.GreaterOrEqual(t, idx, 0, d.Key())
		require.Greater(t, idx, last, "%s out of order", d.Key())
		last = idx
	}

	// Within each family, the last wave declaration precedes the first wg one.
	for _, f := range ir.Families() {
		frag := "_" + f.Fragment() + "_"
		lastWave := strings.LastIndex(doc, frag+"wave(")
		firstWG := strings.Index(doc, frag+"wg(")
		assert.Less(t, lastWave, firstWG, "%s granularities interleave", f)
	}
}

func TestEmitter_Structure(t *testing.T) {
	tests := []struct {
		name   string
		banner string
	}{
		{"with banner", "/*\n * Copyright\n */\n"},
		{"empty banner", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, tt.banner)
			guard := guardToken(GuardPath)

			require.True(t, strings.HasPrefix(doc, tt.banner+"\n#ifndef "+guard+"\n#define "+guard+"\n"))
			assert.Equal(t, 1, strings.Count(doc, "#ifndef "))
			assert.Equal(t, 1, strings.Count(doc, "#define "))
			assert.Equal(t, 1, strings.Count(doc, "#endif"))
			assert.Equal(t, 1, strings.Count(doc, "namespace rocshmem {"))
			assert.Equal(t, 1, strings.Count(doc, "}  // namespace rocshmem"))

			nsOpen := strings.Index(doc, "namespace rocshmem {")
			nsClose := strings.Index(doc, "}  // namespace rocshmem")
			first := strings.Index(doc, "__device__")
			lastDecl := strings.LastIndex(doc, "__device__")
			assert.Less(t, strings.Index(doc, "#define "), nsOpen)
			assert.Less(t, nsOpen, first)
			assert.Less(t, lastDecl, nsClose)
			assert.Less(t, nsClose, strings.Index(doc, "#endif"))
			assert.True(t, strings.HasSuffix(doc, "#endif  // "+guard+"\n"))
		})
	}
}

func TestEmitter_CommentPerGranularity(t *testing.T) {
	doc := render(t, "")
	assert.Equal(t, 8, strings.Count(doc, "/**"))
	assert.Equal(t, 8, strings.Count(doc, "@brief"))
	assert.NotContains(t, doc, "in bytes")
	assert.NotContains(t, doc, "{{")
	assert.Equal(t, 8, strings.Count(doc, "Size of the transfer in number of elements."))
	assert.Equal(t, 4, strings.Count(doc, "per-wave\n * granularity") + strings.Count(doc, "per-wave granularity"))
}

func TestEmitFamily_MissingDeclarations(t *testing.T) {
	var buf bytes.Buffer
	err := NewEmitter("").EmitFamily(&buf, ir.Put, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no declarations")
}

func TestGuardToken(t *testing.T) {
	assert.Equal(t, "LIBRARY_INCLUDE_ROCSHMEM_RMA_X_HPP", guardToken(GuardPath))
	assert.Equal(t, "A_B_C_H", guardToken("a/b-c.h"))
	assert.Equal(t, "LIBRARY_INCLUDE_ROCSHMEM_RMA_X_HPP", NewEmitter("").Guard())
}
