package cxxtree

import (
	"debug/dwarf"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNamespaceMergeAcrossUnits reproduces spec §8 scenario 6: unit A
// contributes namespace std { typedef int size_t; }, unit B contributes
// namespace std { typedef long ptrdiff_t; }; the global std must contain
// both.
func TestNamespaceMergeAcrossUnits(t *testing.T) {
	src := newFakeSource()
	intDie := src.add(entry(0x01, dwarf.TagBaseType, field(dwarf.AttrName, "int")))
	longDie := src.add(entry(0x02, dwarf.TagBaseType, field(dwarf.AttrName, "long")))
	_, _ = intDie, longDie

	sizeT := entry(0x11, dwarf.TagTypedef, field(dwarf.AttrName, "size_t"), field(dwarf.AttrType, dwarf.Offset(0x01)))
	src.add(sizeT)
	stdA := entry(0x10, dwarf.TagNamespace, field(dwarf.AttrName, "std"))
	src.add(stdA, sizeT)

	ptrdiffT := entry(0x21, dwarf.TagTypedef, field(dwarf.AttrName, "ptrdiff_t"), field(dwarf.AttrType, dwarf.Offset(0x02)))
	src.add(ptrdiffT)
	stdB := entry(0x20, dwarf.TagNamespace, field(dwarf.AttrName, "std"))
	src.add(stdB, ptrdiffT)

	cuA := entry(0x100, dwarf.TagCompileUnit)
	src.add(cuA, stdA)
	cuB := entry(0x200, dwarf.TagCompileUnit)
	src.add(cuB, stdB)

	r := NewResolver(src)
	require.NoError(t, r.ParseAll([]*dwarf.Entry{cuA, cuB}, nil))

	std, ok := r.Global.Lookup("std")
	require.True(t, ok)
	require.Equal(t, KindNamespace, std.Kind)

	_, ok = std.Lookup("size_t")
	assert.True(t, ok)
	_, ok = std.Lookup("ptrdiff_t")
	assert.True(t, ok)
}

func TestDuplicateNonNamespaceSymbolIsDroppedSilently(t *testing.T) {
	src := newFakeSource()
	a := entry(0x10, dwarf.TagBaseType, field(dwarf.AttrName, "int"))
	src.add(a)
	b := entry(0x20, dwarf.TagBaseType, field(dwarf.AttrName, "int"))
	src.add(b)

	r := NewResolver(src)
	na, err := r.Resolve(a)
	require.NoError(t, err)
	require.NoError(t, r.mergeIntoNamespace(r.Global, na))

	nb, err := r.Resolve(b)
	require.NoError(t, err)
	require.NoError(t, r.mergeIntoNamespace(r.Global, nb))

	got, ok := r.Global.Lookup("int")
	require.True(t, ok)
	assert.Same(t, na, got)
}

func TestSymbolTypeMismatch(t *testing.T) {
	src := newFakeSource()
	base := entry(0x10, dwarf.TagBaseType, field(dwarf.AttrName, "widget"))
	src.add(base)
	ns := entry(0x20, dwarf.TagNamespace, field(dwarf.AttrName, "widget"))
	src.add(ns)

	r := NewResolver(src)
	n1, err := r.Resolve(base)
	require.NoError(t, err)
	require.NoError(t, r.mergeIntoNamespace(r.Global, n1))

	n2, err := r.Resolve(ns)
	require.NoError(t, err)
	err = r.mergeIntoNamespace(r.Global, n2)
	require.Error(t, err)
	var mismatch *SymbolTypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestEmptyNameIgnoredByMerge(t *testing.T) {
	src := newFakeSource()
	r := NewResolver(src)
	anon := newNode(KindIgnored)
	require.NoError(t, r.mergeIntoNamespace(r.Global, anon))
	assert.Empty(t, r.Global.Children())
}

func TestEmptyNamespaceRoundTrip(t *testing.T) {
	src := newFakeSource()
	ns := entry(0x10, dwarf.TagNamespace, field(dwarf.AttrName, "N"))
	src.add(ns)
	cu := entry(0x100, dwarf.TagCompileUnit)
	src.add(cu, ns)

	r := NewResolver(src)
	require.NoError(t, r.ParseAll([]*dwarf.Entry{cu}, nil))

	n, ok := r.Global.Lookup("N")
	require.True(t, ok)
	assert.Equal(t, KindNamespace, n.Kind)
	assert.Empty(t, n.Children())
}
