package cxxtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizedNamesAreTotalFunctionsOfPayload(t *testing.T) {
	intType := &Node{Kind: KindTyped, TypeKind: TypeBasic, Name: "int"}

	assert.Equal(t, "const void", synthConst(nil))
	assert.Equal(t, "const int", synthConst(intType))
	assert.Equal(t, "void*", synthPointer(nil))
	assert.Equal(t, "int*", synthPointer(intType))
	assert.Equal(t, "int&", synthRef(intType))
	assert.Equal(t, "int&&", synthRRef(intType))
	assert.Equal(t, "volatile int", synthVolatile(intType))
	assert.Equal(t, "int[4]", synthArray(intType, 4))
}

func TestSynthSubroutineName(t *testing.T) {
	intType := &Node{Kind: KindTyped, TypeKind: TypeBasic, Name: "int"}
	p1 := &Node{Kind: KindValue, ValueType: intType}
	p2 := &Node{Kind: KindValue, ValueType: intType}

	assert.Equal(t, "FunctionPtr<void()>", synthSubroutine(nil, nil))
	assert.Equal(t, "FunctionPtr<int(int,int)>", synthSubroutine(intType, []*Node{p1, p2}))
}

func TestAnonIDIsDeterministic(t *testing.T) {
	assert.Equal(t, anonID(0, 0x10), anonID(0, 0x10))
	assert.NotEqual(t, anonID(0, 0x10), anonID(1, 0x10))
	assert.NotEqual(t, anonID(0, 0x10), anonID(0, 0x20))
}
