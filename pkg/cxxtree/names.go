package cxxtree

import (
	"fmt"
	"strings"
)

// typeName returns the display name of a Typed Node's referenced type,
// substituting "void" when the reference is absent. Used by Const,
// Pointer, SubProgram and Subroutine to build their synthesized names.
func typeName(t *Node) string {
	if t == nil {
		return "void"
	}
	return t.Name
}

// synthConst builds the name for a ConstType: "const T" (§3's per-variant
// payload table).
func synthConst(referenced *Node) string {
	return "const " + typeName(referenced)
}

// synthPointer builds the name for a Pointer: "T*".
func synthPointer(referenced *Node) string {
	return typeName(referenced) + "*"
}

// synthRef builds the name for a RefType: "T&".
func synthRef(referenced *Node) string {
	return typeName(referenced) + "&"
}

// synthRRef builds the name for an RRefType: "T&&".
func synthRRef(referenced *Node) string {
	return typeName(referenced) + "&&"
}

// synthVolatile builds the name for a VolatileType. §9 records that one
// source revision emitted a trailing '&' here by mistake; we implement
// the semantically correct "volatile T" prefix form.
func synthVolatile(referenced *Node) string {
	return "volatile " + typeName(referenced)
}

// synthArray builds the name for an Array: "T[N]".
func synthArray(elem *Node, count uint64) string {
	return fmt.Sprintf("%s[%d]", typeName(elem), count)
}

// synthSubroutine builds the name for a Subroutine or SubProgram used as
// a type: "FunctionPtr<R(P1,P2,...)>".
func synthSubroutine(ret *Node, params []*Node) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, typeName(p.ValueType))
	}
	return fmt.Sprintf("FunctionPtr<%s(%s)>", typeName(ret), strings.Join(parts, ","))
}

// anonID synthesizes a deterministic identifier for an anonymous class or
// enum, in place of the original source's hashed memory address (§9's
// "must produce a deterministic identifier" note).
func anonID(cuIndex int, offset uint64) string {
	return fmt.Sprintf("anon@%d:%#x", cuIndex, offset)
}
