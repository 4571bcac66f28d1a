package cxxtree

import (
	"debug/dwarf"
)

// Resolver is the memoized dispatcher that maps a DIE identity to a
// semantic Node (spec §4.1). It owns the parsed-node table and the
// global namespace for the lifetime of a single parse; it is strictly
// single-threaded (spec §5) and is meant to be discarded after the first
// error it returns.
type Resolver struct {
	src DIESource

	// parsed is the memoized-node table, keyed by the DIE's section
	// offset. debug/dwarf.Offset is already unique across the whole
	// .debug_info section of a given *dwarf.Data (unlike the abstract
	// per-compilation-unit offset model spec §3 describes for DWARF in
	// general), so a bare dwarf.Offset serves as the identity key
	// without needing to pack in a compilation-unit handle.
	parsed map[dwarf.Offset]*Node

	// parentOf is the child-to-parent map (spec §3), recorded only for
	// genuine nesting, never for referential edges.
	parentOf map[*Node]*Node

	// Global is the root of the assembled namespace tree.
	Global *Node

	curCU int
}

// NewResolver creates a Resolver over the given DIE source with an empty
// global namespace.
func NewResolver(src DIESource) *Resolver {
	return &Resolver{
		src:      src,
		parsed:   make(map[dwarf.Offset]*Node),
		parentOf: make(map[*Node]*Node),
		Global:   newNamespace(""),
	}
}

// ParentOf returns the enclosing Node recorded for n, if any.
func (r *Resolver) ParentOf(n *Node) (*Node, bool) {
	p, ok := r.parentOf[n]
	return p, ok
}

// ProgressFunc is invoked after each compilation unit with its index
// (1-based), the total unit count, and the running total of distinct
// Nodes parsed so far — the Go rendition of original_source's
// "Parsed unit %zd/%zd ..." printf (see SPEC_FULL.md).
type ProgressFunc func(unitNo, totalUnits, newNodes, totalNodes int)

// ParseAll drives every compilation unit's root DIEs through Resolve and
// merges each result into the global namespace, short-circuiting on the
// first error (spec §5, §7).
func (r *Resolver) ParseAll(units []*dwarf.Entry, progress ProgressFunc) error {
	for i, cu := range units {
		r.curCU = i
		before := len(r.parsed)

		kids, err := r.src.Children(cu)
		if err != nil {
			return err
		}
		for _, kid := range kids {
			n, err := r.Resolve(kid)
			if err != nil {
				return err
			}
			if err := r.mergeIntoNamespace(r.Global, n); err != nil {
				return err
			}
		}

		if progress != nil {
			progress(i+1, len(units), len(r.parsed)-before, len(r.parsed))
		}
	}
	return nil
}

// Resolve returns the unique Node associated with entry, recursively
// interpreting it the first time it is seen and memoizing the result for
// every later reference (spec §4.1's memoization protocol). Cycles
// terminate because an empty placeholder Node is inserted into the table
// before the handler runs; a handler that recurses back into the same
// entry observes that placeholder instead of looping.
func (r *Resolver) Resolve(entry *dwarf.Entry) (*Node, error) {
	if n, ok := r.parsed[entry.Offset]; ok {
		return n, nil
	}

	n, err := emptyNode(entry.Tag)
	if err != nil {
		return nil, err
	}
	r.parsed[entry.Offset] = n

	if err := r.populate(n, entry); err != nil {
		return nil, err
	}
	return n, nil
}

// resolveOffset fetches and resolves the entry at off.
func (r *Resolver) resolveOffset(off dwarf.Offset) (*Node, error) {
	entry, err := r.src.EntryAt(off)
	if err != nil {
		return nil, err
	}
	return r.Resolve(entry)
}

// resolveRef resolves the DIE referenced by attr on entry, if present.
// ok is false when the attribute is absent.
func (r *Resolver) resolveRef(entry *dwarf.Entry, attr dwarf.Attr) (n *Node, ok bool, err error) {
	off, present := entry.Val(attr).(dwarf.Offset)
	if !present {
		return nil, false, nil
	}
	n, err = r.resolveOffset(off)
	return n, true, err
}

// emptyNode allocates a Node of the variant the given tag dispatches to,
// without populating its payload (spec §4.1's dispatch table).
func emptyNode(tag dwarf.Tag) (*Node, error) {
	switch tag {
	case dwarf.TagArrayType:
		return &Node{Kind: KindTyped, TypeKind: TypeArray}, nil
	case dwarf.TagBaseType:
		return &Node{Kind: KindTyped, TypeKind: TypeBasic}, nil
	case dwarf.TagClassType:
		return &Node{Kind: KindTyped, TypeKind: TypeClass, ClassTag: ClassClass}, nil
	case dwarf.TagStructType:
		return &Node{Kind: KindTyped, TypeKind: TypeClass, ClassTag: ClassStruct}, nil
	case dwarf.TagUnionType:
		return &Node{Kind: KindTyped, TypeKind: TypeClass, ClassTag: ClassUnion}, nil
	case dwarf.TagConstType:
		return &Node{Kind: KindTyped, TypeKind: TypeConst}, nil
	case dwarf.TagEnumerationType:
		return &Node{Kind: KindTyped, TypeKind: TypeEnum}, nil
	case dwarf.TagEnumerator:
		return newNode(KindEnumerator), nil
	case dwarf.TagFormalParameter, dwarf.TagMember, dwarf.TagVariable:
		return newNode(KindValue), nil
	case dwarf.TagImportedDeclaration, dwarf.TagImportedModule, vendorTagGNUTemplateTemplateParam:
		return newNode(KindIgnored), nil
	case dwarf.TagNamespace:
		return newNamespace(""), nil
	case dwarf.TagPointerType:
		return &Node{Kind: KindTyped, TypeKind: TypePointer}, nil
	case dwarf.TagPtrToMemberType:
		return &Node{Kind: KindTyped, TypeKind: TypePointerToMember}, nil
	case dwarf.TagReferenceType:
		return &Node{Kind: KindTyped, TypeKind: TypeRef}, nil
	case dwarf.TagRvalueReferenceType:
		return &Node{Kind: KindTyped, TypeKind: TypeRRef}, nil
	case dwarf.TagSubprogram:
		return newNode(KindSubProgram), nil
	case dwarf.TagSubroutineType:
		return &Node{Kind: KindTyped, TypeKind: TypeSubroutine}, nil
	case dwarf.TagTemplateTypeParameter, dwarf.TagTemplateValueParameter:
		return &Node{Kind: KindTyped, TypeKind: TypeNamedType}, nil
	case dwarf.TagTypedef:
		return &Node{Kind: KindTyped, TypeKind: TypeTypeDef}, nil
	case dwarf.TagVolatileType:
		return &Node{Kind: KindTyped, TypeKind: TypeVolatile}, nil
	default:
		return nil, &UnimplementedTagError{Tag: tag.String()}
	}
}

// vendorTagGNUTemplateTemplateParam is the GNU vendor tag 0x4106
// (DW_TAG_GNU_template_template_param) that spec §4.1 groups with
// imported_declaration/imported_module as Ignored.
const vendorTagGNUTemplateTemplateParam dwarf.Tag = 0x4106

// populate runs the per-variant handler for entry against the
// already-allocated Node n.
func (r *Resolver) populate(n *Node, entry *dwarf.Entry) error {
	switch entry.Tag {
	case dwarf.TagArrayType:
		return r.parseArray(n, entry)
	case dwarf.TagBaseType:
		return r.parseBasic(n, entry)
	case dwarf.TagClassType, dwarf.TagStructType, dwarf.TagUnionType:
		return r.parseClass(n, entry)
	case dwarf.TagConstType:
		return r.parseConstOrPointer(n, entry)
	case dwarf.TagEnumerationType:
		return r.parseEnum(n, entry)
	case dwarf.TagEnumerator:
		return r.parseEnumerator(n, entry)
	case dwarf.TagFormalParameter, dwarf.TagMember, dwarf.TagVariable:
		return r.parseValue(n, entry)
	case dwarf.TagImportedDeclaration, dwarf.TagImportedModule, vendorTagGNUTemplateTemplateParam:
		return nil // Ignored: no payload to populate
	case dwarf.TagNamespace:
		return r.parseNamespace(n, entry)
	case dwarf.TagPointerType:
		return r.parseConstOrPointer(n, entry)
	case dwarf.TagPtrToMemberType:
		return r.parsePointerToMember(n, entry)
	case dwarf.TagReferenceType, dwarf.TagRvalueReferenceType, dwarf.TagVolatileType:
		return r.parseRequiredReferenced(n, entry)
	case dwarf.TagSubprogram:
		return r.parseSubProgram(n, entry)
	case dwarf.TagSubroutineType:
		return r.parseSubroutine(n, entry)
	case dwarf.TagTemplateTypeParameter, dwarf.TagTemplateValueParameter:
		return r.parseNamedType(n, entry)
	case dwarf.TagTypedef:
		return r.parseTypeDef(n, entry)
	default:
		return &UnimplementedTagError{Tag: entry.Tag.String()}
	}
}

func attrString(entry *dwarf.Entry, attr dwarf.Attr) (string, bool) {
	v, ok := entry.Val(attr).(string)
	return v, ok
}

// attrIntegral reads an integral attribute regardless of whether the
// underlying DWARF form decoded it as signed or unsigned (mirrors the
// defensive field.Val type-switch godbg's Function.parseFrom uses).
func attrIntegral(entry *dwarf.Entry, attr dwarf.Attr) (value uint64, signed bool, ok bool) {
	switch v := entry.Val(attr).(type) {
	case int64:
		return uint64(v), true, true
	case uint64:
		return v, false, true
	}
	return 0, false, false
}
