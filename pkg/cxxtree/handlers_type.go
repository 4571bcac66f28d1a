package cxxtree

import "debug/dwarf"

// parseBasic handles base_type: a required name, nothing else.
//
// see DWARFv4 5.1 base type entries.
func (r *Resolver) parseBasic(n *Node, entry *dwarf.Entry) error {
	name, ok := attrString(entry, dwarf.AttrName)
	if !ok {
		return &MissingAttributeError{Attribute: "name", Variant: "base_type"}
	}
	n.Name = name
	n.explicitName = true
	return nil
}

// parseConstOrPointer handles const_type and pointer_type: `type` is
// optional on both, defaulting to void.
//
// see DWARFv4 5.2 unspecified type entries, 5.3 type modifier entries.
func (r *Resolver) parseConstOrPointer(n *Node, entry *dwarf.Entry) error {
	referenced, _, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	n.Referenced = referenced
	if n.TypeKind == TypeConst {
		n.Name = synthConst(referenced)
	} else {
		n.Name = synthPointer(referenced)
	}
	return nil
}

// parseRequiredReferenced handles reference_type, rvalue_reference_type
// and volatile_type, all of which require `type`.
func (r *Resolver) parseRequiredReferenced(n *Node, entry *dwarf.Entry) error {
	referenced, ok, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	if !ok {
		return &MissingAttributeError{Attribute: "type", Variant: n.TypeKind.String()}
	}
	n.Referenced = referenced
	switch n.TypeKind {
	case TypeRef:
		n.Name = synthRef(referenced)
	case TypeRRef:
		n.Name = synthRRef(referenced)
	case TypeVolatile:
		n.Name = synthVolatile(referenced)
	}
	return nil
}

// parseTypeDef handles typedef: both `name` and `type` are required.
//
// see DWARFv4 5.4 typedef entries.
func (r *Resolver) parseTypeDef(n *Node, entry *dwarf.Entry) error {
	name, ok := attrString(entry, dwarf.AttrName)
	if !ok {
		return &MissingAttributeError{Attribute: "name", Variant: "typedef"}
	}
	alias, ok, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	if !ok {
		return &MissingAttributeError{Attribute: "type", Variant: "typedef"}
	}
	n.Name = name
	n.explicitName = true
	n.Alias = alias
	return nil
}

// parseNamedType handles template_type_parameter and
// template_value_parameter: optional local name, required `type`.
//
// see DWARFv4 3.6.4 template parameters.
func (r *Resolver) parseNamedType(n *Node, entry *dwarf.Entry) error {
	if name, ok := attrString(entry, dwarf.AttrName); ok {
		n.Local = name
	}
	underlying, ok, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	if !ok {
		return &MissingAttributeError{Attribute: "type", Variant: "template parameter"}
	}
	n.Underlying = underlying
	n.Name = underlying.Name
	return nil
}

// parseArray handles array_type: element type from the required `type`,
// element count from the first child, which must be a subrange_type
// with an `upper_bound`; any further children are not read.
//
// see DWARFv4 5.5 array type entries.
func (r *Resolver) parseArray(n *Node, entry *dwarf.Entry) error {
	elem, ok, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	if !ok {
		return &MissingAttributeError{Attribute: "type", Variant: "array_type"}
	}
	n.Elem = elem

	kids, err := r.src.Children(entry)
	if err != nil {
		return err
	}
	if len(kids) == 0 || kids[0].Tag != dwarf.TagSubrangeType {
		return &MissingAttributeError{Attribute: "subrange_type child", Variant: "array_type"}
	}
	upper, _, ok := attrIntegral(kids[0], dwarf.AttrUpperBound)
	if !ok {
		return &MissingAttributeError{Attribute: "upper_bound", Variant: "subrange_type"}
	}
	// DWARF defines upper_bound as the highest valid zero-based index,
	// so element count is upper_bound+1. §9 records this as resolved in
	// favor of the semantically correct reading; see DESIGN.md.
	n.Count = upper + 1
	n.Name = synthArray(elem, n.Count)
	return nil
}

// parsePointerToMember handles ptr_to_member_type: `containing_type`
// must resolve to a Class, `type` must resolve to a Subroutine.
//
// see DWARFv4 5.3 type modifier entries (pointer-to-member variant).
func (r *Resolver) parsePointerToMember(n *Node, entry *dwarf.Entry) error {
	containing, ok, err := r.resolveRef(entry, dwarf.AttrContainingType)
	if err != nil {
		return err
	}
	if !ok {
		return &MissingAttributeError{Attribute: "containing_type", Variant: "ptr_to_member_type"}
	}
	if containing.Kind != KindTyped || containing.TypeKind != TypeClass {
		return &WrongReferencedKindError{Expected: TypeClass.String(), Actual: describeKind(containing)}
	}

	pointee, ok, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	if !ok {
		return &MissingAttributeError{Attribute: "type", Variant: "ptr_to_member_type"}
	}
	if pointee.Kind != KindTyped || pointee.TypeKind != TypeSubroutine {
		return &WrongReferencedKindError{Expected: TypeSubroutine.String(), Actual: describeKind(pointee)}
	}

	n.Containing = containing
	n.Pointee = pointee
	n.Name = containing.Name + "::" + pointee.Name
	return nil
}

// describeKind renders a short diagnostic string for a Node's variant,
// used by WrongReferencedKindError messages.
func describeKind(n *Node) string {
	if n.Kind == KindTyped {
		return n.TypeKind.String()
	}
	return n.Kind.String()
}
