package cxxtree

import "debug/dwarf"

// parseNamespace handles namespace: absent name synthesizes "::"; every
// child is resolved and folded in via the merge protocol with this node
// as the enclosing namespace.
//
// see DWARFv4 3.4 namespace entries.
func (r *Resolver) parseNamespace(n *Node, entry *dwarf.Entry) error {
	if name, ok := attrString(entry, dwarf.AttrName); ok {
		n.Name = name
		n.explicitName = true
	} else {
		n.Name = "::"
	}

	kids, err := r.src.Children(entry)
	if err != nil {
		return err
	}
	for _, kid := range kids {
		child, err := r.Resolve(kid)
		if err != nil {
			return err
		}
		if err := r.mergeIntoNamespace(n, child); err != nil {
			return err
		}
	}
	return nil
}

// parseEnum handles enumeration_type: optional name (synthesized if
// absent), children must all be enumerator.
//
// see DWARFv4 5.6 enumeration type entries.
func (r *Resolver) parseEnum(n *Node, entry *dwarf.Entry) error {
	if name, ok := attrString(entry, dwarf.AttrName); ok {
		n.Name = name
		n.explicitName = true
	} else {
		n.Name = anonID(r.curCU, uint64(entry.Offset))
	}

	kids, err := r.src.Children(entry)
	if err != nil {
		return err
	}
	for _, kid := range kids {
		if kid.Tag != dwarf.TagEnumerator {
			return &WrongReferencedKindError{Expected: KindEnumerator.String(), Actual: kid.Tag.String()}
		}
		enumerator, err := r.Resolve(kid)
		if err != nil {
			return err
		}
		n.Enumerators = append(n.Enumerators, enumerator)
	}
	return nil
}

// parseEnumerator handles enumerator: name and const_value are both
// required; the value may be signed or unsigned.
func (r *Resolver) parseEnumerator(n *Node, entry *dwarf.Entry) error {
	name, ok := attrString(entry, dwarf.AttrName)
	if !ok {
		return &MissingAttributeError{Attribute: "name", Variant: "enumerator"}
	}
	n.Name = name
	n.explicitName = true

	value, signed, ok := attrIntegral(entry, dwarf.AttrConstValue)
	if !ok {
		return &InvalidEnumeratorValueError{Name: name}
	}
	n.EnumIsSigned = signed
	if signed {
		n.EnumSigned = int64(value)
	} else {
		n.EnumUnsigned = value
	}
	return nil
}

// parseValue handles formal_parameter, member and variable: `type` is
// always required; `name` is required only for member.
//
// see DWARFv4 3.4 (member), 2.13 (declarations).
func (r *Resolver) parseValue(n *Node, entry *dwarf.Entry) error {
	name, hasName := attrString(entry, dwarf.AttrName)
	if entry.Tag == dwarf.TagMember && !hasName {
		return &MissingAttributeError{Attribute: "name", Variant: "member"}
	}
	if hasName {
		n.Name = name
		n.explicitName = true
	}

	typ, ok, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	if !ok {
		return &MissingAttributeError{Attribute: "type", Variant: "value"}
	}
	n.ValueType = typ
	return nil
}

// parseSubProgram handles subprogram. When `specification` is present,
// this entry is an out-of-line definition: the declaration it points to
// is a SubProgram whose parameter list is replaced by this entry's
// formal_parameter children, and this entry itself resolves to an empty
// placeholder — callers see the merged parameters through the
// specification's Node (spec §4.3, §9's declaration/definition fusion).
//
// see DWARFv4 3.3 subroutine and entry point entries, 2.13.2 declarations
// completing non-defining declarations.
func (r *Resolver) parseSubProgram(n *Node, entry *dwarf.Entry) error {
	if spec, ok, err := r.resolveRef(entry, dwarf.AttrSpecification); ok || err != nil {
		if err != nil {
			return err
		}
		if spec.Kind != KindSubProgram {
			return &WrongReferencedKindError{Expected: KindSubProgram.String(), Actual: describeKind(spec)}
		}
		params, err := r.parseFormalParameters(entry)
		if err != nil {
			return err
		}
		spec.Params = params
		return nil
	}

	name, ok := attrString(entry, dwarf.AttrName)
	if !ok {
		return &MissingAttributeError{Attribute: "name", Variant: "subprogram"}
	}
	n.Name = name
	n.explicitName = true

	ret, _, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	n.Return = ret

	if v, _, ok := attrIntegral(entry, dwarf.AttrVirtuality); ok && v == 1 {
		n.Virtual = true
	}

	params, err := r.parseFormalParameters(entry)
	if err != nil {
		return err
	}
	n.Params = params
	return nil
}

// parseSubroutine handles subroutine_type: identical to SubProgram minus
// name and virtuality; the name is synthesized as
// FunctionPtr<R(P1,P2,...)>.
func (r *Resolver) parseSubroutine(n *Node, entry *dwarf.Entry) error {
	ret, _, err := r.resolveRef(entry, dwarf.AttrType)
	if err != nil {
		return err
	}
	n.Return = ret

	params, err := r.parseFormalParameters(entry)
	if err != nil {
		return err
	}
	n.Params = params
	n.Name = synthSubroutine(ret, params)
	return nil
}

// parseFormalParameters resolves every formal_parameter child of entry,
// in order, as Value nodes.
func (r *Resolver) parseFormalParameters(entry *dwarf.Entry) ([]*Node, error) {
	kids, err := r.src.Children(entry)
	if err != nil {
		return nil, err
	}
	var params []*Node
	for _, kid := range kids {
		if kid.Tag != dwarf.TagFormalParameter {
			continue
		}
		p, err := r.Resolve(kid)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}
