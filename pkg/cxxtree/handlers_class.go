package cxxtree

import "debug/dwarf"

// parseClass handles class_type, structure_type and union_type. Default
// member accessibility is private for class_type, public otherwise
// (spec §4.3). Children are classified as inheritance edges, template
// parameters, or ordinary members.
//
// see DWARFv4 5.7 structure, union, class and interface type entries.
func (r *Resolver) parseClass(n *Node, entry *dwarf.Entry) error {
	def := DefaultAccessibility(n.ClassTag)

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
		switch kid.Tag {
		case dwarf.TagInheritance:
			parent, ok, err := r.resolveRef(kid, dwarf.AttrType)
			if err != nil {
				return err
			}
			if !ok {
				return &MissingAttributeError{Attribute: "type", Variant: "inheritance"}
			}
			if parent.Kind != KindTyped || parent.TypeKind != TypeClass {
				return &WrongReferencedKindError{Expected: TypeClass.String(), Actual: describeKind(parent)}
			}
			n.Parents = append(n.Parents, Parent{
				Class:         parent,
				Accessibility: accessibilityOf(kid, def),
			})

		case dwarf.TagTemplateTypeParameter, dwarf.TagTemplateValueParameter:
			param, err := r.Resolve(kid)
			if err != nil {
				return err
			}
			n.TemplateParams = append(n.TemplateParams, param)

		default:
			member, err := r.Resolve(kid)
			if err != nil {
				return err
			}
			if member.Kind == KindNamespace {
				return &WrongReferencedKindError{Expected: "non-Namespace member", Actual: describeKind(member)}
			}
			name, _ := attrString(kid, dwarf.AttrName)
			n.addMember(name, Member{Node: member, Accessibility: accessibilityOf(kid, def)})
			r.parentOf[member] = n
		}
	}

	return nil
}

// accessibilityOf reads the `accessibility` attribute of a class child,
// falling back to the class's default when absent.
func accessibilityOf(entry *dwarf.Entry, def Accessibility) Accessibility {
	v, _, ok := attrIntegral(entry, dwarf.AttrAccessibility)
	if !ok {
		return def
	}
	switch v {
	case 1:
		return AccessPublic
	case 2:
		return AccessProtected
	case 3:
		return AccessPrivate
	default:
		return def
	}
}
