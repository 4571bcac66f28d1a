package cxxtree

import (
	"fmt"
	"io"
)

// Printer performs the depth-first walk of the global namespace described
// in spec §4.4, emitting a header-like text approximation of the
// reconstructed tree. Ordering is member-insertion order, so output is
// byte-identical across runs given a fixed Node graph (spec §8 invariant
// 5).
type Printer struct {
	w      io.Writer
	indent string
}

// NewPrinter creates a Printer that writes to w using a single tab as
// its indent unit (spec §4.4).
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: "\t"}
}

// PrintGlobal emits the global namespace: every namespace/class/typedef
// and namespace-scope subprogram it (transitively) contains.
func (p *Printer) PrintGlobal(global *Node) error {
	return p.printNamespaceBody(global, 0)
}

func (p *Printer) tabs(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += p.indent
	}
	return out
}

func (p *Printer) printf(depth int, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(p.w, p.tabs(depth)+format, args...)
	return err
}

// printNamespaceBody prints a namespace's direct children without the
// enclosing `namespace N { ... };` wrapper — used for the global
// namespace, which spec §4.4 says is never wrapped.
func (p *Printer) printNamespaceBody(ns *Node, depth int) error {
	for _, child := range ns.Children() {
		if err := p.printNamed(child, depth); err != nil {
			return err
		}
	}
	return nil
}

// printNamed dispatches on child's Kind, emitting only the variants
// spec §4.4 lists: namespaces, classes, typedefs, and namespace-scope
// subprograms. Everything else (non-class Typed nodes, values, ignored
// entries) is suppressed — their names are already inlined wherever
// they are used. An anonymous class has no home as a standalone
// declaration either: it only has a synthesized anon@... identifier,
// not a printable C++ name, so it is suppressed here too and only ever
// emitted inline at its point of use (see printTypeRef).
func (p *Printer) printNamed(n *Node, depth int) error {
	switch n.Kind {
	case KindNamespace:
		return p.printNamespace(n, depth)
	case KindSubProgram:
		return p.printSubProgram(n, depth)
	case KindTyped:
		switch n.TypeKind {
		case TypeClass:
			if n.HasExplicitName() {
				return p.printClass(n, depth)
			}
		case TypeTypeDef:
			return p.printTypeDef(n, depth)
		}
	}
	return nil
}

func (p *Printer) printNamespace(n *Node, depth int) error {
	if err := p.printf(depth, "namespace %s\n", n.Name); err != nil {
		return err
	}
	if err := p.printf(depth, "{\n"); err != nil {
		return err
	}
	if err := p.printNamespaceBody(n, depth+1); err != nil {
		return err
	}
	return p.printf(depth, "};\n")
}

func (p *Printer) printTypeDef(n *Node, depth int) error {
	if err := p.printf(depth, "typedef "); err != nil {
		return err
	}
	if err := p.printTypeRef(depth, n.Alias); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, " %s;\n", n.Name)
	return err
}

// printTypeRef writes t's display form at the writer's current cursor
// position. A named type (explicit DWARF `name`, or a synthesized
// structural name like a pointer or array) prints as that name; an
// anonymous class or enum has no such name to print, so its definition
// is inlined instead — the Printer's use of Node.HasExplicitName
// (original_source's LanguageConcept::IsNamed).
func (p *Printer) printTypeRef(depth int, t *Node) error {
	if t == nil {
		_, err := fmt.Fprint(p.w, "void")
		return err
	}
	if t.Kind == KindTyped && !t.HasExplicitName() {
		switch t.TypeKind {
		case TypeClass:
			return p.printClassInline(t, depth)
		case TypeEnum:
			return p.printEnumInline(t, depth)
		}
	}
	_, err := fmt.Fprint(p.w, t.Name)
	return err
}

// printClass emits a named class/struct/union: keyword, name,
// inheritance list, and members with access: labels only at
// accessibility transitions (spec §4.4).
func (p *Printer) printClass(n *Node, depth int) error {
	if err := p.printf(depth, "%s %s", n.ClassTag.Keyword(), n.Name); err != nil {
		return err
	}
	if err := p.printBases(n); err != nil {
		return err
	}
	if _, err := fmt.Fprint(p.w, "\n"); err != nil {
		return err
	}
	if err := p.printf(depth, "{\n"); err != nil {
		return err
	}
	if err := p.printClassMembers(n, depth); err != nil {
		return err
	}
	return p.printf(depth, "};\n")
}

// printClassInline writes an anonymous class/struct/union's keyword
// and body at its point of use, with no name and no trailing semicolon
// — the caller supplies both (e.g. "} fieldName;").
func (p *Printer) printClassInline(n *Node, depth int) error {
	if _, err := fmt.Fprintf(p.w, "%s\n", n.ClassTag.Keyword()); err != nil {
		return err
	}
	if err := p.printf(depth, "{\n"); err != nil {
		return err
	}
	if err := p.printClassMembers(n, depth); err != nil {
		return err
	}
	return p.printf(depth, "}")
}

func (p *Printer) printBases(n *Node) error {
	if len(n.Parents) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(p.w, " : "); err != nil {
		return err
	}
	for i, parent := range n.Parents {
		if i > 0 {
			if _, err := fmt.Fprint(p.w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(p.w, "%s %s", parent.Accessibility.Label(), parent.Class.Name); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printClassMembers(n *Node, depth int) error {
	current := DefaultAccessibility(n.ClassTag)
	for _, m := range n.Members {
		if m.Accessibility != current {
			current = m.Accessibility
			if err := p.printf(depth, "%s:\n", current.Label()); err != nil {
				return err
			}
		}
		if err := p.printMember(m.Node, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// printEnumInline writes an anonymous enum's body at its point of use,
// with no name and no trailing semicolon.
func (p *Printer) printEnumInline(n *Node, depth int) error {
	if _, err := fmt.Fprint(p.w, "enum\n"); err != nil {
		return err
	}
	if err := p.printf(depth, "{\n"); err != nil {
		return err
	}
	for _, e := range n.Enumerators {
		if e.EnumIsSigned {
			if err := p.printf(depth+1, "%s = %d,\n", e.Name, e.EnumSigned); err != nil {
				return err
			}
			continue
		}
		if err := p.printf(depth+1, "%s = %d,\n", e.Name, e.EnumUnsigned); err != nil {
			return err
		}
	}
	return p.printf(depth, "}")
}

// printMember prints one class member: a nested SubProgram (method) or a
// Value (field), per spec §4.4.
func (p *Printer) printMember(n *Node, depth int) error {
	if n.Kind == KindSubProgram {
		return p.printSubProgram(n, depth)
	}
	return p.printValue(n, depth)
}

// printSubProgram prints `virtual? (return|void) name(params);`.
func (p *Printer) printSubProgram(n *Node, depth int) error {
	virtual := ""
	if n.Virtual {
		virtual = "virtual "
	}
	if err := p.printf(depth, "%s%s %s(", virtual, typeName(n.Return), n.Name); err != nil {
		return err
	}
	for i, param := range n.Params {
		if i > 0 {
			if _, err := fmt.Fprint(p.w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(p.w, typeName(param.ValueType)); err != nil {
			return err
		}
		if param.Name != "" {
			if _, err := fmt.Fprintf(p.w, " %s", param.Name); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprint(p.w, ");\n")
	return err
}

// printValue prints `<type_name> <name>;`, inlining the field's type
// definition in place of its name when that type is an anonymous class
// or enum.
func (p *Printer) printValue(n *Node, depth int) error {
	if err := p.printf(depth, ""); err != nil {
		return err
	}
	if err := p.printTypeRef(depth, n.ValueType); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, " %s;\n", n.Name)
	return err
}

