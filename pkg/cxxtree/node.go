// Package cxxtree reconstructs a C++-style type and declaration tree from
// a graph of DWARF debug information entries, and prints it back out as a
// header-like text approximation of that tree.
//
// see DWARFv4 chapter 2.2 attribute types, chapter 5 type entries.
package cxxtree

// Kind is the outer discriminator of a Node: which of the six semantic
// families a DIE was interpreted into.
type Kind int

const (
	KindEnumerator Kind = iota
	KindIgnored
	KindNamespace
	KindSubProgram
	KindTyped
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindEnumerator:
		return "Enumerator"
	case KindIgnored:
		return "Ignored"
	case KindNamespace:
		return "Namespace"
	case KindSubProgram:
		return "SubProgram"
	case KindTyped:
		return "Typed"
	case KindValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// TypeKind is the secondary discriminator carried by Typed nodes.
type TypeKind int

const (
	TypeArray TypeKind = iota
	TypeBasic
	TypeClass
	TypeConst
	TypeEnum
	TypeNamedType
	TypePointer
	TypePointerToMember
	TypeRef
	TypeRRef
	TypeSubroutine
	TypeTypeDef
	TypeVolatile
)

func (t TypeKind) String() string {
	switch t {
	case TypeArray:
		return "Array"
	case TypeBasic:
		return "Basic"
	case TypeClass:
		return "Class"
	case TypeConst:
		return "ConstType"
	case TypeEnum:
		return "Enum"
	case TypeNamedType:
		return "NamedType"
	case TypePointer:
		return "Pointer"
	case TypePointerToMember:
		return "PointerToMember"
	case TypeRef:
		return "RefType"
	case TypeRRef:
		return "RRefType"
	case TypeSubroutine:
		return "Subroutine"
	case TypeTypeDef:
		return "TypeDef"
	case TypeVolatile:
		return "VolatileType"
	default:
		return "Unknown"
	}
}

// ClassTag records which of the three DWARF tags produced a Class node,
// since class_type and structure_type/union_type differ only in default
// member accessibility.
type ClassTag int

const (
	ClassStruct ClassTag = iota
	ClassClass
	ClassUnion
)

func (c ClassTag) Keyword() string {
	switch c {
	case ClassClass:
		return "class"
	case ClassUnion:
		return "union"
	default:
		return "struct"
	}
}

// Accessibility holds the three DWARF accessibility values; the numeric
// DW_AT_accessibility codes (1=public, 2=protected, 3=private) are mapped
// onto these constants by accessibilityOf. DefaultAccessibility below
// resolves the "no accessibility attribute" case per §4.1's Class table.
type Accessibility int

const (
	AccessPublic Accessibility = iota
	AccessProtected
	AccessPrivate
)

func (a Accessibility) Label() string {
	switch a {
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "public"
	}
}

// DefaultAccessibility returns private for class_type and public for
// structure_type/union_type, per §4.3's Class handler.
func DefaultAccessibility(tag ClassTag) Accessibility {
	if tag == ClassClass {
		return AccessPrivate
	}
	return AccessPublic
}

// Member pairs a Class member Node with the accessibility it was recorded
// under.
type Member struct {
	Node          *Node
	Accessibility Accessibility
}

// Parent pairs a base-Class Node with the accessibility of the
// inheritance edge.
type Parent struct {
	Class         *Node
	Accessibility Accessibility
}

// Node is the universal semantic entity of the reconstructed tree. Every
// DIE that the Resolver interprets becomes exactly one Node, addressed
// throughout the tree by pointer identity — Nodes are shared, and the
// graph among them may contain cycles (§9).
//
// Only the fields relevant to Kind (and, for KindTyped, to TypeKind) are
// meaningful; the rest are zero. This mirrors §9's "prefer a tagged sum
// type over variants" guidance: the variant set is closed and dispatch on
// it is already exhaustive, so a single struct with a discriminator reads
// better here than an interface with one implementation per case.
type Node struct {
	Kind Kind
	Name string

	// explicitName is true when Name came from a DWARF `name` attribute
	// rather than being synthesized from structure (§9, "IsNamed").
	explicitName bool

	// Enumerator
	EnumUnsigned uint64
	EnumSigned   int64
	EnumIsSigned bool

	// Namespace: ordered to make merge and print order deterministic;
	// byName gives the O(1) lookup the merge protocol needs.
	order  []string
	byName map[string]*Node

	// SubProgram / Subroutine share these
	Return  *Node // nil means void
	Params  []*Node
	Virtual bool

	// Typed
	TypeKind TypeKind

	// Array
	Elem  *Node
	Count uint64

	// Class
	ClassTag       ClassTag
	Members        []Member
	Parents        []Parent
	TemplateParams []*Node
	memberByName   map[string]*Node

	// ConstType, Pointer: Referenced == nil means void.
	// RefType, RRefType, VolatileType: Referenced is required.
	Referenced *Node

	// TypeDef
	Alias *Node

	// PointerToMember
	Containing *Node // Class
	Pointee    *Node // Subroutine

	// Enum
	Enumerators []*Node

	// NamedType (template parameter binding)
	Local      string
	Underlying *Node

	// Value
	ValueType *Node
}

// HasExplicitName reports whether Name was read from DWARF rather than
// synthesized. The Printer uses this to decide whether an anonymous
// class/enum needs to be inlined at its point of use instead of
// referenced by name (original_source's LanguageConcept::IsNamed).
func (n *Node) HasExplicitName() bool {
	return n.explicitName
}

func newNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

func newNamespace(name string) *Node {
	return &Node{
		Kind:   KindNamespace,
		Name:   name,
		byName: make(map[string]*Node),
	}
}

// Lookup finds a direct child by name in a Namespace or member by name in
// a Class. Returns false for any other Kind.
func (n *Node) Lookup(name string) (*Node, bool) {
	switch n.Kind {
	case KindNamespace:
		child, ok := n.byName[name]
		return child, ok
	case KindTyped:
		if n.TypeKind == TypeClass {
			m, ok := n.memberByName[name]
			return m, ok
		}
	}
	return nil, false
}

// insert adds a named child to a Namespace, recording insertion order.
func (n *Node) insert(name string, child *Node) {
	if _, exists := n.byName[name]; !exists {
		n.order = append(n.order, name)
	}
	n.byName[name] = child
}

// Children returns a Namespace's direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.byName[name])
	}
	return out
}

func (n *Node) addMember(name string, m Member) {
	if name != "" {
		if n.memberByName == nil {
			n.memberByName = make(map[string]*Node)
		}
		n.memberByName[name] = m.Node
	}
	n.Members = append(n.Members, m)
}
