package cxxtree

import "fmt"

// MissingAttributeError is returned when a required attribute is absent
// on a DIE (e.g. an array without `type`). See spec §7.
type MissingAttributeError struct {
	Attribute string
	Variant   string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing attribute %q on %s", e.Attribute, e.Variant)
}

// WrongReferencedKindError is returned when a resolved reference has the
// wrong variant, e.g. a class inheritance target that isn't a Class.
type WrongReferencedKindError struct {
	Expected string
	Actual   string
}

func (e *WrongReferencedKindError) Error() string {
	return fmt.Sprintf("expected referenced kind %s, got %s", e.Expected, e.Actual)
}

// UnimplementedTagError is returned when dispatch encounters a DIE tag
// outside the known set (§4.1's dispatch table).
type UnimplementedTagError struct {
	Tag string
}

func (e *UnimplementedTagError) Error() string {
	return fmt.Sprintf("unimplemented DIE tag %s", e.Tag)
}

// InvalidEnumeratorValueError is returned when an enumerator's
// const_value is neither a signed nor an unsigned constant.
type InvalidEnumeratorValueError struct {
	Name string
}

func (e *InvalidEnumeratorValueError) Error() string {
	return fmt.Sprintf("enumerator %q has a const_value that is neither signed nor unsigned", e.Name)
}

// SymbolTypeMismatchError is returned when the namespace merge protocol
// encounters conflicting variants for the same name.
type SymbolTypeMismatchError struct {
	Name      string
	Namespace string
}

func (e *SymbolTypeMismatchError) Error() string {
	return fmt.Sprintf("symbol %q in namespace %q already exists with a different kind", e.Name, e.Namespace)
}
