package cxxtree

import "debug/dwarf"

// fakeSource is an in-memory DIESource used to drive the Resolver in
// tests without needing a real ELF/DWARF byte stream.
type fakeSource struct {
	entries  map[dwarf.Offset]*dwarf.Entry
	children map[dwarf.Offset][]*dwarf.Entry
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		entries:  make(map[dwarf.Offset]*dwarf.Entry),
		children: make(map[dwarf.Offset][]*dwarf.Entry),
	}
}

// add registers entry (optionally with children) in the fake graph.
func (f *fakeSource) add(entry *dwarf.Entry, children ...*dwarf.Entry) *dwarf.Entry {
	if len(children) > 0 {
		entry.Children = true
	}
	f.entries[entry.Offset] = entry
	f.children[entry.Offset] = children
	return entry
}

func (f *fakeSource) Children(entry *dwarf.Entry) ([]*dwarf.Entry, error) {
	return f.children[entry.Offset], nil
}

func (f *fakeSource) EntryAt(off dwarf.Offset) (*dwarf.Entry, error) {
	e, ok := f.entries[off]
	if !ok {
		return nil, nil
	}
	return e, nil
}

// entry builds a *dwarf.Entry with the given offset, tag and attribute
// fields, as a compact test-construction helper.
func entry(off dwarf.Offset, tag dwarf.Tag, fields ...dwarf.Field) *dwarf.Entry {
	return &dwarf.Entry{
		Offset: off,
		Tag:    tag,
		Field:  fields,
	}
}

func field(attr dwarf.Attr, val interface{}) dwarf.Field {
	return dwarf.Field{Attr: attr, Val: val}
}
