package cxxtree

import "debug/dwarf"

// DIESource is the upstream collaborator the Resolver consumes (spec §6):
// given an already-read *dwarf.Entry, it yields that entry's direct
// children, and given an offset it yields the entry located there. The
// Resolver never talks to debug/dwarf's *dwarf.Reader directly so that it
// can be driven by a fake source in tests.
type DIESource interface {
	// Children returns the direct children of entry, in document order.
	Children(entry *dwarf.Entry) ([]*dwarf.Entry, error)
	// EntryAt returns the entry at the given section offset.
	EntryAt(off dwarf.Offset) (*dwarf.Entry, error)
}
