// Package reader adapts debug/dwarf's cursor-based *dwarf.Reader into the
// cxxtree.DIESource contract: children-of and entry-at lookups keyed by
// section offset, with no notion of "current position" leaking to
// callers.
package reader

import "debug/dwarf"

// Reader wraps a *dwarf.Data and implements cxxtree.DIESource.
type Reader struct {
	data *dwarf.Data
}

// New creates a Reader over the given parsed DWARF data.
func New(data *dwarf.Data) *Reader {
	return &Reader{data: data}
}

// EntryAt seeks to off and returns the entry located there.
func (r *Reader) EntryAt(off dwarf.Offset) (*dwarf.Entry, error) {
	rd := r.data.Reader()
	rd.Seek(off)
	return rd.Next()
}

// Children returns the direct children of entry. debug/dwarf.Reader
// exposes children as a flat stream terminated by a null entry
// (Reader.Next returns it as an entry with Tag 0); a child that itself has
// children must be skipped over with SkipChildren so its grandchildren
// aren't mistaken for entry's direct children.
func (r *Reader) Children(entry *dwarf.Entry) ([]*dwarf.Entry, error) {
	if !entry.Children {
		return nil, nil
	}

	rd := r.data.Reader()
	rd.Seek(entry.Offset)
	if _, err := rd.Next(); err != nil { // re-read entry itself to position the cursor
		return nil, err
	}

	var kids []*dwarf.Entry
	for {
		kid, err := rd.Next()
		if err != nil {
			return nil, err
		}
		if kid == nil || kid.Tag == 0 {
			break
		}
		kids = append(kids, kid)
		if kid.Children {
			rd.SkipChildren()
		}
	}
	return kids, nil
}

// CompileUnits returns the root entry of every compilation unit in data.
func CompileUnits(data *dwarf.Data) ([]*dwarf.Entry, error) {
	rd := data.Reader()
	var units []*dwarf.Entry
	for {
		entry, err := rd.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			break
		}
		if entry.Tag != dwarf.TagCompileUnit {
			continue
		}
		units = append(units, entry)
		if entry.Children {
			rd.SkipChildren()
		}
	}
	return units, nil
}
