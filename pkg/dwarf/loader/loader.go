// Package loader opens an ELF binary and exposes its DWARF debug
// information as the compilation-unit list the cxxtree Resolver drives
// (spec §6's "upstream collaborator"). It is adapted from godbg's
// pkg/symbol.Analyze/BinaryInfo, stripped of everything downstream of
// DIE decoding (line tables, call-frame info, function PC ranges) since
// none of that participates in type/declaration reconstruction.
package loader

import (
	"debug/dwarf"
	"debug/elf"
	"fmt"

	"github.com/hitzhangjie/dwarf2hdr/pkg/dwarf/reader"
)

// Binary holds the parsed DWARF data for one ELF file, plus its
// compilation units already enumerated.
type Binary struct {
	Data         *dwarf.Data
	Reader       *reader.Reader
	CompileUnits []*dwarf.Entry
}

// Open loads execFile's ELF and DWARF debug_info section. It fails if
// the file cannot be opened, isn't a valid ELF, or carries no
// .[z]debug_info section.
func Open(execFile string) (*Binary, error) {
	file, err := elf.Open(execFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", execFile, err)
	}
	defer file.Close()

	if err := requireSection(file, "info"); err != nil {
		return nil, err
	}

	data, err := file.DWARF()
	if err != nil {
		return nil, fmt.Errorf("parse DWARF data in %s: %w", execFile, err)
	}

	rd := reader.New(data)
	units, err := reader.CompileUnits(data)
	if err != nil {
		return nil, fmt.Errorf("enumerate compilation units in %s: %w", execFile, err)
	}

	return &Binary{Data: data, Reader: rd, CompileUnits: units}, nil
}

// requireSection reports an error if the ELF file has neither a
// .debug_<name> nor a .zdebug_<name> section.
func requireSection(file *elf.File, name string) error {
	if file.Section(".debug_"+name) != nil || file.Section(".zdebug_"+name) != nil {
		return nil
	}
	return fmt.Errorf("missing .debug_%s / .zdebug_%s section", name, name)
}
