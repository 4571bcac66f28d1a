// Package convert wires the DWARF loader, the cxxtree Resolver and the
// Printer together into the single end-to-end operation the CLI drives:
// ELF path in, header text out.
package convert

import (
	"fmt"
	"os"

	"github.com/hitzhangjie/dwarf2hdr/pkg/cxxtree"
	"github.com/hitzhangjie/dwarf2hdr/pkg/dwarf/loader"
)

// ProgressFunc reports per-compilation-unit progress; see
// cxxtree.ProgressFunc.
type ProgressFunc = cxxtree.ProgressFunc

// File loads the ELF binary at inPath, reconstructs its DWARF type and
// declaration tree, and writes the printed header text to outPath.
func File(inPath, outPath string, progress ProgressFunc) error {
	bin, err := loader.Open(inPath)
	if err != nil {
		return err
	}

	resolver := cxxtree.NewResolver(bin.Reader)
	if err := resolver.ParseAll(bin.CompileUnits, progress); err != nil {
		return fmt.Errorf("parse %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	printer := cxxtree.NewPrinter(out)
	if err := printer.PrintGlobal(resolver.Global); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
