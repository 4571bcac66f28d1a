package loader

import (
	"debug/dwarf"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureSource = `package main

type point struct {
	X int
	Y int
}

func sum(p point) int {
	return p.X + p.Y
}

func main() {
	p := point{X: 1, Y: 2}
	println(sum(p))
}
`

// buildFixture compiles a tiny Go program with inlining and optimization
// disabled (so its DWARF info stays close to source) and returns the
// path to the resulting binary. Mirrors how godbg's `debug` command
// builds its own debuggee (cmd/debug.go: `go build -gcflags=all=-N -l`).
func buildFixture(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("ELF fixtures are not produced on windows")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(src, []byte(fixtureSource), 0o644))

	bin := filepath.Join(dir, "fixture")
	cmd := exec.Command("go", "build", "-gcflags=all=-N -l", "-o", bin, src)
	cmd.Env = append(os.Environ(), "GOOS=linux")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("could not build ELF fixture (no working go toolchain in this environment): %v\n%s", err, out)
	}
	return bin
}

func TestOpenLoadsCompileUnits(t *testing.T) {
	bin := buildFixture(t)

	b, err := Open(bin)
	require.NoError(t, err)
	require.NotEmpty(t, b.CompileUnits)

	for _, cu := range b.CompileUnits {
		require.Equal(t, dwarf.TagCompileUnit, cu.Tag)
	}
}

func TestOpenRejectsNonELF(t *testing.T) {
	dir := t.TempDir()
	notELF := filepath.Join(dir, "notelf")
	require.NoError(t, os.WriteFile(notELF, []byte("not an elf file"), 0o644))

	_, err := Open(notELF)
	require.Error(t, err)
}

func TestReaderChildrenFindsStructMembers(t *testing.T) {
	bin := buildFixture(t)

	b, err := Open(bin)
	require.NoError(t, err)

	var found bool
	for _, cu := range b.CompileUnits {
		kids, err := b.Reader.Children(cu)
		require.NoError(t, err)
		for _, kid := range kids {
			if kid.Tag != dwarf.TagStructType {
				continue
			}
			name, _ := kid.Val(dwarf.AttrName).(string)
			if name != "main.point" && name != "point" {
				continue
			}
			members, err := b.Reader.Children(kid)
			require.NoError(t, err)
			require.NotEmpty(t, members)
			found = true
		}
	}
	require.True(t, found, "expected to find the point struct in the fixture's DWARF info")
}
